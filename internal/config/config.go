package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Geocoder types accepted by geocoder.type.
const (
	geocoderGoogle    = "google"
	geocoderNominatim = "nominatim"
	geocoderNone      = "none"
)

// Config holds the configuration settings for the locator service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Server: HTTP listener settings.
// - Miles: Whether distances without an explicit unit are read as miles.
// - Geocoder: Provider used to position catalog anchors that only have an address.
// - Database: Configuration settings for the PostgreSQL anchor catalog.
type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	Server   ServerConfig   // Server holds the HTTP listener settings.
	Miles    bool           // Miles is the default distance unit flag.
	Geocoder GeocoderConfig // Geocoder holds the geocoding provider settings.
	Database PostgresConfig // Database holds the postgres database configuration.
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port            int           // Port the API listens on.
	ShutdownTimeout time.Duration // Upper bound for a graceful shutdown.
}

// GeocoderConfig selects and configures the geocoding provider.
type GeocoderConfig struct {
	Type      string // Type is one of google, nominatim or none.
	APIKey    string // APIKey is required for Google.
	RateLimit int    // RateLimit is the number of requests per second.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
// An empty Host disables the anchor catalog.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// Enabled reports whether a catalog database is configured.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// DSN builds a postgres connection URL.
func (p PostgresConfig) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   p.Name,
	}

	return dsn.String()
}

// MustLoad reads the configuration from the environment, an optional .env file
// and the YAML file named by LOCUS_CONFIG_FILE. Environment variables win.
// It panics on values that cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("units.miles", false)
	v.SetDefault("geocoder.type", geocoderNominatim)
	v.SetDefault("geocoder.api_key", "")
	v.SetDefault("geocoder.rate_limit", 1)
	v.SetDefault("db.host", "")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")

	v.SetEnvPrefix("LOCUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("LOCUS_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic(fmt.Sprintf("failed to read configuration file %s", path))
		}
	}

	port, err := cast.ToIntE(v.Get("server.port"))
	if err != nil || port <= 0 {
		panic("failed to parse server port from configuration")
	}

	shutdownTimeout, err := cast.ToDurationE(v.Get("server.shutdown_timeout"))
	if err != nil {
		panic("failed to parse shutdown timeout from configuration")
	}

	miles, err := cast.ToBoolE(v.Get("units.miles"))
	if err != nil {
		panic("failed to parse units.miles from configuration, must be a boolean")
	}

	rateLimit, err := cast.ToIntE(v.Get("geocoder.rate_limit"))
	if err != nil {
		panic("failed to parse geocoder rate limit from configuration, must be an integer")
	}

	geocoderType := strings.ToLower(cast.ToString(v.Get("geocoder.type")))
	switch geocoderType {
	case geocoderGoogle, geocoderNominatim, geocoderNone:
	default:
		panic("unknown geocoder type in configuration, expected google, nominatim or none")
	}

	return &Config{
		Env: cast.ToString(v.Get("env")),
		Server: ServerConfig{
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		Miles: miles,
		Geocoder: GeocoderConfig{
			Type:      geocoderType,
			APIKey:    cast.ToString(v.Get("geocoder.api_key")),
			RateLimit: rateLimit,
		},
		Database: PostgresConfig{
			Host:     cast.ToString(v.Get("db.host")),
			Port:     cast.ToString(v.Get("db.port")),
			User:     cast.ToString(v.Get("db.user")),
			Password: cast.ToString(v.Get("db.password")),
			Name:     cast.ToString(v.Get("db.name")),
		},
	}
}
