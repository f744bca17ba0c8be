package geocoding

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType names a geocoding backend.
type ProviderType string

const (
	ProviderTypeGoogle    ProviderType = "google"
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeNone disables geocoding; catalog anchors must carry coordinates.
	ProviderTypeNone ProviderType = "none"
)

var (
	// ErrUnsupportedProvider is returned for an unknown ProviderType.
	ErrUnsupportedProvider = errors.New("unsupported geocoding provider")
	// ErrMissingAPIKey is returned when a keyed provider is configured without a key.
	ErrMissingAPIKey = errors.New("geocoding provider requires an API key")
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType
	APIKey    string // used by Google only
	RateLimit int    // requests per second, zero leaves the backend default
	Logger    *slog.Logger
}

type constructor func(ProviderConfig) (Provider, error)

var constructors = map[ProviderType]constructor{
	ProviderTypeGoogle:    newGoogleProvider,
	ProviderTypeNominatim: newNominatimProvider,
}

// NewProvider creates the geocoding provider selected by config.Type.
// ProviderTypeNone yields a nil Provider and no error.
func NewProvider(config ProviderConfig) (Provider, error) {
	if config.Type == ProviderTypeNone {
		return nil, nil //nolint:nilnil // geocoding is optional
	}

	build, ok := constructors[config.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, config.Type)
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return build(config)
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAPIKey, config.Type)
	}

	opts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}

func newNominatimProvider(config ProviderConfig) (Provider, error) {
	return NewNominatimProvider(config.RateLimit, config.Logger), nil
}
