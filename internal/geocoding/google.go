package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/locus/internal/models"
	"googlemaps.github.io/maps"
)

// rooftop is the Google location type of a precise street address match.
const rooftop = "ROOFTOP"

// GoogleProvider geocodes anchor addresses with the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient
	log    *slog.Logger
}

// GoogleAPIClient is the part of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrGoogleNoResults is returned when Google finds nothing for an address.
var ErrGoogleNoResults = errors.New("google maps returned no results")

// NewGoogleProvider wraps an existing Maps client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode resolves address, preferring a rooftop-precision match over the
// first result Google ranks.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if address == "" {
		return nil, ErrEmptyAddress
	}

	results, err := gp.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("google geocoding of %q failed: %w", address, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGoogleNoResults, address)
	}

	best := results[0]
	for _, r := range results {
		if r.Geometry.LocationType == rooftop {
			best = r
			break
		}
	}
	if best.PartialMatch {
		gp.log.WarnContext(ctx, "Anchor address only partially matched",
			"address", address, "matched", best.FormattedAddress)
	}
	gp.log.DebugContext(ctx, "Anchor geocoded by Google",
		"address", address, "location_type", best.Geometry.LocationType)

	return &models.Coordinates{
		Latitude:  best.Geometry.Location.Lat,
		Longitude: best.Geometry.Location.Lng,
	}, nil
}
