// Package geocoding resolves anchor addresses to coordinates for catalog
// entries that were registered without a surveyed position.
package geocoding

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/locus/internal/models"
)

// Provider resolves a postal address to the coordinates of its best match.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// ErrEmptyAddress is returned when a provider is asked to geocode an empty address.
var ErrEmptyAddress = errors.New("cannot geocode an empty address")
