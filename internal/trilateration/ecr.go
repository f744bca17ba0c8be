package trilateration

import (
	"fmt"
	"math"

	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/UnknownOlympus/locus/internal/vector"
)

const (
	// EarthRadiusKm is the mean Earth radius of the spherical, zero-elevation model.
	EarthRadiusKm = 6371.0
	// KilometersPerMile converts statute miles to kilometers.
	KilometersPerMile = 1.609344
)

// ToKilometers converts distance to kilometers when inMiles is set.
func ToKilometers(distance float64, inMiles bool) float64 {
	if inMiles {
		return distance * KilometersPerMile
	}

	return distance
}

// ToECR projects a latitude/longitude pair in degrees onto the Earth-centered
// rotational frame of a sphere with the given radius.
func ToECR(lat, lng, radius float64) vector.Vector {
	phi := degToRad(lat)
	lambda := degToRad(lng)

	return vector.New(
		radius*math.Cos(phi)*math.Cos(lambda),
		radius*math.Cos(phi)*math.Sin(lambda),
		radius*math.Sin(phi),
	)
}

// FromECR converts an ECR point back to degrees. Latitude is derived from the
// z component against the sphere radius, clamped to stay within asin's domain.
func FromECR(p vector.Vector, radius float64) (models.Coordinates, error) {
	if p.Dimension() != 3 {
		return models.Coordinates{}, fmt.Errorf("%w: ECR point needs 3 dimensions, got %d",
			vector.ErrDimensionality, p.Dimension())
	}
	c := p.Elements()

	sinLat := math.Max(-1, math.Min(1, c[2]/radius))

	return models.Coordinates{
		Latitude:  radToDeg(math.Asin(sinLat)),
		Longitude: radToDeg(math.Atan2(c[1], c[0])),
	}, nil
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
