package models

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLatitudeOutOfRange is returned for latitudes outside [-90, 90] or non-finite values.
	ErrLatitudeOutOfRange = errors.New("latitude out of range")
	// ErrLongitudeOutOfRange is returned for longitudes outside [-180, 180] or non-finite values.
	ErrLongitudeOutOfRange = errors.New("longitude out of range")
	// ErrInvalidRadius is returned for negative or non-finite radii.
	ErrInvalidRadius = errors.New("radius must be a finite non-negative number")
)

// ReferencePoint is an anchor position together with the measured distance to
// the unknown point. It is immutable once constructed. The radius is expressed
// in kilometers once a solver has stored it.
type ReferencePoint struct {
	lat    float64
	lng    float64
	radius float64
}

// NewReferencePoint stores the values as given; no range checks are applied.
func NewReferencePoint(lat, lng, radius float64) ReferencePoint {
	return ReferencePoint{lat: lat, lng: lng, radius: radius}
}

// Latitude returns the anchor latitude in degrees.
func (p ReferencePoint) Latitude() float64 { return p.lat }

// Longitude returns the anchor longitude in degrees.
func (p ReferencePoint) Longitude() float64 { return p.lng }

// Radius returns the distance from the anchor to the unknown point.
func (p ReferencePoint) Radius() float64 { return p.radius }

// Coordinates returns the anchor position.
func (p ReferencePoint) Coordinates() Coordinates {
	return Coordinates{Latitude: p.lat, Longitude: p.lng}
}

// Validate checks that the point describes a real place on the globe with a
// usable range. Callers opt into validation; construction never performs it.
func (p ReferencePoint) Validate() error {
	if math.IsNaN(p.lat) || p.lat < -90 || p.lat > 90 {
		return fmt.Errorf("%w: %v", ErrLatitudeOutOfRange, p.lat)
	}
	if math.IsNaN(p.lng) || p.lng < -180 || p.lng > 180 {
		return fmt.Errorf("%w: %v", ErrLongitudeOutOfRange, p.lng)
	}
	if math.IsNaN(p.radius) || math.IsInf(p.radius, 0) || p.radius < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, p.radius)
	}

	return nil
}
