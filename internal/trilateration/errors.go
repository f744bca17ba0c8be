package trilateration

import "errors"

var (
	// ErrDegenerateGeometry is returned when the anchors coincide or are collinear,
	// leaving the local frame undefined.
	ErrDegenerateGeometry = errors.New("degenerate anchor geometry")
	// ErrNoIntersection is returned when the three spheres share no real point.
	ErrNoIntersection = errors.New("ranges do not intersect")
	// ErrInvalidPointIndex is returned when a point slot other than 1..3 is addressed.
	ErrInvalidPointIndex = errors.New("point index must be 1, 2 or 3")
)
