package trilateration

import (
	"errors"
	"fmt"
	"math"

	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/UnknownOlympus/locus/internal/vector"
)

const (
	// collinearTolerance bounds the component of P3-P1 orthogonal to the P1-P2
	// axis, relative to |P3-P1|, below which the anchors count as collinear.
	collinearTolerance = 1e-9
	// rootTolerance bounds a negative discriminant, relative to r1², that is
	// still treated as rounding noise around a tangent solution.
	rootTolerance = 1e-12
)

// localFrame is the orthonormal basis anchored at P1 with ex towards P2 and
// P3 in the ex/ey plane.
type localFrame struct {
	origin     vector.Vector
	ex, ey, ez vector.Vector
	d, i, j    float64
}

// Intersect locates the point whose distances to p1, p2 and p3 equal their
// radii, which must already be in kilometers. Only the root on the +ez side of
// the anchor plane is returned.
func Intersect(p1, p2, p3 models.ReferencePoint) (models.Coordinates, error) {
	return intersect(EarthRadiusKm, p1, p2, p3)
}

func intersect(earthRadius float64, p1, p2, p3 models.ReferencePoint) (models.Coordinates, error) {
	frame, err := newLocalFrame(
		ToECR(p1.Latitude(), p1.Longitude(), earthRadius),
		ToECR(p2.Latitude(), p2.Longitude(), earthRadius),
		ToECR(p3.Latitude(), p3.Longitude(), earthRadius),
	)
	if err != nil {
		return models.Coordinates{}, err
	}

	x, y, z, err := frame.solve(p1.Radius(), p2.Radius(), p3.Radius())
	if err != nil {
		return models.Coordinates{}, err
	}

	point, err := frame.toGlobal(x, y, z)
	if err != nil {
		return models.Coordinates{}, err
	}

	coords, err := FromECR(point, earthRadius)
	if err != nil {
		return models.Coordinates{}, err
	}
	if !isFinite(coords.Latitude) || !isFinite(coords.Longitude) {
		return models.Coordinates{}, fmt.Errorf("%w: non-finite result %v", ErrDegenerateGeometry, coords)
	}

	return coords, nil
}

func newLocalFrame(p1, p2, p3 vector.Vector) (*localFrame, error) {
	p21, err := p2.Subtract(p1)
	if err != nil {
		return nil, err
	}
	d := p21.Length()
	if !isFinite(d) {
		return nil, fmt.Errorf("%w: non-finite anchor position", ErrDegenerateGeometry)
	}

	ex, err := p21.Normalize()
	if err != nil {
		if errors.Is(err, vector.ErrDivideByZero) {
			return nil, fmt.Errorf("%w: points 1 and 2 coincide: %w", ErrDegenerateGeometry, err)
		}
		return nil, err
	}

	p31, err := p3.Subtract(p1)
	if err != nil {
		return nil, err
	}
	i, err := ex.Dot(p31)
	if err != nil {
		return nil, err
	}

	rejection, err := p31.Subtract(ex.MultiplyByScalar(i))
	if err != nil {
		return nil, err
	}
	if rejection.Length() <= collinearTolerance*p31.Length() {
		return nil, fmt.Errorf("%w: point 3 lies on the line through points 1 and 2", ErrDegenerateGeometry)
	}

	ey, err := rejection.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateGeometry, err)
	}
	j, err := ey.Dot(p31)
	if err != nil {
		return nil, err
	}
	if j == 0 {
		return nil, fmt.Errorf("%w: point 3 has no offset from the point 1-2 axis", ErrDegenerateGeometry)
	}

	ez, err := ex.Cross(ey)
	if err != nil {
		return nil, err
	}

	return &localFrame{origin: p1, ex: ex, ey: ey, ez: ez, d: d, i: i, j: j}, nil
}

// solve returns the local coordinates of the intersection for radii r1..r3.
func (f *localFrame) solve(r1, r2, r3 float64) (float64, float64, float64, error) {
	r1sq := r1 * r1
	x := (r1sq - r2*r2 + f.d*f.d) / (2 * f.d)
	y := (r1sq-r3*r3+f.i*f.i+f.j*f.j)/(2*f.j) - (f.i/f.j)*x

	disc := r1sq - x*x - y*y
	if disc < 0 {
		if disc < -rootTolerance*r1sq {
			return 0, 0, 0, fmt.Errorf("%w: r1²-x²-y² = %g", ErrNoIntersection, disc)
		}
		disc = 0
	}

	return x, y, math.Sqrt(disc), nil
}

// toGlobal maps local coordinates back to the ECR frame.
func (f *localFrame) toGlobal(x, y, z float64) (vector.Vector, error) {
	p, err := f.origin.Add(f.ex.MultiplyByScalar(x))
	if err != nil {
		return vector.Vector{}, err
	}
	if p, err = p.Add(f.ey.MultiplyByScalar(y)); err != nil {
		return vector.Vector{}, err
	}

	return p.Add(f.ez.MultiplyByScalar(z))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
