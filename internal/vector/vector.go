// Package vector implements immutable n-dimensional vector algebra.
//
// Every operation returns a new Vector; operands are never modified. Binary
// operations require both operands to live in the same vector space, which for
// fixed-length vectors means equal dimension.
package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is an ordered tuple of real numbers indexed 0..n-1.
type Vector struct {
	elems []float64
}

// New returns a vector holding a copy of elems.
func New(elems ...float64) Vector {
	return Vector{elems: clone(elems)}
}

// Zero returns the zero vector of the given dimension.
func Zero(dimension int) (Vector, error) {
	if dimension < 0 {
		return Vector{}, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}

	return Vector{elems: make([]float64, dimension)}, nil
}

// Elements returns a copy of the components.
func (v Vector) Elements() []float64 {
	return clone(v.elems)
}

// Element returns the component at pos.
func (v Vector) Element(pos int) (float64, error) {
	if pos < 0 || pos >= len(v.elems) {
		return 0, fmt.Errorf("%w: position %d, dimension %d", ErrIndexOutOfRange, pos, len(v.elems))
	}

	return v.elems[pos], nil
}

// Dimension returns the number of components.
func (v Vector) Dimension() int {
	return len(v.elems)
}

// Length returns the Euclidean magnitude of the vector.
func (v Vector) Length() float64 {
	if len(v.elems) == 0 {
		return 0
	}

	return floats.Norm(v.elems, 2)
}

// Equal reports whether both vectors hold identical components at identical
// positions. The comparison is exact; use EqualApprox when rounding matters.
func (v Vector) Equal(o Vector) bool {
	return floats.Equal(v.elems, o.elems)
}

// EqualApprox reports whether the vectors share a dimension and every pair of
// components is within tol, absolutely or relatively.
func (v Vector) EqualApprox(o Vector, tol float64) bool {
	return floats.EqualApprox(v.elems, o.elems, tol)
}

// SameDimension reports whether both vectors have the same number of components.
func (v Vector) SameDimension(o Vector) bool {
	return len(v.elems) == len(o.elems)
}

// SameVectorSpace reports whether both vectors are indexed by the same positions.
// Components are always indexed 0..n-1, so this coincides with SameDimension.
func (v Vector) SameVectorSpace(o Vector) bool {
	return v.SameDimension(o)
}

// Add returns the element-wise sum v + o.
func (v Vector) Add(o Vector) (Vector, error) {
	if err := v.checkVectorSpace(o); err != nil {
		return Vector{}, err
	}

	sum := make([]float64, len(v.elems))
	floats.AddTo(sum, v.elems, o.elems)

	return Vector{elems: sum}, nil
}

// Subtract returns v - o, computed as v + (-1)·o.
func (v Vector) Subtract(o Vector) (Vector, error) {
	return v.Add(o.MultiplyByScalar(-1))
}

// Divide returns the element-wise quotient v / o.
func (v Vector) Divide(o Vector) (Vector, error) {
	if err := v.checkVectorSpace(o); err != nil {
		return Vector{}, err
	}

	for i, c := range o.elems {
		if c == 0 {
			return Vector{}, fmt.Errorf("%w: component %d of divisor is zero", ErrDivideByZero, i)
		}
	}

	quot := make([]float64, len(v.elems))
	floats.DivTo(quot, v.elems, o.elems)

	return Vector{elems: quot}, nil
}

// Dot returns the scalar product of v and o.
func (v Vector) Dot(o Vector) (float64, error) {
	if err := v.checkVectorSpace(o); err != nil {
		return 0, err
	}

	return floats.Dot(v.elems, o.elems), nil
}

// Cross returns the right-handed vector product v × o. Both vectors must be 3-D.
func (v Vector) Cross(o Vector) (Vector, error) {
	if err := v.checkVectorSpace(o); err != nil {
		return Vector{}, err
	}
	if len(v.elems) != 3 {
		return Vector{}, fmt.Errorf("%w: cross product needs 3 dimensions, got %d", ErrDimensionality, len(v.elems))
	}

	c := r3.Cross(
		r3.Vec{X: v.elems[0], Y: v.elems[1], Z: v.elems[2]},
		r3.Vec{X: o.elems[0], Y: o.elems[1], Z: o.elems[2]},
	)

	return Vector{elems: []float64{c.X, c.Y, c.Z}}, nil
}

// ScalarTripleProduct returns v · (b × c).
func (v Vector) ScalarTripleProduct(b, c Vector) (float64, error) {
	bc, err := b.Cross(c)
	if err != nil {
		return 0, err
	}

	return v.Dot(bc)
}

// VectorTripleProduct returns v × (b × c).
func (v Vector) VectorTripleProduct(b, c Vector) (Vector, error) {
	bc, err := b.Cross(c)
	if err != nil {
		return Vector{}, err
	}

	return v.Cross(bc)
}

// MultiplyByScalar returns s·v.
func (v Vector) MultiplyByScalar(s float64) Vector {
	scaled := make([]float64, len(v.elems))
	floats.ScaleTo(scaled, s, v.elems)

	return Vector{elems: scaled}
}

// DivideByScalar returns v / s.
func (v Vector) DivideByScalar(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, fmt.Errorf("%w: scalar divisor", ErrDivideByZero)
	}

	return v.MultiplyByScalar(1.0 / s), nil
}

// Normalize returns the unit vector pointing in the direction of v.
func (v Vector) Normalize() (Vector, error) {
	unit, err := v.DivideByScalar(v.Length())
	if err != nil {
		return Vector{}, fmt.Errorf("cannot normalize zero-length vector: %w", err)
	}

	return unit, nil
}

// ProjectOnto returns the vector projection of v onto o.
func (v Vector) ProjectOnto(o Vector) (Vector, error) {
	unit, err := o.Normalize()
	if err != nil {
		return Vector{}, err
	}

	scale, err := v.Dot(unit)
	if err != nil {
		return Vector{}, err
	}

	return unit.MultiplyByScalar(scale), nil
}

// AngleBetween returns the angle between v and o in radians.
func (v Vector) AngleBetween(o Vector) (float64, error) {
	denominator := v.Length() * o.Length()
	if denominator == 0 {
		return 0, fmt.Errorf("%w: angle with zero-length vector", ErrDivideByZero)
	}

	dot, err := v.Dot(o)
	if err != nil {
		return 0, err
	}

	return math.Acos(dot / denominator), nil
}

// String formats the vector as "(a, b, c)".
func (v Vector) String() string {
	parts := make([]string, len(v.elems))
	for i, c := range v.elems {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (v Vector) checkVectorSpace(o Vector) error {
	if !v.SameDimension(o) {
		return fmt.Errorf("%w: dimensions %d and %d", ErrVectorSpaceMismatch, len(v.elems), len(o.elems))
	}
	if !v.SameVectorSpace(o) {
		return fmt.Errorf("%w: component positions differ", ErrVectorSpaceMismatch)
	}

	return nil
}

func clone(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
