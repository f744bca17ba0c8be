package vector_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/UnknownOlympus/locus/internal/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func randomVectors(t *testing.T, n, dim int) []vector.Vector {
	t.Helper()
	rnd := rand.New(rand.NewPCG(42, 7))
	out := make([]vector.Vector, n)
	for i := range out {
		elems := make([]float64, dim)
		for j := range elems {
			elems[j] = rnd.Float64()*200 - 100
		}
		out[i] = vector.New(elems...)
	}

	return out
}

func TestZero(t *testing.T) {
	t.Run("three dimensions", func(t *testing.T) {
		v, err := vector.Zero(3)

		require.NoError(t, err)
		assert.Equal(t, 3, v.Dimension())
		assert.True(t, v.Equal(vector.New(0, 0, 0)))
	})

	t.Run("zero dimensions", func(t *testing.T) {
		v, err := vector.Zero(0)

		require.NoError(t, err)
		assert.Equal(t, 0, v.Dimension())
		assert.Zero(t, v.Length())
	})

	t.Run("negative dimension", func(t *testing.T) {
		_, err := vector.Zero(-1)

		require.ErrorIs(t, err, vector.ErrInvalidDimension)
		assert.True(t, vector.IsContractError(err))
	})
}

func TestElement(t *testing.T) {
	v := vector.New(1.5, -2, 3)

	got, err := v.Element(1)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, got, 0)

	for _, pos := range []int{-1, 3, 100} {
		_, err = v.Element(pos)
		require.ErrorIs(t, err, vector.ErrIndexOutOfRange, "position %d", pos)
	}
}

func TestNewCopiesInput(t *testing.T) {
	elems := []float64{1, 2, 3}
	v := vector.New(elems...)
	elems[0] = 99

	first, err := v.Element(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, first, 0)

	out := v.Elements()
	out[1] = 99
	second, err := v.Element(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, second, 0)
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 5.0, vector.New(3, 4).Length(), tolerance)
	assert.InDelta(t, 13.0, vector.New(3, 4, 12).Length(), tolerance)
	assert.Zero(t, vector.New(0, 0, 0).Length())
}

func TestEqual(t *testing.T) {
	a := vector.New(1, 2, 3)

	assert.True(t, a.Equal(vector.New(1, 2, 3)))
	assert.False(t, a.Equal(vector.New(1, 2, 3.0000001)), "comparison must be exact")
	assert.False(t, a.Equal(vector.New(1, 2)))
	assert.True(t, a.EqualApprox(vector.New(1, 2, 3.0000000001), tolerance))
}

func TestSameVectorSpace(t *testing.T) {
	a := vector.New(1, 2, 3)

	assert.True(t, a.SameDimension(vector.New(4, 5, 6)))
	assert.True(t, a.SameVectorSpace(vector.New(4, 5, 6)))
	assert.False(t, a.SameDimension(vector.New(4, 5)))
	assert.False(t, a.SameVectorSpace(vector.New(4, 5)))
}

func TestAddSubtract(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		sum, err := vector.New(1, 2, 3).Add(vector.New(4, 5, 6))

		require.NoError(t, err)
		assert.True(t, sum.Equal(vector.New(5, 7, 9)), "got %s", sum)
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := vector.New(5, 7, 9).Subtract(vector.New(4, 5, 6))

		require.NoError(t, err)
		assert.True(t, diff.Equal(vector.New(1, 2, 3)), "got %s", diff)
	})

	t.Run("mismatched spaces", func(t *testing.T) {
		_, err := vector.New(1, 2).Add(vector.New(1, 2, 3))
		require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)

		_, err = vector.New(1, 2, 3).Subtract(vector.New(1, 2))
		require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)
		assert.True(t, vector.IsContractError(err))
	})

	t.Run("round trip", func(t *testing.T) {
		vs := randomVectors(t, 20, 4)
		for i := 0; i+1 < len(vs); i++ {
			sum, err := vs[i].Add(vs[i+1])
			require.NoError(t, err)
			back, err := sum.Subtract(vs[i+1])
			require.NoError(t, err)

			assert.True(t, back.EqualApprox(vs[i], tolerance), "%s != %s", back, vs[i])
		}
	})
}

func TestDivide(t *testing.T) {
	quot, err := vector.New(6, 8, -9).Divide(vector.New(2, 4, 3))
	require.NoError(t, err)
	assert.True(t, quot.Equal(vector.New(3, 2, -3)), "got %s", quot)

	_, err = vector.New(1, 2).Divide(vector.New(1, 0))
	require.ErrorIs(t, err, vector.ErrDivideByZero)
	assert.False(t, vector.IsContractError(err))

	_, err = vector.New(1, 2).Divide(vector.New(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)
}

func TestDot(t *testing.T) {
	dot, err := vector.New(1, 2, 3).Dot(vector.New(4, 5, 6))
	require.NoError(t, err)
	assert.InDelta(t, 32.0, dot, 0)

	_, err = vector.New(1, 2, 3).Dot(vector.New(4, 5))
	require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)

	t.Run("commutative", func(t *testing.T) {
		vs := randomVectors(t, 20, 5)
		for i := 0; i+1 < len(vs); i++ {
			ab, err := vs[i].Dot(vs[i+1])
			require.NoError(t, err)
			ba, err := vs[i+1].Dot(vs[i])
			require.NoError(t, err)

			assert.Zero(t, ab-ba)
		}
	})
}

func TestCross(t *testing.T) {
	t.Run("basis vectors", func(t *testing.T) {
		z, err := vector.New(1, 0, 0).Cross(vector.New(0, 1, 0))

		require.NoError(t, err)
		assert.True(t, z.Equal(vector.New(0, 0, 1)), "got %s", z)
	})

	t.Run("wrong rank", func(t *testing.T) {
		_, err := vector.New(1, 2).Cross(vector.New(3, 4))
		require.ErrorIs(t, err, vector.ErrDimensionality)

		_, err = vector.New(1, 2, 3, 4).Cross(vector.New(5, 6, 7, 8))
		require.ErrorIs(t, err, vector.ErrDimensionality)
	})

	t.Run("mismatched spaces", func(t *testing.T) {
		_, err := vector.New(1, 2).Cross(vector.New(1, 2, 3))
		require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)
	})

	t.Run("anticommutative and orthogonal", func(t *testing.T) {
		vs := randomVectors(t, 20, 3)
		for i := 0; i+1 < len(vs); i++ {
			a, b := vs[i], vs[i+1]
			ab, err := a.Cross(b)
			require.NoError(t, err)
			ba, err := b.Cross(a)
			require.NoError(t, err)

			assert.True(t, ab.EqualApprox(ba.MultiplyByScalar(-1), tolerance), "%s vs %s", ab, ba)

			da, err := ab.Dot(a)
			require.NoError(t, err)
			db, err := ab.Dot(b)
			require.NoError(t, err)
			// Components reach 1e4 after the cross product, so scale the tolerance.
			assert.InDelta(t, 0, da, 1e-6)
			assert.InDelta(t, 0, db, 1e-6)
		}
	})
}

func TestTripleProducts(t *testing.T) {
	x, y, z := vector.New(1, 0, 0), vector.New(0, 1, 0), vector.New(0, 0, 1)

	volume, err := x.ScalarTripleProduct(y, z)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, volume, tolerance)

	a, b, c := vector.New(1, 2, 3), vector.New(-2, 0.5, 4), vector.New(3, -1, 2)
	got, err := a.VectorTripleProduct(b, c)
	require.NoError(t, err)

	// a × (b × c) = b(a·c) − c(a·b)
	ac, err := a.Dot(c)
	require.NoError(t, err)
	ab, err := a.Dot(b)
	require.NoError(t, err)
	want, err := b.MultiplyByScalar(ac).Subtract(c.MultiplyByScalar(ab))
	require.NoError(t, err)
	assert.True(t, got.EqualApprox(want, tolerance), "%s != %s", got, want)

	_, err = a.ScalarTripleProduct(vector.New(1, 2), vector.New(3, 4))
	require.ErrorIs(t, err, vector.ErrDimensionality)
	_, err = vector.New(1, 2).VectorTripleProduct(b, c)
	require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)
}

func TestScalarOperations(t *testing.T) {
	v := vector.New(2, -4, 6)

	assert.True(t, v.MultiplyByScalar(0.5).Equal(vector.New(1, -2, 3)))

	half, err := v.DivideByScalar(2)
	require.NoError(t, err)
	assert.True(t, half.Equal(vector.New(1, -2, 3)))

	_, err = v.DivideByScalar(0)
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []float64{3, -0.25, 1e-3, 7919} {
			for _, x := range randomVectors(t, 5, 3) {
				divided, err := x.DivideByScalar(s)
				require.NoError(t, err)

				assert.True(t, divided.MultiplyByScalar(s).EqualApprox(x, tolerance), "scalar %v", s)
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	for _, v := range randomVectors(t, 20, 3) {
		unit, err := v.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, unit.Length(), tolerance)
	}

	_, err := vector.New(0, 0, 0).Normalize()
	require.ErrorIs(t, err, vector.ErrDivideByZero)
}

func TestProjectOnto(t *testing.T) {
	p, err := vector.New(3, 4).ProjectOnto(vector.New(10, 0))
	require.NoError(t, err)
	assert.True(t, p.EqualApprox(vector.New(3, 0), tolerance), "got %s", p)

	_, err = vector.New(3, 4).ProjectOnto(vector.New(0, 0))
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	_, err = vector.New(3, 4).ProjectOnto(vector.New(1, 0, 0))
	require.ErrorIs(t, err, vector.ErrVectorSpaceMismatch)
}

func TestAngleBetween(t *testing.T) {
	angle, err := vector.New(1, 0, 0).AngleBetween(vector.New(0, 5, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle, tolerance)

	angle, err = vector.New(1, 1).AngleBetween(vector.New(2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0, angle, 1e-7)

	_, err = vector.New(0, 0).AngleBetween(vector.New(1, 1))
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	_, err = vector.New(1, 1).AngleBetween(vector.New(0, 0))
	require.ErrorIs(t, err, vector.ErrDivideByZero)
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", vector.New(1, 2.5, -3).String())
	assert.Equal(t, "()", vector.New().String())
}
