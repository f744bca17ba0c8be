package vector

import "errors"

var (
	// ErrInvalidDimension is returned when a vector is requested with a negative dimension.
	ErrInvalidDimension = errors.New("dimension must be zero or greater")
	// ErrIndexOutOfRange is returned when a component is read outside 0..n-1.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrVectorSpaceMismatch is returned when a binary operation gets operands of different spaces.
	ErrVectorSpaceMismatch = errors.New("vectors are not in the same vector space")
	// ErrDimensionality is returned when an operation is only defined for another rank (cross product).
	ErrDimensionality = errors.New("vectors have the wrong dimensionality")
	// ErrDivideByZero is returned on a zero divisor, a zero-length normalize or angle operand.
	ErrDivideByZero = errors.New("cannot divide by zero")
)

// IsContractError reports whether err stems from misuse of the API (mismatched
// spaces, wrong rank, bad dimension or index) rather than from the data itself.
func IsContractError(err error) bool {
	return errors.Is(err, ErrVectorSpaceMismatch) ||
		errors.Is(err, ErrDimensionality) ||
		errors.Is(err, ErrInvalidDimension) ||
		errors.Is(err, ErrIndexOutOfRange)
}
