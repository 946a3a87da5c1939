package vector

import "errors"

var (
	// ErrOutOfRange is returned by At for an index other than 0 or 1
	ErrOutOfRange = errors.New("index out of range")

	// ErrDivideByZero is returned when a scalar or component divisor is zero
	ErrDivideByZero = errors.New("division by zero")

	// ErrZeroMagnitude is returned when a direction is requested from a zero vector
	ErrZeroMagnitude = errors.New("zero magnitude vector")

	// ErrParse is returned when text does not hold exactly two valid components
	ErrParse = errors.New("invalid vector text")

	// ErrNegativeLength is returned by ClampMagnitude for a negative bound
	ErrNegativeLength = errors.New("negative length")
)
