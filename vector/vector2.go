// Package vector provides a 2D vector value type generic over its numeric
// component type.
//
// Operations that can fail return an error wrapping one of the package
// sentinels (ErrOutOfRange, ErrDivideByZero, ErrZeroMagnitude, ErrParse,
// ErrNegativeLength) and leave the receiver unchanged.
package vector

import (
	"fmt"
	"math"
	"reflect"
)

// Vector2 is a 2D vector with components of type T. The zero value is (0, 0).
type Vector2[T Number] struct {
	X, Y T
}

// New creates a Vector2(x, y)
func New[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Splat creates a Vector2 with both components set to xy
func Splat[T Number](xy T) Vector2[T] {
	return Vector2[T]{X: xy, Y: xy}
}

// Convert copies v into a vector of component type T using Go's numeric
// conversion rules. Floating-point values are truncated toward zero when T is
// an integer type; out-of-range values are not checked.
func Convert[T, U Number](v Vector2[U]) Vector2[T] {
	return Vector2[T]{X: T(v.X), Y: T(v.Y)}
}

// Magnitude returns the length of the vector
func (v Vector2[T]) Magnitude() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// SquaredMagnitude returns x*x + y*y. The sum is computed in T, so integer
// vectors can overflow before the result is widened.
func (v Vector2[T]) SquaredMagnitude() float64 {
	return float64(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are zero
func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// At returns X for i == 0 and Y for i == 1
func (v Vector2[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	default:
		var zero T
		return zero, fmt.Errorf("%w: %d (want 0 or 1)", ErrOutOfRange, i)
	}
}

// Set assigns both components
func (v *Vector2[T]) Set(x, y T) {
	v.X = x
	v.Y = y
}

// SetFrom assigns independently typed values to the components of v,
// converting each to T.
func SetFrom[T, U, W Number](v *Vector2[T], x U, y W) {
	v.X = T(x)
	v.Y = T(y)
}

// Normalize scales v in place to a magnitude of 1. The division happens in
// float64, so integer vectors truncate toward zero. A zero vector is left
// unchanged and ErrZeroMagnitude is returned.
func (v *Vector2[T]) Normalize() error {
	n, err := v.Normalized()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// Normalized returns a copy of v with a magnitude of 1
func (v Vector2[T]) Normalized() (Vector2[T], error) {
	length := v.Magnitude()
	if length == 0 {
		return v, fmt.Errorf("normalize %s: %w", v, ErrZeroMagnitude)
	}
	return Vector2[T]{
		X: T(float64(v.X) / length),
		Y: T(float64(v.Y) / length),
	}, nil
}

// Equal reports whether v and u have identical components
func (v Vector2[T]) Equal(u Vector2[T]) bool {
	return v.X == u.X && v.Y == u.Y
}

// Equal reports whether a and b hold the same values, even when their
// component types differ. Each pair of components must be mathematically
// equal: an int 30 equals a float32 30, but not a float32 30.5, and an int64
// that float64 cannot represent exactly never equals the rounded float64.
// The comparison is symmetric.
func Equal[T, U Number](a Vector2[T], b Vector2[U]) bool {
	return sameValue(a.X, b.X) && sameValue(a.Y, b.Y)
}

// NotEqual is the negation of Equal
func NotEqual[T, U Number](a Vector2[T], b Vector2[U]) bool {
	return !Equal(a, b)
}

func sameValue[T, U Number](a T, b U) bool {
	f := float64(a)
	if f != float64(b) {
		return false
	}
	// float to integer conversion is only defined in range
	if isFloat[T]() && !inRange[U](f) {
		return false
	}
	if isFloat[U]() && !inRange[T](f) {
		return false
	}
	return U(a) == b && T(b) == a
}

func isFloat[T Number]() bool {
	k := reflect.TypeFor[T]().Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// inRange reports whether f lies within the range of T
func inRange[T Number](f float64) bool {
	typ := reflect.TypeFor[T]()
	bits := typ.Bits()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		limit := math.Ldexp(1, bits-1)
		return f >= -limit && f < limit
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return f >= 0 && f < math.Ldexp(1, bits)
	}
	return true
}
