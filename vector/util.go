package vector

import (
	"fmt"
	"math"
)

// Up returns Vector2(0, 1)
func Up[T Number]() Vector2[T] { return Vector2[T]{X: 0, Y: 1} }

// Down returns Vector2(0, -1). For unsigned T the -1 wraps to the maximum value.
func Down[T Number]() Vector2[T] { return Vector2[T]{X: 0, Y: -unit[T]()} }

// Left returns Vector2(-1, 0). For unsigned T the -1 wraps to the maximum value.
func Left[T Number]() Vector2[T] { return Vector2[T]{X: -unit[T](), Y: 0} }

// Right returns Vector2(1, 0)
func Right[T Number]() Vector2[T] { return Vector2[T]{X: 1, Y: 0} }

// Zero returns Vector2(0, 0)
func Zero[T Number]() Vector2[T] { return Vector2[T]{} }

// One returns Vector2(1, 1)
func One[T Number]() Vector2[T] { return Vector2[T]{X: 1, Y: 1} }

// -1 is not a valid constant for unsigned T, so negate a variable instead.
func unit[T Number]() T {
	var one T = 1
	return one
}

// Dot returns the dot product of a and b, computed in float64
func Dot[T Number](a, b Vector2[T]) float64 {
	return float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y)
}

// Angle returns the angle in degrees between from and to, in [0, 180].
// ErrZeroMagnitude is returned when either vector has zero length.
func Angle[T Number](from, to Vector2[T]) (float64, error) {
	lf, lt := from.Magnitude(), to.Magnitude()
	if lf == 0 || lt == 0 {
		return math.NaN(), fmt.Errorf("angle between %s and %s: %w", from, to, ErrZeroMagnitude)
	}
	cos := Dot(from, to) / (lf * lt)
	// Rounding can push nearly parallel vectors slightly outside [-1, 1].
	cos = clamp(cos, -1, 1)
	return math.Acos(cos) * 180 / math.Pi, nil
}

// ClampMagnitude returns a copy of v rescaled to maxLength when v is longer
// than maxLength, and v itself otherwise. A negative maxLength is an error.
func ClampMagnitude[T Number](v Vector2[T], maxLength float64) (Vector2[T], error) {
	if maxLength < 0 || math.IsNaN(maxLength) {
		return v, fmt.Errorf("clamp %s to %v: %w", v, maxLength, ErrNegativeLength)
	}
	length := v.Magnitude()
	if length <= maxLength {
		return v, nil
	}
	return Vector2[T]{
		X: T(float64(v.X) * maxLength / length),
		Y: T(float64(v.Y) * maxLength / length),
	}, nil
}

// Distance returns the distance between a and b. The difference is taken in
// float64 so unsigned vectors do not wrap.
func Distance[T Number](a, b Vector2[T]) float64 {
	return math.Hypot(float64(a.X)-float64(b.X), float64(a.Y)-float64(b.Y))
}

// Lerp linearly interpolates between a and b by t, with t clamped to [0, 1].
// t == 0 (or NaN) returns a and t == 1 returns b.
func Lerp[T Number](a, b Vector2[T], t float64) Vector2[T] {
	if math.IsNaN(t) {
		t = 0
	}
	t = clamp(t, 0, 1)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return Vector2[T]{
		X: T(float64(a.X) + (float64(b.X)-float64(a.X))*t),
		Y: T(float64(a.Y) + (float64(b.Y)-float64(a.Y))*t),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
