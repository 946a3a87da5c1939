package vector

import "fmt"

// Binary operations never modify their operands. Each *Assign method stores
// the result of its pure counterpart, so v.AddAssign(u) is v = v.Add(u).

// Add returns v + u component-wise
func (v Vector2[T]) Add(u Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns v - u component-wise
func (v Vector2[T]) Sub(u Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - u.X, Y: v.Y - u.Y}
}

// Mul returns v * u component-wise
func (v Vector2[T]) Mul(u Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * u.X, Y: v.Y * u.Y}
}

// Div returns v / u component-wise. A zero component in u is an error.
func (v Vector2[T]) Div(u Vector2[T]) (Vector2[T], error) {
	if u.X == 0 || u.Y == 0 {
		return v, fmt.Errorf("divide %s by %s: %w", v, u, ErrDivideByZero)
	}
	return Vector2[T]{X: v.X / u.X, Y: v.Y / u.Y}, nil
}

// AddScalar returns v with s added to both components
func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{X: v.X + s, Y: v.Y + s}
}

// SubScalar returns v with s subtracted from both components
func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{X: v.X - s, Y: v.Y - s}
}

// Scale returns v with both components multiplied by s
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// DivScalar returns v with both components divided by s
func (v Vector2[T]) DivScalar(s T) (Vector2[T], error) {
	if s == 0 {
		return v, fmt.Errorf("divide %s by %v: %w", v, s, ErrDivideByZero)
	}
	return Vector2[T]{X: v.X / s, Y: v.Y / s}, nil
}

// Neg returns (-x, -y). Unsigned components wrap.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

func (v *Vector2[T]) AddAssign(u Vector2[T]) { *v = v.Add(u) }

func (v *Vector2[T]) SubAssign(u Vector2[T]) { *v = v.Sub(u) }

func (v *Vector2[T]) MulAssign(u Vector2[T]) { *v = v.Mul(u) }

// DivAssign divides v by u in place; v is unchanged on error
func (v *Vector2[T]) DivAssign(u Vector2[T]) error {
	r, err := v.Div(u)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v *Vector2[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

func (v *Vector2[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

func (v *Vector2[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivScalarAssign divides v by s in place; v is unchanged on error
func (v *Vector2[T]) DivScalarAssign(s T) error {
	r, err := v.DivScalar(s)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// Mixed component types. The caller picks the result type R, both operands
// are converted to R and then combined. For example the int vector a scaled
// component-wise by the float32 vector b and truncated back is
//
//	vector.Convert[int](vector.MulAs[float32](a, b))

// AddAs returns R(a) + R(b)
func AddAs[R, T, U Number](a Vector2[T], b Vector2[U]) Vector2[R] {
	return Convert[R](a).Add(Convert[R](b))
}

// SubAs returns R(a) - R(b)
func SubAs[R, T, U Number](a Vector2[T], b Vector2[U]) Vector2[R] {
	return Convert[R](a).Sub(Convert[R](b))
}

// MulAs returns R(a) * R(b)
func MulAs[R, T, U Number](a Vector2[T], b Vector2[U]) Vector2[R] {
	return Convert[R](a).Mul(Convert[R](b))
}

// DivAs returns R(a) / R(b). A component of b that is zero after conversion
// is an error.
func DivAs[R, T, U Number](a Vector2[T], b Vector2[U]) (Vector2[R], error) {
	return Convert[R](a).Div(Convert[R](b))
}
