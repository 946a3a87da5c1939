package vector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// String returns "(x, y)" with each component in its default %v form
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// MarshalText implements encoding.TextMarshaler with the String form
func (v Vector2[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the String
// form "(x, y)" as well as two whitespace-separated components.
func (v *Vector2[T]) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.Replace(s[1:len(s)-1], ",", " ", 1)
	}
	p, err := Parse[T](s)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Parse reads a vector from exactly two whitespace-separated components,
// x then y, each in T's numeric grammar.
func Parse[T Number](s string) (Vector2[T], error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Vector2[T]{}, fmt.Errorf("%w: want 2 components, got %d in %q", ErrParse, len(fields), s)
	}
	x, err := ParseScalar[T](fields[0])
	if err != nil {
		return Vector2[T]{}, err
	}
	y, err := ParseScalar[T](fields[1])
	if err != nil {
		return Vector2[T]{}, err
	}
	return Vector2[T]{X: x, Y: y}, nil
}

// ParseScalar parses a single component. Integers are base 10 and must fit
// in T, with an optional sign; floats accept a sign, a decimal point and an exponent.
func ParseScalar[T Number](s string) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	typ := rv.Type()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return out, fmt.Errorf("%w: %q is not a valid %s", ErrParse, s, typ)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, typ.Bits())
		if err != nil {
			return out, fmt.Errorf("%w: %q is not a valid %s", ErrParse, s, typ)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return out, fmt.Errorf("%w: %q is not a valid %s", ErrParse, s, typ)
		}
		rv.SetFloat(f)
	}
	return out, nil
}

// Scan implements fmt.Scanner, reading x then y as two space-separated
// tokens. v is only modified when both components parse.
func (v *Vector2[T]) Scan(state fmt.ScanState, verb rune) error {
	var parts [2]T
	for i := range parts {
		tok, err := state.Token(true, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		if len(tok) == 0 {
			return fmt.Errorf("%w: missing component %d", ErrParse, i)
		}
		parts[i], err = ParseScalar[T](string(tok))
		if err != nil {
			return err
		}
	}
	v.X, v.Y = parts[0], parts[1]
	return nil
}
