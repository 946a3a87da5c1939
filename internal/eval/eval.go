// Package eval evaluates one-line vector expressions such as "add 1 2 3 4"
// for a chosen component kind. Vectors are written as two tokens, x then y.
package eval

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Yuni-sa/vector2-go/vector"
)

var (
	ErrUnknownOp   = errors.New("unknown operation")
	ErrUnknownKind = errors.New("unknown component kind")
	ErrArity       = errors.New("wrong number of arguments")
)

// Evaluator evaluates expressions over vectors of one component kind
type Evaluator interface {
	Kind() string
	Eval(line string) (string, error)
	// EvalFields evaluates an already tokenised expression
	EvalFields(op string, args []string) (string, error)
}

var kinds = map[string]func() Evaluator{
	"i8":   func() Evaluator { return evaluator[int8]{kind: "i8"} },
	"i16":  func() Evaluator { return evaluator[int16]{kind: "i16"} },
	"i32":  func() Evaluator { return evaluator[int32]{kind: "i32"} },
	"i64":  func() Evaluator { return evaluator[int64]{kind: "i64"} },
	"int":  func() Evaluator { return evaluator[int]{kind: "int"} },
	"u8":   func() Evaluator { return evaluator[uint8]{kind: "u8"} },
	"u16":  func() Evaluator { return evaluator[uint16]{kind: "u16"} },
	"u32":  func() Evaluator { return evaluator[uint32]{kind: "u32"} },
	"u64":  func() Evaluator { return evaluator[uint64]{kind: "u64"} },
	"uint": func() Evaluator { return evaluator[uint]{kind: "uint"} },
	"f32":  func() Evaluator { return evaluator[float32]{kind: "f32"} },
	"f64":  func() Evaluator { return evaluator[float64]{kind: "f64"} },
}

// DefaultKind is used when no kind is requested
const DefaultKind = "f64"

// Kinds returns the supported component kinds in sorted order
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New returns an evaluator for kind
func New(kind string) (Evaluator, error) {
	mk, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownKind, kind, strings.Join(Kinds(), ", "))
	}
	return mk(), nil
}

type evaluator[T vector.Number] struct {
	kind string
}

func (e evaluator[T]) Kind() string {
	return e.kind
}

func (e evaluator[T]) Eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty expression", ErrUnknownOp)
	}
	return e.EvalFields(fields[0], fields[1:])
}

func (e evaluator[T]) EvalFields(op string, args []string) (string, error) {
	op = strings.ToLower(op)
	switch op {
	case "up", "down", "left", "right", "zero", "one":
		if err := arity(op, args, 0); err != nil {
			return "", err
		}
		return constant[T](op).String(), nil

	case "new":
		if err := arity(op, args, 2); err != nil {
			return "", err
		}
		v, err := vec[T](args)
		if err != nil {
			return "", err
		}
		return v.String(), nil

	case "splat":
		if err := arity(op, args, 1); err != nil {
			return "", err
		}
		s, err := vector.ParseScalar[T](args[0])
		if err != nil {
			return "", err
		}
		return vector.Splat(s).String(), nil

	case "add", "sub", "mul", "div":
		if err := arity(op, args, 4); err != nil {
			return "", err
		}
		a, b, err := pair[T](args)
		if err != nil {
			return "", err
		}
		return binary(op, a, b)

	case "adds", "subs", "scale", "divs":
		if err := arity(op, args, 3); err != nil {
			return "", err
		}
		v, err := vec[T](args)
		if err != nil {
			return "", err
		}
		s, err := vector.ParseScalar[T](args[2])
		if err != nil {
			return "", err
		}
		return scalar(op, v, s)

	case "neg", "mag", "sqrmag", "norm":
		if err := arity(op, args, 2); err != nil {
			return "", err
		}
		v, err := vec[T](args)
		if err != nil {
			return "", err
		}
		return unary(op, v)

	case "dot", "angle", "dist", "eq":
		if err := arity(op, args, 4); err != nil {
			return "", err
		}
		a, b, err := pair[T](args)
		if err != nil {
			return "", err
		}
		return query(op, a, b)

	case "lerp":
		if err := arity(op, args, 5); err != nil {
			return "", err
		}
		a, b, err := pair[T](args)
		if err != nil {
			return "", err
		}
		t, err := parseFloat(args[4])
		if err != nil {
			return "", err
		}
		return vector.Lerp(a, b, t).String(), nil

	case "clamp":
		if err := arity(op, args, 3); err != nil {
			return "", err
		}
		v, err := vec[T](args)
		if err != nil {
			return "", err
		}
		limit, err := parseFloat(args[2])
		if err != nil {
			return "", err
		}
		c, err := vector.ClampMagnitude(v, limit)
		if err != nil {
			return "", err
		}
		return c.String(), nil

	case "at":
		if err := arity(op, args, 3); err != nil {
			return "", err
		}
		v, err := vec[T](args)
		if err != nil {
			return "", err
		}
		i, err := strconv.Atoi(args[2])
		if err != nil {
			return "", fmt.Errorf("%w: index %q", vector.ErrParse, args[2])
		}
		c, err := v.At(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(c), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

func constant[T vector.Number](name string) vector.Vector2[T] {
	switch name {
	case "up":
		return vector.Up[T]()
	case "down":
		return vector.Down[T]()
	case "left":
		return vector.Left[T]()
	case "right":
		return vector.Right[T]()
	case "one":
		return vector.One[T]()
	}
	return vector.Zero[T]()
}

func binary[T vector.Number](op string, a, b vector.Vector2[T]) (string, error) {
	switch op {
	case "add":
		return a.Add(b).String(), nil
	case "sub":
		return a.Sub(b).String(), nil
	case "mul":
		return a.Mul(b).String(), nil
	}
	q, err := a.Div(b)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

func scalar[T vector.Number](op string, v vector.Vector2[T], s T) (string, error) {
	switch op {
	case "adds":
		return v.AddScalar(s).String(), nil
	case "subs":
		return v.SubScalar(s).String(), nil
	case "scale":
		return v.Scale(s).String(), nil
	}
	q, err := v.DivScalar(s)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

func unary[T vector.Number](op string, v vector.Vector2[T]) (string, error) {
	switch op {
	case "neg":
		return v.Neg().String(), nil
	case "mag":
		return formatFloat(v.Magnitude()), nil
	case "sqrmag":
		return formatFloat(v.SquaredMagnitude()), nil
	}
	n, err := v.Normalized()
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func query[T vector.Number](op string, a, b vector.Vector2[T]) (string, error) {
	switch op {
	case "dot":
		return formatFloat(vector.Dot(a, b)), nil
	case "dist":
		return formatFloat(vector.Distance(a, b)), nil
	case "eq":
		return strconv.FormatBool(a.Equal(b)), nil
	}
	deg, err := vector.Angle(a, b)
	if err != nil {
		return "", err
	}
	return formatFloat(deg), nil
}

func vec[T vector.Number](args []string) (vector.Vector2[T], error) {
	return vector.Parse[T](args[0] + " " + args[1])
}

func pair[T vector.Number](args []string) (a, b vector.Vector2[T], err error) {
	if a, err = vec[T](args[0:2]); err != nil {
		return a, b, err
	}
	b, err = vec[T](args[2:4])
	return a, b, err
}

func arity(op string, args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, want, len(args))
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", vector.ErrParse, s)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
