package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Yuni-sa/vector2-go/vector"
)

// Session is an evaluator whose kind can be switched with the "kind"
// command. A Session is not safe for concurrent use.
type Session struct {
	ev Evaluator
}

// NewSession creates a session for kind, or DefaultKind when kind is empty
func NewSession(kind string) (*Session, error) {
	if kind == "" {
		kind = DefaultKind
	}
	ev, err := New(kind)
	if err != nil {
		return nil, err
	}
	return &Session{ev: ev}, nil
}

// Kind returns the current component kind
func (s *Session) Kind() string {
	return s.ev.Kind()
}

// SetKind switches the component kind; the session is unchanged on error
func (s *Session) SetKind(kind string) error {
	ev, err := New(kind)
	if err != nil {
		return err
	}
	s.ev = ev
	return nil
}

// KindCommand reports whether line is a "kind <k>" command and returns k
func KindCommand(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "kind") {
		return "", false
	}
	return fields[1], true
}

// Eval evaluates line. "kind" reports the current kind and "kind <k>"
// switches to k; everything else goes to the current evaluator.
func (s *Session) Eval(line string) (string, error) {
	if kind, ok := KindCommand(line); ok {
		if err := s.SetKind(kind); err != nil {
			return "", err
		}
		return s.Kind(), nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return s.ev.Eval(line)
	}
	if strings.EqualFold(fields[0], "kind") {
		if len(fields) > 1 {
			return "", fmt.Errorf("%w: kind takes at most 1, got %d", ErrArity, len(fields)-1)
		}
		return s.Kind(), nil
	}
	return s.ev.EvalFields(fields[0], fields[1:])
}

// Error codes reported to remote callers
const (
	CodeOutOfRange     = "out_of_range"
	CodeDivideByZero   = "divide_by_zero"
	CodeZeroMagnitude  = "zero_magnitude"
	CodeParse          = "parse"
	CodeNegativeLength = "negative_length"
	CodeUnknownOp      = "unknown_op"
	CodeUnknownKind    = "unknown_kind"
	CodeArity          = "bad_arity"
	CodeInternal       = "internal"
)

// Code maps err to a stable error code, or "" for a nil error
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vector.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, vector.ErrDivideByZero):
		return CodeDivideByZero
	case errors.Is(err, vector.ErrZeroMagnitude):
		return CodeZeroMagnitude
	case errors.Is(err, vector.ErrParse):
		return CodeParse
	case errors.Is(err, vector.ErrNegativeLength):
		return CodeNegativeLength
	case errors.Is(err, ErrUnknownOp):
		return CodeUnknownOp
	case errors.Is(err, ErrUnknownKind):
		return CodeUnknownKind
	case errors.Is(err, ErrArity):
		return CodeArity
	default:
		return CodeInternal
	}
}
