package value

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLiteral = errors.New("unknown literal")

const (
	suffixTrue  = "=true"
	suffixFalse = "=false"
)

// Valuate maps a literal to a boolean. Besides the usual constants it accepts
// rendered sub-expressions ending with "=true" or "=false".
func Valuate(literal string) (bool, error) {
	if literal != "" {
		switch lower := strings.ToLower(literal); {
		case lower == "t", lower == "tt", lower == "true", lower == "1", strings.HasSuffix(lower, suffixTrue):
			return true, nil
		case lower == "f", lower == "ff", lower == "false", lower == "0", strings.HasSuffix(lower, suffixFalse):
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownLiteral, literal)
}

// Mark appends the result marker to a rendered sub-expression.
func Mark(rendered string, b bool) string {
	if b {
		return rendered + suffixTrue
	}
	return rendered + suffixFalse
}

// Bit renders b as "1" or "0".
func Bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

type Kind uint8

const (
	KindPending Kind = iota
	KindBool
)

// Value is an operand on the evaluation stack: either a literal not yet
// valuated or the result of a reduction.
type Value struct {
	kind Kind
	b    bool

	// plain is the rendering without result markers,
	// marked is the rendering with nested "=true"/"=false" markers.
	plain  string
	marked string
}

func Pending(literal string) Value {
	return Value{kind: KindPending, plain: literal, marked: literal}
}

// Bool is a reduced value. Operand renderings are the marked renderings of
// the nested values, plain ones are used for the trace.
func Bool(b bool, plain, marked string) Value {
	return Value{kind: KindBool, b: b, plain: plain, marked: Mark(marked, b)}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Bool resolves the value, valuating pending literals.
func (v Value) Bool() (bool, error) {
	if v.kind == KindBool {
		return v.b, nil
	}
	return Valuate(v.plain)
}

// Plain returns the rendering without result markers.
func (v Value) Plain() string {
	return v.plain
}

// String returns the marked rendering, e.g. "((1 AND 0)=false OR 1)=true".
func (v Value) String() string {
	return v.marked
}
