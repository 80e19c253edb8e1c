package operator

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownOperator = errors.New("unknown operator")

type Class int

const (
	ClassNot Class = iota
	ClassAnd
	ClassOr
	ClassImpl
	ClassEqui
	// display-only classes, never parsed or evaluated
	ClassNand
	ClassNor
	ClassXor
)

func (c Class) String() string {
	switch c {
	case ClassNot:
		return "NOT"
	case ClassAnd:
		return "AND"
	case ClassOr:
		return "OR"
	case ClassImpl:
		return "IMPL"
	case ClassEqui:
		return "EQUI"
	case ClassNand:
		return "NAND"
	case ClassNor:
		return "NOR"
	case ClassXor:
		return "XOR"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Evaluable reports whether operators of the class can be parsed and evaluated.
func (c Class) Evaluable() bool {
	return c <= ClassEqui
}

type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

type Operator struct {
	Symbol        string
	Arity         int
	Precedence    int
	Associativity Associativity
	Class         Class
}

func (o *Operator) String() string {
	return o.Symbol
}

// IsWord reports whether the symbol is made of letters, like "and" or "IMPL".
func (o *Operator) IsWord() bool {
	return isWord(o.Symbol)
}

// Registry is a catalog of operator symbols. Aliases of one class are
// interchangeable; symbols are unique within a registry.
type Registry struct {
	bySymbol map[string]*Operator
	ops      []*Operator
	glyphs   map[Class]Glyphs
}

// Glyphs are canonical display forms of a class.
type Glyphs struct {
	ASCII   string
	Unicode string
}

func NewRegistry() *Registry {
	return &Registry{
		bySymbol: make(map[string]*Operator),
		glyphs:   make(map[Class]Glyphs),
	}
}

func (r *Registry) Register(op Operator) error {
	if op.Symbol == "" {
		return fmt.Errorf("empty operator symbol for class %s", op.Class)
	}
	if op.Arity != 1 && op.Arity != 2 {
		return fmt.Errorf("operator %q: unsupported arity %d", op.Symbol, op.Arity)
	}
	if prev, has := r.bySymbol[op.Symbol]; has {
		return fmt.Errorf("operator %q is already registered for class %s", op.Symbol, prev.Class)
	}
	p := &op
	r.bySymbol[op.Symbol] = p
	r.ops = append(r.ops, p)
	return nil
}

func (r *Registry) SetGlyphs(c Class, g Glyphs) {
	r.glyphs[c] = g
}

func (r *Registry) Glyphs(c Class) Glyphs {
	return r.glyphs[c]
}

func (r *Registry) Lookup(symbol string) (*Operator, bool) {
	op, has := r.bySymbol[symbol]
	return op, has
}

// Resolve is like Lookup, but reports unknown symbols as ErrUnknownOperator.
func (r *Registry) Resolve(symbol string) (*Operator, error) {
	op, has := r.bySymbol[symbol]
	if !has {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
	return op, nil
}

// Operators returns registered operators in registration order.
func (r *Registry) Operators() []*Operator {
	return r.ops
}

// Symbols returns symbols of operators that can be parsed, longest first.
// Symbols of equal length are ordered lexicographically.
func (r *Registry) Symbols() []string {
	res := make([]string, 0, len(r.ops))
	for _, op := range r.ops {
		if op.Class.Evaluable() {
			res = append(res, op.Symbol)
		}
	}
	SortLongestFirst(res)
	return res
}

// SortLongestFirst sorts by rune length descending, then lexicographically.
func SortLongestFirst(s []string) {
	sort.Slice(s, func(i, j int) bool {
		li, lj := len([]rune(s[i])), len([]rune(s[j]))
		if li != lj {
			return li > lj
		}
		return s[i] < s[j]
	})
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
