package eval

import (
	"errors"
	"fmt"

	"github.com/ozontech/truthtab/operator"
	"github.com/ozontech/truthtab/parser"
	"github.com/ozontech/truthtab/value"
)

var (
	ErrInvalidOperator     = errors.New("invalid operator")
	ErrMalformedExpression = errors.New("malformed expression")
)

// Evaluator reduces postfix token streams to booleans.
// It never decides precedence: the order of tokens does.
type Evaluator struct {
	registry *operator.Registry
	parser   *parser.Parser
}

var Default = New(operator.Default)

func New(registry *operator.Registry) *Evaluator {
	return &Evaluator{
		registry: registry,
		parser:   parser.New(registry),
	}
}

// Evaluate reduces tokens and returns the final rendering, which is the
// marked form "(...)=true" for any expression with an operator.
// When ctx is not nil its bindings replace literal operands
// and every reduction is appended to its trace.
func (e *Evaluator) Evaluate(tokens []parser.Token, ctx *Context) (string, error) {
	v, err := e.reduce(tokens, ctx)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// EvaluateBool is like Evaluate, but returns the boolean value of the result.
func (e *Evaluator) EvaluateBool(tokens []parser.Token, ctx *Context) (bool, error) {
	v, err := e.reduce(tokens, ctx)
	if err != nil {
		return false, err
	}
	return v.Bool()
}

func (e *Evaluator) reduce(tokens []parser.Token, ctx *Context) (value.Value, error) {
	stack := make([]value.Value, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Kind {
		case parser.KindLiteral:
			literal := tok.Text
			if ctx != nil {
				if bound, has := ctx.Get(literal); has {
					literal = bound
				}
			}
			stack = append(stack, value.Pending(literal))

		case parser.KindOperator:
			op, has := e.registry.Lookup(tok.Text)
			if !has || !op.Class.Evaluable() {
				return value.Value{}, fmt.Errorf("%w: %q at pos %d", ErrInvalidOperator, tok.Text, tok.Pos)
			}
			if len(stack) < op.Arity {
				return value.Value{}, fmt.Errorf("%w: operator %q at pos %d needs %d operands", ErrMalformedExpression, tok.Text, tok.Pos, op.Arity)
			}
			operands := stack[len(stack)-op.Arity:]
			res, err := apply(op, operands)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack[:len(stack)-op.Arity], res)

			if ctx != nil {
				b, _ := res.Bool()
				ctx.addStep(res.Plain(), b)
			}

		default:
			return value.Value{}, fmt.Errorf("%w: unexpected %q at pos %d", ErrMalformedExpression, tok.Text, tok.Pos)
		}
	}

	if len(stack) != 1 {
		return value.Value{}, fmt.Errorf("%w: %d values left after reduction", ErrMalformedExpression, len(stack))
	}
	return stack[0], nil
}

func apply(op *operator.Operator, operands []value.Value) (value.Value, error) {
	if op.Class == operator.ClassNot {
		v1, err := operands[0].Bool()
		if err != nil {
			return value.Value{}, err
		}
		sep := ""
		if op.Symbol == "!" || op.IsWord() {
			sep = " "
		}
		return value.Bool(
			!v1,
			"("+op.Symbol+sep+operands[0].Plain()+")",
			"("+op.Symbol+sep+operands[0].String()+")",
		), nil
	}

	// both operands are valuated, unknown literals are never skipped
	v1, err := operands[0].Bool()
	if err != nil {
		return value.Value{}, err
	}
	v2, err := operands[1].Bool()
	if err != nil {
		return value.Value{}, err
	}

	var res bool
	switch op.Class {
	case operator.ClassOr:
		res = v1 || v2
	case operator.ClassAnd:
		res = v1 && v2
	case operator.ClassImpl:
		res = !v1 || v2
	case operator.ClassEqui:
		res = v1 == v2
	default:
		return value.Value{}, fmt.Errorf("%w: %q", ErrInvalidOperator, op.Symbol)
	}

	return value.Bool(
		res,
		"("+operands[0].Plain()+" "+op.Symbol+" "+operands[1].Plain()+")",
		"("+operands[0].String()+" "+op.Symbol+" "+operands[1].String()+")",
	), nil
}
