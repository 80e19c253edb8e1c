package parser

import (
	"fmt"

	"github.com/edwingeng/deque"

	"github.com/ozontech/truthtab/operator"
)

type Parser struct {
	registry *operator.Registry
}

func New(registry *operator.Registry) *Parser {
	return &Parser{registry: registry}
}

// Parse parses an expression with the default registry.
func Parse(data string) ([]Token, error) {
	return New(operator.Default).Parse(data)
}

// Lex splits data into tokens of the parser registry in source order.
func (p *Parser) Lex(data string) ([]Token, error) {
	return lex(data, p.registry)
}

// Parse returns the tokens of the expression in postfix order, so that a
// stack consumer reduces them honoring precedence and associativity.
// Parentheses never appear in the result.
//
// It is the shunting-yard algorithm: operands go to the output, operators
// wait on a stack until an operator binding weaker arrives.
// Prefix operators never pop the stack because they start an operand.
func (p *Parser) Parse(data string) ([]Token, error) {
	tokens, err := lex(data, p.registry)
	if err != nil {
		return nil, err
	}

	out := make([]Token, 0, len(tokens))
	stack := deque.NewDeque()
	expectOperand := true

	for _, tok := range tokens {
		switch tok.Kind {
		case KindLiteral:
			if !expectOperand {
				return nil, errorUnexpected(tok, "instead of operator")
			}
			out = append(out, tok)
			expectOperand = false

		case KindLParen:
			if !expectOperand {
				return nil, errorUnexpected(tok, "instead of operator")
			}
			stack.PushBack(tok)

		case KindRParen:
			if expectOperand {
				return nil, errorUnexpected(tok, "in place of operand")
			}
			closed := false
			for !stack.Empty() {
				top := stack.PopBack().(Token)
				if top.Kind == KindLParen {
					closed = true
					break
				}
				out = append(out, top)
			}
			if !closed {
				return nil, fmt.Errorf("%w: unexpected closing round bracket ')' at pos %d", ErrSyntax, tok.Pos)
			}

		case KindOperator:
			if !tok.Op.Class.Evaluable() {
				return nil, fmt.Errorf("%w: operator %q at pos %d is not supported", ErrSyntax, tok.Text, tok.Pos)
			}
			if tok.Op.Arity == 1 {
				if !expectOperand {
					return nil, errorUnexpected(tok, "instead of binary operator")
				}
				stack.PushBack(tok)
				continue
			}
			if expectOperand {
				return nil, errorUnexpected(tok, "in place of operand")
			}
			for !stack.Empty() {
				top := stack.Back().(Token)
				if top.Kind != KindOperator || !popsBefore(top.Op, tok.Op) {
					break
				}
				out = append(out, stack.PopBack().(Token))
			}
			stack.PushBack(tok)
			expectOperand = true
		}
	}

	if expectOperand {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: unexpected end of expression, expected operand", ErrSyntax)
	}

	for !stack.Empty() {
		top := stack.PopBack().(Token)
		if top.Kind == KindLParen {
			return nil, fmt.Errorf("%w: missing closing round bracket for '(' at pos %d", ErrSyntax, top.Pos)
		}
		out = append(out, top)
	}
	return out, nil
}

// popsBefore reports whether top of the stack must be reduced before cur is pushed
func popsBefore(top, cur *operator.Operator) bool {
	if top.Precedence != cur.Precedence {
		return top.Precedence > cur.Precedence
	}
	return cur.Associativity == operator.AssocLeft
}

func errorUnexpected(tok Token, where string) error {
	return fmt.Errorf("%w: unexpected %q %s at pos %d", ErrSyntax, tok.Text, where, tok.Pos)
}
