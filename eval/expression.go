package eval

import (
	"github.com/ozontech/truthtab/parser"
)

// Expression is a parsed expression ready to be evaluated many times.
type Expression struct {
	Text   string
	Tokens []parser.Token

	evaluator *Evaluator
}

func (e *Evaluator) Compile(text string) (*Expression, error) {
	tokens, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Expression{
		Text:      text,
		Tokens:    tokens,
		evaluator: e,
	}, nil
}

// Compile parses text with the default registry.
func Compile(text string) (*Expression, error) {
	return Default.Compile(text)
}

func (x *Expression) Eval(ctx *Context) (bool, error) {
	return x.evaluator.EvaluateBool(x.Tokens, ctx)
}

// Render returns the final marked rendering, see Evaluator.Evaluate.
func (x *Expression) Render(ctx *Context) (string, error) {
	return x.evaluator.Evaluate(x.Tokens, ctx)
}
