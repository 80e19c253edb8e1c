package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozontech/truthtab/operator"
	"github.com/ozontech/truthtab/parser"
	"github.com/ozontech/truthtab/value"
)

func evalBool(t *testing.T, expr string, ctx *Context) bool {
	t.Helper()
	x, err := Compile(expr)
	require.NoError(t, err, expr)
	b, err := x.Eval(ctx)
	require.NoError(t, err, expr)
	return b
}

func TestOperatorSemantics(t *testing.T) {
	type row struct{ a, b, and, or, impl, equi bool }
	rows := []row{
		{false, false, false, false, true, true},
		{false, true, false, true, true, false},
		{true, false, false, true, false, false},
		{true, true, true, true, true, true},
	}
	for _, r := range rows {
		ctx := Bind([]string{"A", "B"}, []string{value.Bit(r.a), value.Bit(r.b)})
		assert.Equal(t, r.and, evalBool(t, "A AND B", ctx))
		assert.Equal(t, r.and, evalBool(t, "A ∧ B", ctx))
		assert.Equal(t, r.or, evalBool(t, "A || B", ctx))
		assert.Equal(t, r.impl, evalBool(t, "A => B", ctx))
		assert.Equal(t, r.impl, evalBool(t, "A impl B", ctx))
		assert.Equal(t, r.equi, evalBool(t, "A <=> B", ctx))
		assert.Equal(t, !r.a, evalBool(t, "!A", ctx))
		assert.Equal(t, !r.a, evalBool(t, "¬A", ctx))
	}
}

func TestEvaluateRendering(t *testing.T) {
	x, err := Compile("A AND B OR C")
	require.NoError(t, err)

	ctx := Bind([]string{"A", "B", "C"}, []string{"1", "0", "1"})
	res, err := x.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "((1 AND 0)=false OR 1)=true", res)

	assert.Equal(t, []Step{
		{Expr: "(1 AND 0)", Result: false},
		{Expr: "((1 AND 0) OR 1)", Result: true},
	}, ctx.Trace())
}

func TestEvaluateNotRendering(t *testing.T) {
	tests := []struct {
		expr string
		exp  string
	}{
		{"!A", "(! 1)=false"},
		{"¬A", "(¬1)=false"},
		{"NOT A", "(NOT 1)=false"},
		{"!!A", "(! (! 1)=false)=true"},
	}
	for _, tt := range tests {
		x, err := Compile(tt.expr)
		require.NoError(t, err)
		res, err := x.Render(Bind([]string{"A"}, []string{"1"}))
		require.NoError(t, err)
		assert.Equal(t, tt.exp, res, tt.expr)
	}
}

func TestEvaluateNotTrace(t *testing.T) {
	tests := []struct {
		expr string
		exp  string
	}{
		{"¬A", "(¬1)"},
		{"!A", "(! 1)"},
		{"not A", "(not 1)"},
	}
	for _, tt := range tests {
		x, err := Compile(tt.expr)
		require.NoError(t, err)
		ctx := Bind([]string{"A"}, []string{"1"})
		_, err = x.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Step{{Expr: tt.exp, Result: false}}, ctx.Trace(), tt.expr)
	}
}

func TestEvaluateLiteralOnly(t *testing.T) {
	x, err := Compile("A")
	require.NoError(t, err)
	ctx := Bind([]string{"A"}, []string{"0"})
	res, err := x.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0", res)
	assert.Empty(t, ctx.Trace())

	assert.True(t, evalBool(t, "TRUE", nil))
	assert.False(t, evalBool(t, "ff", nil))
	assert.True(t, evalBool(t, "1 => 0 => 1", nil))
}

func TestEvaluateWithoutContext(t *testing.T) {
	tokens, err := parser.Parse("1 AND (0 OR tt)")
	require.NoError(t, err)
	b, err := Default.EvaluateBool(tokens, nil)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Compile("A AND maybe")
	require.NoError(t, err)

	x, _ := Compile("A OR maybe")
	_, err = x.Eval(Bind([]string{"A"}, []string{"1"}))
	assert.True(t, errors.Is(err, value.ErrUnknownLiteral))

	// unbound variable is an unknown literal
	x, _ = Compile("A AND B")
	_, err = x.Eval(Bind([]string{"A"}, []string{"1"}))
	assert.ErrorIs(t, err, value.ErrUnknownLiteral)

	_, err = Compile("A AND")
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

func TestEvaluateInvalidOperator(t *testing.T) {
	tokens := []parser.Token{
		{Kind: parser.KindLiteral, Text: "1"},
		{Kind: parser.KindLiteral, Text: "0"},
		{Kind: parser.KindOperator, Text: "NAND"},
	}
	_, err := Default.Evaluate(tokens, nil)
	assert.ErrorIs(t, err, ErrInvalidOperator)

	tokens[2].Text = "~"
	_, err = Default.Evaluate(tokens, nil)
	assert.ErrorIs(t, err, ErrInvalidOperator)

	// tokens produced with another registry
	r := operator.NewRegistry()
	require.NoError(t, r.Register(operator.Operator{Symbol: "&", Arity: 2, Precedence: 4, Class: operator.ClassAnd}))
	tokens, err = parser.New(r).Parse("1 & 0")
	require.NoError(t, err)
	_, err = Default.Evaluate(tokens, nil)
	assert.ErrorIs(t, err, ErrInvalidOperator)

	b, err := New(r).EvaluateBool(tokens, nil)
	require.NoError(t, err)
	assert.False(t, b)
}

func TestEvaluateMalformed(t *testing.T) {
	and := parser.Token{Kind: parser.KindOperator, Text: "AND"}
	one := parser.Token{Kind: parser.KindLiteral, Text: "1"}

	_, err := Default.Evaluate([]parser.Token{one, and}, nil)
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Default.Evaluate([]parser.Token{one, one}, nil)
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Default.Evaluate(nil, nil)
	assert.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Default.Evaluate([]parser.Token{{Kind: parser.KindLParen, Text: "("}}, nil)
	assert.ErrorIs(t, err, ErrMalformedExpression)
}

func TestContext(t *testing.T) {
	ctx := NewContext()
	_, has := ctx.Get("A")
	assert.False(t, has)

	ctx.Set("A", "1")
	l, has := ctx.Get("A")
	assert.True(t, has)
	assert.Equal(t, "1", l)

	x, _ := Compile("A AND A")
	_, err := x.Eval(ctx)
	require.NoError(t, err)
	assert.Len(t, ctx.Trace(), 1)
	ctx.ResetTrace()
	assert.Empty(t, ctx.Trace())
}
