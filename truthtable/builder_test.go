package truthtable

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozontech/truthtab/eval"
	"github.com/ozontech/truthtab/parser"
	"github.com/ozontech/truthtab/table"
	"github.com/ozontech/truthtab/value"
)

func outputs(t *Table, col int) string {
	var sb strings.Builder
	for _, r := range t.Rows {
		sb.WriteString(value.Bit(r.Outputs[col]))
	}
	return sb.String()
}

func TestGenerateOrder(t *testing.T) {
	tbl, err := New().Generate("A AND B")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, tbl.Variables)
	assert.Equal(t, []string{"A", "B", "out"}, tbl.Header)
	require.Len(t, tbl.Rows, 4)
	for i, want := range []string{"00", "01", "10", "11"} {
		assert.Equal(t, want, tbl.Rows[i].Assignment.String())
	}
	assert.Equal(t, "0001", outputs(tbl, 0))
}

func TestGenerateSemantics(t *testing.T) {
	type testCase struct {
		expr string
		out  string
	}

	tests := []testCase{
		{expr: "A => B", out: "1101"},
		{expr: "A <=> B", out: "1001"},
		{expr: "A || B", out: "0111"},
		{expr: "!A", out: "10"},
		{expr: "(A ∧ B) => C", out: "11111101"},
		{expr: "A AND 1", out: "01"},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			tbl, err := New().Generate(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.out, outputs(tbl, 0))
		})
	}
}

func TestGenerateRowCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		names := make([]string, 0, n)
		for i := 0; i < n; i++ {
			names = append(names, fmt.Sprintf("X%d", i))
		}
		expr := "1"
		if n > 0 {
			expr = strings.Join(names, " OR ")
		}
		tbl, err := New().Generate(expr)
		require.NoError(t, err)
		assert.Len(t, tbl.Rows, 1<<n, "n=%d", n)
	}
}

func TestGenerateNoVariables(t *testing.T) {
	tbl, err := New().Generate("1 AND 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"out"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Empty(t, tbl.Rows[0].Assignment)
	assert.Equal(t, "0", outputs(tbl, 0))
}

func TestGenerateIdempotent(t *testing.T) {
	b := New()
	t1, err := b.Generate("(A OR B) AND !C")
	require.NoError(t, err)
	t2, err := b.Generate("(A OR B) AND !C")
	require.NoError(t, err)

	assert.Equal(t, t1.Render(table.DefaultConfig), t2.Render(table.DefaultConfig))
	assert.True(t, Equal(t1, t2))
}

func TestGenerateErrors(t *testing.T) {
	_, err := New().Generate("A AND")
	assert.ErrorIs(t, err, parser.ErrSyntax)
	assert.Equal(t, "syntax", ErrorKind(err))

	_, err = New().Generate("(A OR B")
	assert.ErrorIs(t, err, parser.ErrSyntax)

	_, err = New().Generate("A NAND B")
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

func TestGenerateTrace(t *testing.T) {
	tbl, err := New(WithTrace(true)).Generate("A AND B")
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, []eval.Step{{Expr: "(1 AND 1)", Result: true}}, tbl.Rows[3].Trace)

	tbl, err = New().Generate("A AND B")
	require.NoError(t, err)
	assert.Nil(t, tbl.Rows[3].Trace)
}

func TestGenerateParallel(t *testing.T) {
	const expr = "(A => B) AND (C <=> D) OR !(E AND F) AND G"

	seq, err := New(WithWorkers(1)).Generate(expr)
	require.NoError(t, err)
	par, err := New(WithWorkers(4)).Generate(expr)
	require.NoError(t, err)

	require.Len(t, par.Rows, 128)
	assert.True(t, Equal(seq, par))
	assert.Equal(t, seq.Render(table.DefaultConfig), par.Render(table.DefaultConfig))
}

func TestForEachRowLowestError(t *testing.T) {
	b := New(WithWorkers(8))
	err := b.forEachRow(256, func(i int) error {
		if i%50 == 49 {
			return fmt.Errorf("row %d", i)
		}
		return nil
	})
	assert.EqualError(t, err, "row 49")

	calls := 0
	b = New()
	err = b.forEachRow(16, func(i int) error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 16, calls)
}

func TestBuildChained(t *testing.T) {
	tbl, err := New().BuildChained([]string{"A"}, []string{"B = !A", "A AND B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B = !A", "A AND B"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "10", outputs(tbl, 0))
	assert.Equal(t, "00", outputs(tbl, 1))
}

func TestBuildChainedOverride(t *testing.T) {
	// a line may rebind an input variable for later lines
	tbl, err := New().BuildChained([]string{"A", "B"}, []string{"A = A OR B", "A AND B"})
	require.NoError(t, err)
	assert.Equal(t, "0111", outputs(tbl, 0))
	assert.Equal(t, "0101", outputs(tbl, 1))
}

func TestBuildChainedHeaderFormat(t *testing.T) {
	tbl, err := New(WithHeaderFormatter(strings.ToLower)).BuildChained([]string{"A"}, []string{"X = A  OR 0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X = a  or 0"}, tbl.Header)

	tbl, err = New().BuildChained([]string{"A"}, []string{"A   =>   1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A => 1"}, tbl.Header)
	assert.Equal(t, "11", outputs(tbl, 0))
}

func TestBuildChainedErrors(t *testing.T) {
	_, err := New().BuildChained([]string{"A"}, []string{"B = A AND", "C = (A", "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrSyntax)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "line 2")

	_, err = New().BuildChained([]string{"A"}, []string{"A AND Z"})
	assert.ErrorIs(t, err, value.ErrUnknownLiteral)
	assert.Equal(t, "unknown_literal", ErrorKind(err))

	_, err = New().BuildChained(make([]string, 63), nil)
	assert.ErrorIs(t, err, ErrVariableCountOverflow)
}

func TestBuildChainedDuplicateVariables(t *testing.T) {
	tbl, err := New().BuildChained([]string{"A", "B", "A"}, []string{"A AND !B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, tbl.Variables)
	assert.Equal(t, []string{"A", "B", "A AND !B"}, tbl.Header)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, "0010", outputs(tbl, 0))

	assert.Equal(t, []string{"A", "B"}, UniqueVariables([]string{"A", "A", "B", "A"}))
	assert.Empty(t, UniqueVariables(nil))
}

func TestTooManyVariablesIsAnError(t *testing.T) {
	names := make([]string, 45)
	for i := range names {
		names[i] = fmt.Sprintf("V%d", i)
	}

	tbl, err := New().Generate(strings.Join(names, " OR "))
	assert.ErrorIs(t, err, ErrVariableCountOverflow)
	assert.Nil(t, tbl)
	assert.Equal(t, "variable_count_overflow", ErrorKind(err))

	tbl, err = New().BuildChained(names[:MaxVariables+1], []string{"V0"})
	assert.ErrorIs(t, err, ErrVariableCountOverflow)
	assert.Nil(t, tbl)
}

func TestParseLine(t *testing.T) {
	type testCase struct {
		line string
		want Line
	}

	tests := []testCase{
		{line: "B = !A", want: Line{Name: "B", Expr: "!A", Named: true}},
		{line: "B=A", want: Line{Name: "B", Expr: "A", Named: true}},
		{line: "  X1 = A <=> B", want: Line{Name: "X1", Expr: "A <=> B", Named: true}},
		{line: "A => B", want: Line{Name: "A => B", Expr: "A => B"}},
		{line: "A=>B", want: Line{Name: "A=>B", Expr: "A=>B"}},
		{line: "note to self", want: Line{Name: "note to self", Expr: "note to self"}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLine(tc.line), tc.line)
	}
}

func TestEquivalent(t *testing.T) {
	b := New()

	eq, t1, t2, err := b.Equivalent("A => B", "!A OR B")
	require.NoError(t, err)
	assert.True(t, eq)
	assert.NotNil(t, t1)
	assert.NotNil(t, t2)

	eq, _, _, err = b.Equivalent("A => B", "B => A")
	require.NoError(t, err)
	assert.False(t, eq)

	// different variables make different headers
	eq, _, _, err = b.Equivalent("A OR !A", "B OR !B")
	require.NoError(t, err)
	assert.False(t, eq)

	_, _, _, err = b.Equivalent("A", "A AND")
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

func TestEvaluate(t *testing.T) {
	res, err := New().Evaluate("(A AND B) OR C", map[string]string{"A": "1", "B": "false", "C": "T"})
	require.NoError(t, err)

	assert.True(t, res.Result)
	assert.Equal(t, "((1 AND false)=false OR T)=true", res.Rendered)
	assert.Equal(t, []eval.Step{
		{Expr: "(1 AND false)", Result: false},
		{Expr: "((1 AND false) OR T)", Result: true},
	}, res.Trace)

	_, err = New().Evaluate("A OR B", map[string]string{"A": "1"})
	assert.ErrorIs(t, err, value.ErrUnknownLiteral)
}

func TestCheckVariableCount(t *testing.T) {
	assert.NoError(t, CheckVariableCount(20, 20))
	assert.NoError(t, CheckVariableCount(MaxVariables, 0))
	assert.ErrorIs(t, CheckVariableCount(21, 20), ErrVariableCountOverflow)
	assert.ErrorIs(t, CheckVariableCount(MaxVariables+1, 0), ErrVariableCountOverflow)
	assert.EqualError(t, CheckVariableCount(45, 100), "too many variables: 45 variables, limit is 40")
}
