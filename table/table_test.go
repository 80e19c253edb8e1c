package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func implTable() [][]string {
	return [][]string{
		{"A", "B", "out"},
		{"0", "0", "1"},
		{"0", "1", "1"},
		{"1", "0", "0"},
		{"1", "1", "1"},
	}
}

func TestFormatBoxed(t *testing.T) {
	exp := "" +
		" A ║ B ║ out\n" +
		"═══╬═══╬════\n" +
		" 0 ║ 0 ║ 1  \n" +
		" 0 ║ 1 ║ 1  \n" +
		" 1 ║ 0 ║ 0  \n" +
		" 1 ║ 1 ║ 1  \n"
	assert.Equal(t, exp, Format(implTable(), true, true))
	assert.Equal(t, exp, DefaultConfig.Format(implTable()))
}

func TestFormatPlain(t *testing.T) {
	exp := "" +
		"A  B  out  \n" +
		"0  0  1    \n" +
		"0  1  1    \n" +
		"1  0  0    \n" +
		"1  1  1    \n"
	assert.Equal(t, exp, Format(implTable(), false, false))
}

func TestFormatRuleWithoutColumns(t *testing.T) {
	out := Format(implTable(), true, false)
	lines := strings.Split(out, "\n")
	assert.Equal(t, strings.Repeat("═", 11), lines[1])
	assert.Len(t, lines, 7)
}

func TestFormatColumnsWithoutRule(t *testing.T) {
	out := Format(implTable(), false, true)
	assert.Equal(t, " A ║ B ║ out\n 0 ║ 0 ║ 1  \n", strings.Join(strings.SplitAfter(out, "\n")[:2], ""))
	assert.NotContains(t, out, "═")
}

func TestFormatWideCells(t *testing.T) {
	rows := [][]string{
		{"A", "B = ¬A", "A ∧ B"},
		{"0", "1", "0"},
		{"1", "0", "0"},
	}
	exp := "" +
		" A ║ B = ¬A ║ A ∧ B\n" +
		"═══╬════════╬══════\n" +
		" 0 ║ 1      ║ 0    \n" +
		" 1 ║ 0      ║ 0    \n"
	assert.Equal(t, exp, Format(rows, true, true))
}

func TestFormatEqualWidthLines(t *testing.T) {
	out := Format(implTable(), true, true)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for _, l := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)), l)
	}
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, "", Format(nil, true, true))
}

func TestFormatDoesNotMutateRows(t *testing.T) {
	rows := implTable()
	Format(rows, true, true)
	assert.Equal(t, implTable(), rows)
}
