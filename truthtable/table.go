package truthtable

import (
	"slices"

	"github.com/ozontech/truthtab/eval"
	"github.com/ozontech/truthtab/table"
	"github.com/ozontech/truthtab/value"
)

type Row struct {
	Assignment Assignment
	// Outputs holds one value per evaluated expression
	Outputs []bool
	// Trace is filled when the builder traces evaluation
	Trace []eval.Step
}

type Table struct {
	Variables []string
	Header    []string
	Rows      []Row
}

// Grid returns the header followed by rows rendered as "0"/"1".
func (t *Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, slices.Clone(t.Header))
	for _, r := range t.Rows {
		line := r.Assignment.Bits()
		for _, out := range r.Outputs {
			line = append(line, value.Bit(out))
		}
		grid = append(grid, line)
	}
	return grid
}

func (t *Table) Render(cfg table.Config) string {
	return cfg.Format(t.Grid())
}

// Equal reports whether both tables have the same header and the same rows.
// Traces are not compared.
func Equal(a, b *Table) bool {
	if !slices.Equal(a.Header, b.Header) || len(a.Rows) != len(b.Rows) {
		return false
	}
	for i := range a.Rows {
		if !slices.Equal(a.Rows[i].Assignment, b.Rows[i].Assignment) ||
			!slices.Equal(a.Rows[i].Outputs, b.Rows[i].Outputs) {
			return false
		}
	}
	return true
}
