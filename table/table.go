package table

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ozontech/truthtab/consts"
)

// Config is the explicit rendering configuration of tables.
type Config struct {
	// HeaderLine inserts a horizontal rule after the first row.
	HeaderLine bool
	// ColumnLines separates adjacent cells with a vertical line.
	ColumnLines bool
}

var DefaultConfig = Config{HeaderLine: true, ColumnLines: true}

func (c Config) Format(rows [][]string) string {
	return Format(rows, c.HeaderLine, c.ColumnLines)
}

// Format renders rows as an aligned table, one newline-terminated line per row.
// Every row is printed with the same format built from the widest cell of each
// column. When both lines are enabled, the rule gets a junction wherever the
// line directly above it has a vertical separator.
func Format(rows [][]string, headerLine, columnLines bool) string {
	if len(rows) == 0 {
		return ""
	}

	cells := make([][]any, len(rows))
	for i, row := range rows {
		cells[i] = make([]any, 0, 2*len(row))
		for j, cell := range row {
			if columnLines && j > 0 {
				cells[i] = append(cells[i], consts.ColumnSeparator)
			}
			cells[i] = append(cells[i], cell)
		}
	}

	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for j, cell := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], utf8.RuneCountInString(cell.(string)))
		}
	}

	format := strings.Builder{}
	total := 0
	if columnLines {
		format.WriteByte(' ')
		total++
	}
	for _, w := range widths {
		if !columnLines {
			w += 2
		}
		total += w
		format.WriteString("%-")
		format.WriteString(strconv.Itoa(w))
		format.WriteByte('s')
	}

	res := strings.Builder{}
	latest := ""
	for i, row := range cells {
		latest = sprintf(format.String(), row, len(widths))
		res.WriteString(latest)
		res.WriteByte('\n')

		if i == 0 && headerLine {
			res.WriteString(rule(total, latest))
			res.WriteByte('\n')
		}
	}
	return res.String()
}

// rule builds a horizontal line of the given width, crossing vertical
// separators of the line above.
func rule(width int, above string) string {
	line := []rune(strings.Repeat(string(consts.RuleRune), width))
	i := 0
	for _, r := range above {
		if i >= len(line) {
			break
		}
		if r == consts.VerticalRune {
			line[i] = consts.JunctionRune
		}
		i++
	}
	return string(line)
}

// sprintf pads short rows with empty cells, so a ragged row is still
// rendered with the shared format.
func sprintf(format string, row []any, columns int) string {
	for len(row) < columns {
		row = append(row, "")
	}
	return fmt.Sprintf(format, row...)
}
