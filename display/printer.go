package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ozontech/truthtab/eval"
	"github.com/ozontech/truthtab/table"
	"github.com/ozontech/truthtab/truthtable"
	"github.com/ozontech/truthtab/value"
)

// Printer writes rendered tables and traces to a console.
type Printer struct {
	out    io.Writer
	cfg    table.Config
	header *color.Color
	truthy *color.Color
	falsy  *color.Color
}

// NewPrinter creates a printer, colored output makes the header bold
// and results green or red.
func NewPrinter(out io.Writer, cfg table.Config, colored bool) *Printer {
	p := &Printer{
		out:    out,
		cfg:    cfg,
		header: color.New(color.Bold),
		truthy: color.New(color.FgGreen),
		falsy:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.header, p.truthy, p.falsy} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// PrintTitle writes a bold line, e.g. the expression above its table.
func (p *Printer) PrintTitle(title string) error {
	_, err := fmt.Fprintln(p.out, p.header.Sprint(title))
	return err
}

func (p *Printer) PrintTable(t *truthtable.Table) error {
	rendered := t.Render(p.cfg)
	header, rest, _ := strings.Cut(rendered, "\n")
	if _, err := fmt.Fprintln(p.out, p.header.Sprint(header)); err != nil {
		return err
	}
	_, err := io.WriteString(p.out, rest)
	return err
}

// PrintTrace writes the reductions of every row under its assignment.
func (p *Printer) PrintTrace(t *truthtable.Table) error {
	for _, r := range t.Rows {
		if len(r.Trace) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(p.out, "%s:\n", p.header.Sprint(assignmentString(t.Variables, r.Assignment))); err != nil {
			return err
		}
		if err := p.PrintSteps(r.Trace); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) PrintSteps(steps []eval.Step) error {
	for _, s := range steps {
		if _, err := fmt.Fprintf(p.out, "  %s = %s\n", s.Expr, p.bit(s.Result)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) PrintResult(rendered string, res bool) error {
	_, err := fmt.Fprintf(p.out, "%s\n%s\n", rendered, p.bit(res))
	return err
}

func (p *Printer) PrintVariables(variables []string) error {
	_, err := fmt.Fprintln(p.out, strings.Join(variables, " "))
	return err
}

func (p *Printer) bit(b bool) string {
	if b {
		return p.truthy.Sprint(value.Bit(b))
	}
	return p.falsy.Sprint(value.Bit(b))
}

func assignmentString(variables []string, a truthtable.Assignment) string {
	pairs := make([]string, len(variables))
	for i, v := range variables {
		pairs[i] = v + "=" + value.Bit(a[i])
	}
	return strings.Join(pairs, " ")
}
