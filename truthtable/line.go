package truthtable

import (
	"regexp"
	"strings"
)

// Line is a chained expression, optionally bound to a name.
type Line struct {
	Name string
	Expr string
	// Named is false when the line has no "name = expr" form.
	// Such a line is its own name.
	Named bool
}

var bindingRe = regexp.MustCompile(`^\s*([a-zA-Z0-9]+) ?= ?(.+)$`)

// ParseLine splits "name = expr". An implication "A => B" is not a binding.
func ParseLine(line string) Line {
	m := bindingRe.FindStringSubmatch(line)
	if m == nil || strings.HasPrefix(m[2], ">") {
		return Line{Name: line, Expr: line}
	}
	return Line{Name: m[1], Expr: m[2], Named: true}
}
