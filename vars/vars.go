package vars

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/ozontech/truthtab/operator"
)

var literalKeywords = []string{"TRUE", "FALSE", "TT", "FF"}

// Extractor finds free variables of expressions by stripping every operator
// and literal keyword from the text.
type Extractor struct {
	// removals are applied in order, longest tokens first
	removals []removal
}

type removal struct {
	token string
	// re is set for single-character alphanumeric tokens only
	re *regexp.Regexp
}

var Default = New(operator.Default)

func New(registry *operator.Registry) *Extractor {
	seen := make(map[string]struct{})
	var tokens []string
	add := func(s string) {
		if _, has := seen[s]; !has {
			seen[s] = struct{}{}
			tokens = append(tokens, s)
		}
	}
	for _, s := range registry.Symbols() {
		add(s)
		add(strings.ToLower(s))
	}
	for _, s := range literalKeywords {
		add(s)
		add(strings.ToLower(s))
	}
	operator.SortLongestFirst(tokens)

	e := &Extractor{removals: make([]removal, 0, len(tokens))}
	for _, t := range tokens {
		r := removal{token: t}
		if isSingleAlnum(t) {
			r.re = regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
		}
		e.removals = append(e.removals, r)
	}
	return e
}

// Extract uses the default registry.
func Extract(expression string) []string {
	return Default.Extract(expression)
}

// Extract returns sorted unique variable names referenced by the expression.
// The order is the canonical order of assignment bits.
func (e *Extractor) Extract(expression string) []string {
	expression = strings.NewReplacer("(", " ", ")", " ").Replace(expression)

	for _, r := range e.removals {
		if r.re != nil {
			expression = r.re.ReplaceAllString(expression, " ")
			continue
		}
		// multi-character tokens are removed wherever they occur, and so are
		// punctuation characters which cannot clip a variable name
		expression = strings.ReplaceAll(expression, r.token, " ")
	}

	seen := make(map[string]struct{})
	res := []string{}
	for _, field := range strings.Fields(expression) {
		if field == "0" || field == "1" {
			continue
		}
		if _, has := seen[field]; has {
			continue
		}
		seen[field] = struct{}{}
		res = append(res, field)
	}
	sort.Strings(res)
	return res
}

func isSingleAlnum(s string) bool {
	rs := []rune(s)
	return len(rs) == 1 && (unicode.IsLetter(rs[0]) || unicode.IsDigit(rs[0]))
}
