package display

import (
	"strings"

	"github.com/ozontech/truthtab/operator"
	"github.com/ozontech/truthtab/parser"
)

type Mode int

const (
	ModeASCII Mode = iota
	ModeUnicode
)

func ModeOf(unicode bool) Mode {
	if unicode {
		return ModeUnicode
	}
	return ModeASCII
}

// Normalizer rewrites expressions with the canonical glyph of every operator.
// It is presentation only: evaluation always works on the original text.
type Normalizer struct {
	mode   Mode
	parser *parser.Parser
	// registry resolves glyphs of the operators the parser produced
	registry *operator.Registry
}

func NewNormalizer(mode Mode, registry *operator.Registry) *Normalizer {
	return &Normalizer{
		mode:     mode,
		parser:   parser.New(registry),
		registry: registry,
	}
}

// Normalize renders expr with canonical glyphs and single spaces around
// binary operators. Text that can't be tokenized is only whitespace-collapsed.
func (n *Normalizer) Normalize(expr string) string {
	tokens, err := n.parser.Lex(expr)
	if err != nil {
		return collapse(expr)
	}

	b := strings.Builder{}
	var prev *parser.Token
	for i := range tokens {
		tok := &tokens[i]
		if prev != nil && spaced(prev, tok) {
			b.WriteByte(' ')
		}
		b.WriteString(n.glyph(tok))
		prev = tok
	}
	return b.String()
}

func (n *Normalizer) glyph(tok *parser.Token) string {
	if tok.Kind != parser.KindOperator || tok.Op == nil {
		return tok.Text
	}
	g := n.registry.Glyphs(tok.Op.Class)
	switch {
	case n.mode == ModeUnicode && g.Unicode != "":
		return g.Unicode
	case n.mode == ModeASCII && g.ASCII != "":
		return g.ASCII
	}
	return tok.Text
}

// spaced tells whether a space separates two adjacent tokens.
func spaced(prev, cur *parser.Token) bool {
	switch {
	case prev.Kind == parser.KindLParen, cur.Kind == parser.KindRParen:
		return false
	case prev.Kind == parser.KindOperator && prev.Op != nil && prev.Op.Arity == 1:
		return false
	}
	return true
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
