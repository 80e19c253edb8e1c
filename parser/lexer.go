package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ozontech/truthtab/operator"
)

var ErrSyntax = errors.New("syntax error")

type Kind int

const (
	KindLiteral Kind = iota
	KindOperator
	KindLParen
	KindRParen
)

type Token struct {
	Kind Kind
	Text string
	// Op is set for KindOperator only
	Op *operator.Operator
	// Pos is the rune offset of the token in the expression
	Pos int
}

func (t Token) String() string {
	return t.Text
}

type lexer struct {
	data []rune
	pos  int

	registry *operator.Registry
	// punctuation holds non-word operator symbols, longest first
	punctuation [][]rune
}

func newLexer(data string, registry *operator.Registry) *lexer {
	l := &lexer{
		data:     []rune(data),
		registry: registry,
	}
	var symbols []string
	for _, op := range registry.Operators() {
		if !op.IsWord() {
			symbols = append(symbols, op.Symbol)
		}
	}
	operator.SortLongestFirst(symbols)
	for _, s := range symbols {
		l.punctuation = append(l.punctuation, []rune(s))
	}
	return l
}

func (l *lexer) errorUnexpectedSymbol(where string) error {
	return fmt.Errorf("%w: unexpected symbol '%c' %s at pos %d", ErrSyntax, l.cur(), where, l.pos)
}

func (l *lexer) cur() rune {
	return l.data[l.pos]
}

func (l *lexer) eof() bool {
	return l.pos == len(l.data)
}

func (l *lexer) skipSpaces() {
	for !l.eof() && unicode.IsSpace(l.cur()) {
		l.pos++
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// next returns the next token, has is false at the end of input
func (l *lexer) next() (Token, bool, error) {
	l.skipSpaces()
	if l.eof() {
		return Token{}, false, nil
	}

	start := l.pos
	switch r := l.cur(); {
	case r == '(':
		l.pos++
		return Token{Kind: KindLParen, Text: "(", Pos: start}, true, nil
	case r == ')':
		l.pos++
		return Token{Kind: KindRParen, Text: ")", Pos: start}, true, nil
	case isIdentRune(r):
		for !l.eof() && isIdentRune(l.cur()) {
			l.pos++
		}
		word := string(l.data[start:l.pos])
		if op, has := l.registry.Lookup(word); has {
			return Token{Kind: KindOperator, Text: word, Op: op, Pos: start}, true, nil
		}
		return Token{Kind: KindLiteral, Text: word, Pos: start}, true, nil
	}

	for _, symbol := range l.punctuation {
		if l.hasPrefix(symbol) {
			l.pos += len(symbol)
			text := string(symbol)
			op, _ := l.registry.Lookup(text)
			return Token{Kind: KindOperator, Text: text, Op: op, Pos: start}, true, nil
		}
	}

	return Token{}, false, l.errorUnexpectedSymbol("in place of operand or operator")
}

func (l *lexer) hasPrefix(symbol []rune) bool {
	if l.pos+len(symbol) > len(l.data) {
		return false
	}
	for i, r := range symbol {
		if l.data[l.pos+i] != r {
			return false
		}
	}
	return true
}

// Lex splits an expression into tokens without checking the grammar.
func Lex(data string) ([]Token, error) {
	return lex(data, operator.Default)
}

func lex(data string, registry *operator.Registry) ([]Token, error) {
	l := newLexer(data, registry)
	var tokens []Token
	for {
		tok, has, err := l.next()
		if err != nil {
			return nil, err
		}
		if !has {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Postfix renders tokens separated by spaces, used in tests and debug logs.
func Postfix(tokens []Token) string {
	b := strings.Builder{}
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
