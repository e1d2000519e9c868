package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sergev/arith/diag"
)

// Tokenize scans text into tokens terminated by a TokenEOF token. The
// returned error, when non-nil, is an IllegalCharacter *diag.Diagnostic and
// the token slice is nil.
func Tokenize(sourceName, text string) ([]Token, error) {
	lx := newLexer(sourceName, text)
	return lx.tokens()
}

type lexer struct {
	pos  diag.Position
	curr rune
}

func newLexer(name, src string) *lexer {
	lx := &lexer{pos: diag.Start(name, src)}
	lx.curr = lx.runeAt(lx.pos)
	return lx
}

func (lx *lexer) runeAt(pos diag.Position) rune {
	if pos.AtEnd() {
		return diag.EOF
	}
	r, _ := utf8.DecodeRuneInString(pos.SourceText[pos.Offset:])
	return r
}

func (lx *lexer) advance() {
	lx.pos = lx.pos.Advance(lx.curr)
	lx.curr = lx.runeAt(lx.pos)
}

func (lx *lexer) peek() rune {
	if lx.curr == diag.EOF {
		return diag.EOF
	}
	return lx.runeAt(lx.pos.Advance(lx.curr))
}

func (lx *lexer) tokens() ([]Token, error) {
	var tokens []Token
	for lx.curr != diag.EOF {
		switch {
		case lx.curr == ' ' || lx.curr == '\t':
			lx.advance()
		case isDigit(lx.curr) || (lx.curr == '.' && isDigit(lx.peek()) && !lx.follows(tokens, TokenInt, TokenFloat)):
			tok, err := lx.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			tt, ok := punctuation(lx.curr)
			if !ok {
				start := lx.pos
				ch := lx.curr
				lx.advance()
				return nil, diag.NewIllegalCharacter(diag.Span{Start: start, End: lx.pos}, "'%c'", ch)
			}
			tokens = append(tokens, lx.simpleToken(tt))
		}
	}
	tokens = append(tokens, Token{
		Type: TokenEOF,
		Span: diag.Span{Start: lx.pos, End: lx.pos},
	})
	return tokens, nil
}

// follows reports whether the last token is one of types and ends at the
// current position.
func (lx *lexer) follows(tokens []Token, types ...TokenType) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	return last.Is(types...) && last.Span.End.Offset == lx.pos.Offset
}

func punctuation(r rune) (TokenType, bool) {
	switch r {
	case '+':
		return TokenPlus, true
	case '-':
		return TokenMinus, true
	case '*':
		return TokenMult, true
	case '/':
		return TokenDiv, true
	case '^':
		return TokenExp, true
	case '(':
		return TokenLParen, true
	case ')':
		return TokenRParen, true
	default:
		return TokenEOF, false
	}
}

func (lx *lexer) simpleToken(tt TokenType) Token {
	start := lx.pos
	lx.advance()
	return Token{
		Type: tt,
		Span: diag.Span{Start: start, End: lx.pos},
	}
}

// scanNumber consumes digits and at most one '.'. A second '.' ends the
// literal and is left for the next scan, which rejects it.
func (lx *lexer) scanNumber() (Token, error) {
	start := lx.pos
	var builder strings.Builder
	seenDot := false
	for isDigit(lx.curr) || lx.curr == '.' {
		if lx.curr == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		builder.WriteRune(lx.curr)
		lx.advance()
	}
	span := diag.Span{Start: start, End: lx.pos}
	lexeme := builder.String()

	if !seenDot {
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err == nil {
			return Token{Type: TokenInt, Int: n, Span: span}, nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return Token{}, diag.NewIllegalCharacter(span, "'%s'", lexeme)
		}
		// too large for int64: keep the magnitude as a float
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, diag.NewIllegalCharacter(span, "'%s'", lexeme)
	}
	return Token{Type: TokenFloat, Float: f, Span: span}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
