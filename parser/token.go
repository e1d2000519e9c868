package parser

import (
	"fmt"
	"strconv"

	"github.com/sergev/arith/diag"
)

// TokenType enumerates lexical categories recognised by the lexer.
type TokenType int

const (
	TokenEOF TokenType = iota

	TokenInt
	TokenFloat

	// Operators and punctuation
	TokenPlus   // +
	TokenMinus  // -
	TokenMult   // *
	TokenDiv    // /
	TokenExp    // ^
	TokenLParen // (
	TokenRParen // )
)

func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenInt:
		return "INT"
	case TokenFloat:
		return "FLOAT"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMult:
		return "MULT"
	case TokenDiv:
		return "DIV"
	case TokenExp:
		return "POW"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type  TokenType
	Int   int64   // literal value for TokenInt
	Float float64 // literal value for TokenFloat
	Span  diag.Span
}

func (t Token) String() string {
	switch t.Type {
	case TokenInt:
		return fmt.Sprintf("%s:%d", t.Type, t.Int)
	case TokenFloat:
		return fmt.Sprintf("%s:%s", t.Type, strconv.FormatFloat(t.Float, 'g', -1, 64))
	default:
		return t.Type.String()
	}
}

// Is reports whether the token has one of the given types.
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}
