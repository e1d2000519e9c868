package parser

import (
	"github.com/sergev/arith/diag"
)

// Parse builds a syntax tree from tokens produced by Tokenize. The returned
// error, when non-nil, is an IllegalSyntax *diag.Diagnostic.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		eof := Token{Type: TokenEOF}
		if len(tokens) > 0 {
			end := tokens[len(tokens)-1].Span.End
			eof.Span = diag.Span{Start: end, End: end}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	p := &parser{tokens: tokens}
	p.curr = tokens[0]
	return p.parseProgram()
}

type parser struct {
	tokens []Token
	idx    int
	curr   Token
}

func (p *parser) advance() Token {
	tok := p.curr
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	p.curr = p.tokens[p.idx]
	return tok
}

func (p *parser) parseProgram() (Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.curr.Type != TokenEOF {
		return nil, p.errorf("Expected '+', '-', '*' or '/'")
	}
	return expr, nil
}

// expr := term (('+' | '-') term)*
func (p *parser) parseExpression() (Node, error) {
	return p.parseBinary(p.parseTerm, TokenPlus, TokenMinus)
}

// term := factor (('*' | '/') factor)*
func (p *parser) parseTerm() (Node, error) {
	return p.parseBinary(p.parseFactor, TokenMult, TokenDiv)
}

func (p *parser) parseBinary(operand func() (Node, error), ops ...TokenType) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.curr.Is(ops...) {
		opTok := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Left:  left,
			Op:    opTok,
			Right: right,
		}
	}
	return left, nil
}

// factor := ('+' | '-') factor | power
func (p *parser) parseFactor() (Node, error) {
	if p.curr.Is(TokenPlus, TokenMinus) {
		opTok := p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{
			Op:      opTok,
			Operand: operand,
		}, nil
	}
	return p.parsePower()
}

// power := atom ('^' factor)?
//
// The right operand goes through factor, which recurses back into power, so
// 2^3^2 groups as 2^(3^2).
func (p *parser) parsePower() (Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.curr.Type != TokenExp {
		return left, nil
	}
	opTok := p.advance()
	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &BinaryOp{
		Left:  left,
		Op:    opTok,
		Right: right,
	}, nil
}

// atom := INT | FLOAT | '(' expr ')'
func (p *parser) parseAtom() (Node, error) {
	switch p.curr.Type {
	case TokenInt, TokenFloat:
		return &NumberLiteral{Token: p.advance()}, nil
	case TokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.curr.Type != TokenRParen {
			return nil, p.errorf("Expected ')'")
		}
		p.advance()
		return expr, nil
	default:
		return nil, p.errorf("Expected int, float, '+', '-', or '('")
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return diag.NewIllegalSyntax(p.curr.Span, format, args...)
}
