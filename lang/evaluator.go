package lang

import (
	"fmt"
	"log/slog"

	"github.com/sergev/arith/diag"
	"github.com/sergev/arith/parser"
)

// Evaluator walks syntax trees and computes their values.
type Evaluator struct {
	log *slog.Logger
}

// NewEvaluator constructs an evaluator. A nil logger discards all output.
func NewEvaluator(log *slog.Logger) *Evaluator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{log: log}
}

// Eval evaluates node within ctx. The returned error, when non-nil, is a
// RuntimeError *diag.Diagnostic.
func (ev *Evaluator) Eval(node parser.Node, ctx *diag.Context) (Number, error) {
	switch n := node.(type) {
	case *parser.NumberLiteral:
		return ev.evalNumber(n, ctx), nil
	case *parser.UnaryOp:
		return ev.evalUnary(n, ctx)
	case *parser.BinaryOp:
		return ev.evalBinary(n, ctx)
	default:
		panic(fmt.Sprintf("lang: no evaluation rule for %T", node))
	}
}

func (ev *Evaluator) evalNumber(n *parser.NumberLiteral, ctx *diag.Context) Number {
	var num Number
	switch n.Token.Type {
	case parser.TokenInt:
		num = IntNumber(n.Token.Int)
	case parser.TokenFloat:
		num = FloatNumber(n.Token.Float)
	default:
		panic(fmt.Sprintf("lang: number literal holds %s token", n.Token.Type))
	}
	return num.WithSpan(n.Span()).WithContext(ctx)
}

func (ev *Evaluator) evalUnary(n *parser.UnaryOp, ctx *diag.Context) (Number, error) {
	operand, err := ev.Eval(n.Operand, ctx)
	if err != nil {
		return Number{}, err
	}
	result := operand
	switch n.Op.Type {
	case parser.TokenPlus:
	case parser.TokenMinus:
		result, err = operand.Mul(IntNumber(-1))
		if err != nil {
			return Number{}, err
		}
	default:
		panic(fmt.Sprintf("lang: unsupported unary operator %s", n.Op.Type))
	}
	return result.WithSpan(n.Span()).WithContext(ctx), nil
}

func (ev *Evaluator) evalBinary(n *parser.BinaryOp, ctx *diag.Context) (Number, error) {
	left, err := ev.Eval(n.Left, ctx)
	if err != nil {
		return Number{}, err
	}
	right, err := ev.Eval(n.Right, ctx)
	if err != nil {
		return Number{}, err
	}

	var result Number
	switch n.Op.Type {
	case parser.TokenPlus:
		result, err = left.Add(right)
	case parser.TokenMinus:
		result, err = left.Sub(right)
	case parser.TokenMult:
		result, err = left.Mul(right)
	case parser.TokenDiv:
		result, err = left.Div(right)
	case parser.TokenExp:
		result, err = left.Pow(right)
	default:
		panic(fmt.Sprintf("lang: unsupported binary operator %s", n.Op.Type))
	}
	if err != nil {
		ev.log.Debug("evaluation failed", "op", n.Op.Type.String(), "at", right.Span.Start.String(), "err", err)
		return Number{}, err
	}
	ev.log.Debug("binary",
		"expr", n.Span().Text(),
		"op", n.Op.Type.String(),
		"left", left.String(),
		"right", right.String(),
		"result", result.String())
	return result.WithSpan(n.Span()).WithContext(ctx), nil
}
