package parser

import (
	"fmt"

	"github.com/sergev/arith/diag"
)

// Node is any syntax tree node. The set of implementations is closed: only
// the node types in this file satisfy it.
type Node interface {
	Span() diag.Span
	fmt.Stringer
	node()
}

// NumberLiteral is an Int or Float token in expression position.
type NumberLiteral struct {
	Token Token
}

func (n *NumberLiteral) Span() diag.Span { return n.Token.Span }
func (n *NumberLiteral) String() string  { return n.Token.String() }
func (*NumberLiteral) node()             {}

// UnaryOp applies a prefix + or - to its operand.
type UnaryOp struct {
	Op      Token
	Operand Node
}

func (n *UnaryOp) Span() diag.Span { return diag.Join(n.Op.Span, n.Operand.Span()) }
func (n *UnaryOp) String() string  { return fmt.Sprintf("(%s, %s)", n.Op, n.Operand) }
func (*UnaryOp) node()             {}

// BinaryOp applies an infix operator.
type BinaryOp struct {
	Left  Node
	Op    Token
	Right Node
}

func (n *BinaryOp) Span() diag.Span { return diag.Join(n.Left.Span(), n.Right.Span()) }
func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s, %s, %s)", n.Left, n.Op, n.Right)
}
func (*BinaryOp) node() {}
