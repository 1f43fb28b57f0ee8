// Package ast defines the expression tree compiled by the code generator.
// Trees are built programmatically, are immutable after construction, and
// form a strict hierarchy: every node has exactly one parent and owns its
// children.
package ast

// Expr is the base interface for all expression nodes.
type Expr interface {
	exprNode()
}

// Number is a literal double-precision constant.
type Number struct {
	Value float64
}

func (n *Number) exprNode() {}

// Ident references a named input. The name is not validated at
// construction; it is resolved against the binding set during code
// generation and fails there if unbound.
type Ident struct {
	Name string
}

func (i *Ident) exprNode() {}

// Unary applies a single-operand operator to its operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (u *Unary) exprNode() {}

// Binary combines two operands. Left is always evaluated before Right;
// the order is observable for Sub and Div.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (b *Binary) exprNode() {}
