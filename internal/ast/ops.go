package ast

import "fmt"

// BinaryOp is the operator tag of a Binary node.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// UnaryOp is the operator tag of a Unary node. The set mirrors the
// single-argument math functions the backends provide.
type UnaryOp int

const (
	OpAcos UnaryOp = iota
	OpAsin
	OpAtan
	OpCos
	OpCosh
	OpExp
	OpLog10
	OpSin
	OpSinh
	OpSqrt
	OpTan
	OpTanh
)

var unaryNames = [...]string{
	OpAcos:  "acos",
	OpAsin:  "asin",
	OpAtan:  "atan",
	OpCos:   "cos",
	OpCosh:  "cosh",
	OpExp:   "exp",
	OpLog10: "log10",
	OpSin:   "sin",
	OpSinh:  "sinh",
	OpSqrt:  "sqrt",
	OpTan:   "tan",
	OpTanh:  "tanh",
}

func (op UnaryOp) String() string {
	if op >= 0 && int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}
