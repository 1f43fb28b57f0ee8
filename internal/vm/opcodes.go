// Package vm implements a bytecode stack machine for compiled
// expressions. Programs are straight-line: no jumps, no calls, one
// OP_RETURN at the end.
package vm

// Opcode represents a single VM instruction.
type Opcode byte

const (
	// OP_CONST pushes a constant from the pool (2-byte index operand).
	OP_CONST Opcode = iota

	// OP_PARAM pushes the argument at a parameter slot (1-byte operand).
	OP_PARAM

	// Arithmetic: pop right, pop left, push left op right.
	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV

	// Transcendental/algebraic: pop one value, push the result.
	OP_ACOS
	OP_ASIN
	OP_ATAN
	OP_COS
	OP_COSH
	OP_EXP
	OP_LOG10
	OP_SIN
	OP_SINH
	OP_SQRT
	OP_TAN
	OP_TANH

	// OP_RETURN pops the result and halts.
	OP_RETURN
)

var opcodeNames = [...]string{
	OP_CONST:  "CONST",
	OP_PARAM:  "PARAM",
	OP_ADD:    "ADD",
	OP_SUB:    "SUB",
	OP_MUL:    "MUL",
	OP_DIV:    "DIV",
	OP_ACOS:   "ACOS",
	OP_ASIN:   "ASIN",
	OP_ATAN:   "ATAN",
	OP_COS:    "COS",
	OP_COSH:   "COSH",
	OP_EXP:    "EXP",
	OP_LOG10:  "LOG10",
	OP_SIN:    "SIN",
	OP_SINH:   "SINH",
	OP_SQRT:   "SQRT",
	OP_TAN:    "TAN",
	OP_TANH:   "TANH",
	OP_RETURN: "RETURN",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "UNKNOWN"
}
