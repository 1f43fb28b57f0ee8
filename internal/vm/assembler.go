package vm

import (
	"errors"
	"fmt"

	"github.com/funvibe/exprjit/internal/ast"
)

var (
	errOperandOrder   = errors.New("operand handles do not match the top of the modeled stack")
	errNoReturn       = errors.New("assembler finished without a return instruction")
	errAfterReturn    = errors.New("instruction emitted after return")
	errDiscarded      = errors.New("assembler has been discarded")
	errDanglingValues = errors.New("values left on the modeled stack at return")
)

// Handle identifies one emitted instruction's result during assembly.
type Handle int

// Assembler builds a straight-line chunk for one function. It models the
// operand stack as handles are produced and consumed, so a caller that
// passes operands out of emission order is rejected instead of silently
// miscompiled.
type Assembler struct {
	chunk     *Chunk
	params    int
	stack     []Handle // modeled operand stack, not runtime values
	next      Handle
	returned  bool
	discarded bool
}

// NewAssembler declares a function taking paramCount float64 parameters.
func NewAssembler(paramCount int) *Assembler {
	return &Assembler{
		chunk:  NewChunk(),
		params: paramCount,
	}
}

// Params returns the declared parameter count.
func (a *Assembler) Params() int {
	return a.params
}

func (a *Assembler) push() Handle {
	h := a.next
	a.next++
	a.stack = append(a.stack, h)
	return h
}

// popExpect consumes the top of the modeled stack, which must be h.
func (a *Assembler) popExpect(h Handle) error {
	n := len(a.stack)
	if n == 0 || a.stack[n-1] != h {
		return fmt.Errorf("%w: handle %d", errOperandOrder, h)
	}
	a.stack = a.stack[:n-1]
	return nil
}

func (a *Assembler) emittable() error {
	if a.discarded {
		return errDiscarded
	}
	if a.returned {
		return errAfterReturn
	}
	return nil
}

// Constant emits a load of the immediate v.
func (a *Assembler) Constant(v float64) (Handle, error) {
	if err := a.emittable(); err != nil {
		return 0, err
	}
	a.chunk.WriteConstant(v)
	return a.push(), nil
}

// Param emits a read of the parameter at index.
func (a *Assembler) Param(index int) (Handle, error) {
	if err := a.emittable(); err != nil {
		return 0, err
	}
	if index < 0 || index >= a.params {
		return 0, fmt.Errorf("parameter index %d out of range [0,%d)", index, a.params)
	}
	if index > 0xff {
		return 0, fmt.Errorf("parameter index %d exceeds encodable range", index)
	}
	a.chunk.WriteOp(OP_PARAM)
	a.chunk.Write(byte(index))
	return a.push(), nil
}

// Unary emits op applied to operand, which must be the most recently
// produced live handle.
func (a *Assembler) Unary(op ast.UnaryOp, operand Handle) (Handle, error) {
	if err := a.emittable(); err != nil {
		return 0, err
	}
	code, err := unaryOpcode(op)
	if err != nil {
		return 0, err
	}
	if err := a.popExpect(operand); err != nil {
		return 0, err
	}
	a.chunk.WriteOp(code)
	return a.push(), nil
}

// Binary emits op over (left, right); right must be on top of the modeled
// stack with left directly beneath it.
func (a *Assembler) Binary(op ast.BinaryOp, left, right Handle) (Handle, error) {
	if err := a.emittable(); err != nil {
		return 0, err
	}
	code, err := binaryOpcode(op)
	if err != nil {
		return 0, err
	}
	if err := a.popExpect(right); err != nil {
		return 0, err
	}
	if err := a.popExpect(left); err != nil {
		return 0, err
	}
	a.chunk.WriteOp(code)
	return a.push(), nil
}

// Return emits the return instruction carrying v. The modeled stack must
// hold exactly v: a single-pass post-order walk leaves nothing else.
func (a *Assembler) Return(v Handle) error {
	if err := a.emittable(); err != nil {
		return err
	}
	if err := a.popExpect(v); err != nil {
		return err
	}
	if len(a.stack) != 0 {
		return fmt.Errorf("%w: %d remaining", errDanglingValues, len(a.stack))
	}
	a.chunk.WriteOp(OP_RETURN)
	a.returned = true
	return nil
}

// Finish seals the chunk into a runnable Program. Fails if Return was
// never emitted.
func (a *Assembler) Finish() (*Program, error) {
	if a.discarded {
		return nil, errDiscarded
	}
	if !a.returned {
		return nil, errNoReturn
	}
	prog := &Program{chunk: a.chunk, params: a.params}
	a.chunk = nil
	a.discarded = true
	return prog, nil
}

// Discard drops the partially built chunk. Safe to call repeatedly.
func (a *Assembler) Discard() {
	a.chunk = nil
	a.stack = nil
	a.discarded = true
}

func binaryOpcode(op ast.BinaryOp) (Opcode, error) {
	switch op {
	case ast.OpAdd:
		return OP_ADD, nil
	case ast.OpSub:
		return OP_SUB, nil
	case ast.OpMul:
		return OP_MUL, nil
	case ast.OpDiv:
		return OP_DIV, nil
	}
	return 0, fmt.Errorf("unknown binary operator: %s", op)
}

func unaryOpcode(op ast.UnaryOp) (Opcode, error) {
	switch op {
	case ast.OpAcos:
		return OP_ACOS, nil
	case ast.OpAsin:
		return OP_ASIN, nil
	case ast.OpAtan:
		return OP_ATAN, nil
	case ast.OpCos:
		return OP_COS, nil
	case ast.OpCosh:
		return OP_COSH, nil
	case ast.OpExp:
		return OP_EXP, nil
	case ast.OpLog10:
		return OP_LOG10, nil
	case ast.OpSin:
		return OP_SIN, nil
	case ast.OpSinh:
		return OP_SINH, nil
	case ast.OpSqrt:
		return OP_SQRT, nil
	case ast.OpTan:
		return OP_TAN, nil
	case ast.OpTanh:
		return OP_TANH, nil
	}
	return 0, fmt.Errorf("unknown unary operator: %s", op)
}
