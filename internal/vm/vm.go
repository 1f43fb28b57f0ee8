package vm

import (
	"errors"
	"fmt"
	"math"
)

var (
	errTruncatedBytecode    = errors.New("truncated bytecode")
	errStackUnderflow       = errors.New("stack underflow")
	errInvalidConstantIndex = errors.New("invalid constant index")
	errInvalidParamIndex    = errors.New("invalid parameter index")
	errMissingReturn        = errors.New("bytecode ended without return")
)

// Program is a sealed, runnable chunk. It holds no mutable state, so it
// is safe to run repeatedly and from multiple goroutines.
type Program struct {
	chunk  *Chunk
	params int
}

// Params returns the declared parameter count.
func (p *Program) Params() int {
	return p.params
}

// Disassemble renders the program's bytecode under the given name.
func (p *Program) Disassemble(name string) string {
	return Disassemble(p.chunk, name)
}

// Run executes the program over args. The caller is responsible for
// supplying exactly p.Params() values in binding order.
func (p *Program) Run(args []float64) (float64, error) {
	// Straight-line expression code: the stack never grows deeper than
	// the expression tree height, but start with room for typical trees.
	stack := make([]float64, 0, 16)
	code := p.chunk.Code

	pop := func() (float64, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	ip := 0
	for ip < len(code) {
		op := Opcode(code[ip])
		ip++

		switch op {
		case OP_CONST:
			if ip+2 > len(code) {
				return 0, errTruncatedBytecode
			}
			idx := p.chunk.ReadConstantIndex(ip)
			ip += 2
			if idx >= len(p.chunk.Constants) {
				return 0, fmt.Errorf("%w: %d", errInvalidConstantIndex, idx)
			}
			stack = append(stack, p.chunk.Constants[idx])

		case OP_PARAM:
			if ip >= len(code) {
				return 0, errTruncatedBytecode
			}
			idx := int(code[ip])
			ip++
			if idx >= len(args) {
				return 0, fmt.Errorf("%w: %d", errInvalidParamIndex, idx)
			}
			stack = append(stack, args[idx])

		case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
			right, ok := pop()
			if !ok {
				return 0, errStackUnderflow
			}
			left, ok := pop()
			if !ok {
				return 0, errStackUnderflow
			}
			switch op {
			case OP_ADD:
				stack = append(stack, left+right)
			case OP_SUB:
				stack = append(stack, left-right)
			case OP_MUL:
				stack = append(stack, left*right)
			case OP_DIV:
				stack = append(stack, left/right)
			}

		case OP_ACOS, OP_ASIN, OP_ATAN, OP_COS, OP_COSH, OP_EXP,
			OP_LOG10, OP_SIN, OP_SINH, OP_SQRT, OP_TAN, OP_TANH:
			x, ok := pop()
			if !ok {
				return 0, errStackUnderflow
			}
			stack = append(stack, mathOp(op, x))

		case OP_RETURN:
			result, ok := pop()
			if !ok {
				return 0, errStackUnderflow
			}
			return result, nil

		default:
			return 0, fmt.Errorf("unknown opcode: %d", byte(op))
		}
	}

	return 0, errMissingReturn
}

func mathOp(op Opcode, x float64) float64 {
	switch op {
	case OP_ACOS:
		return math.Acos(x)
	case OP_ASIN:
		return math.Asin(x)
	case OP_ATAN:
		return math.Atan(x)
	case OP_COS:
		return math.Cos(x)
	case OP_COSH:
		return math.Cosh(x)
	case OP_EXP:
		return math.Exp(x)
	case OP_LOG10:
		return math.Log10(x)
	case OP_SIN:
		return math.Sin(x)
	case OP_SINH:
		return math.Sinh(x)
	case OP_SQRT:
		return math.Sqrt(x)
	case OP_TAN:
		return math.Tan(x)
	case OP_TANH:
		return math.Tanh(x)
	}
	return math.NaN()
}
