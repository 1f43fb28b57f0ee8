// Package evaluator implements the closure backend: every emitted
// instruction is compiled to a Go closure over the argument vector, and
// sealing the function returns the composed root closure. It is the
// interpreter twin of the bytecode VM and must agree with it bit for bit.
package evaluator

import (
	"errors"
	"fmt"
	"math"

	"github.com/funvibe/exprjit/internal/ast"
)

var (
	errNilThunk    = errors.New("nil operand thunk")
	errNoReturn    = errors.New("builder finished without a return value")
	errAfterReturn = errors.New("instruction emitted after return")
	errDiscarded   = errors.New("builder has been discarded")
)

// Thunk evaluates one emitted instruction's result for a given argument
// vector.
type Thunk func(args []float64) float64

// Builder composes thunks for one function under construction.
type Builder struct {
	params    int
	result    Thunk
	returned  bool
	discarded bool
}

// NewBuilder declares a function taking paramCount float64 parameters.
func NewBuilder(paramCount int) *Builder {
	return &Builder{params: paramCount}
}

// Params returns the declared parameter count.
func (b *Builder) Params() int {
	return b.params
}

func (b *Builder) emittable() error {
	if b.discarded {
		return errDiscarded
	}
	if b.returned {
		return errAfterReturn
	}
	return nil
}

// Constant compiles a load of the immediate v.
func (b *Builder) Constant(v float64) (Thunk, error) {
	if err := b.emittable(); err != nil {
		return nil, err
	}
	return func([]float64) float64 { return v }, nil
}

// Param compiles a read of the parameter at index.
func (b *Builder) Param(index int) (Thunk, error) {
	if err := b.emittable(); err != nil {
		return nil, err
	}
	if index < 0 || index >= b.params {
		return nil, fmt.Errorf("parameter index %d out of range [0,%d)", index, b.params)
	}
	return func(args []float64) float64 { return args[index] }, nil
}

// Unary compiles op applied to operand.
func (b *Builder) Unary(op ast.UnaryOp, operand Thunk) (Thunk, error) {
	if err := b.emittable(); err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, errNilThunk
	}
	f, err := unaryFunc(op)
	if err != nil {
		return nil, err
	}
	return func(args []float64) float64 { return f(operand(args)) }, nil
}

// Binary compiles op over (left, right). The left thunk runs first.
func (b *Builder) Binary(op ast.BinaryOp, left, right Thunk) (Thunk, error) {
	if err := b.emittable(); err != nil {
		return nil, err
	}
	if left == nil || right == nil {
		return nil, errNilThunk
	}
	switch op {
	case ast.OpAdd:
		return func(args []float64) float64 {
			l := left(args)
			r := right(args)
			return l + r
		}, nil
	case ast.OpSub:
		return func(args []float64) float64 {
			l := left(args)
			r := right(args)
			return l - r
		}, nil
	case ast.OpMul:
		return func(args []float64) float64 {
			l := left(args)
			r := right(args)
			return l * r
		}, nil
	case ast.OpDiv:
		return func(args []float64) float64 {
			l := left(args)
			r := right(args)
			return l / r
		}, nil
	}
	return nil, fmt.Errorf("unknown binary operator: %s", op)
}

// Return marks v as the function result.
func (b *Builder) Return(v Thunk) error {
	if err := b.emittable(); err != nil {
		return err
	}
	if v == nil {
		return errNilThunk
	}
	b.result = v
	b.returned = true
	return nil
}

// Finish seals the composed closure into a runnable Program.
func (b *Builder) Finish() (*Program, error) {
	if b.discarded {
		return nil, errDiscarded
	}
	if !b.returned {
		return nil, errNoReturn
	}
	prog := &Program{root: b.result, params: b.params}
	b.result = nil
	b.discarded = true
	return prog, nil
}

// Discard drops the partially composed state. Safe to call repeatedly.
func (b *Builder) Discard() {
	b.result = nil
	b.discarded = true
}

// Program is a sealed, runnable closure. Stateless, safe for repeated
// and concurrent runs.
type Program struct {
	root   Thunk
	params int
}

// Params returns the declared parameter count.
func (p *Program) Params() int {
	return p.params
}

// Run evaluates the closure over args. The caller supplies exactly
// p.Params() values in binding order.
func (p *Program) Run(args []float64) (float64, error) {
	return p.root(args), nil
}

func unaryFunc(op ast.UnaryOp) (func(float64) float64, error) {
	switch op {
	case ast.OpAcos:
		return math.Acos, nil
	case ast.OpAsin:
		return math.Asin, nil
	case ast.OpAtan:
		return math.Atan, nil
	case ast.OpCos:
		return math.Cos, nil
	case ast.OpCosh:
		return math.Cosh, nil
	case ast.OpExp:
		return math.Exp, nil
	case ast.OpLog10:
		return math.Log10, nil
	case ast.OpSin:
		return math.Sin, nil
	case ast.OpSinh:
		return math.Sinh, nil
	case ast.OpSqrt:
		return math.Sqrt, nil
	case ast.OpTan:
		return math.Tan, nil
	case ast.OpTanh:
		return math.Tanh, nil
	}
	return nil, fmt.Errorf("unknown unary operator: %s", op)
}
