// Package backend provides an interface for different execution backends.
// This allows switching between the bytecode VM and the closure compiler
// without touching the code generator.
package backend

import (
	"errors"
	"fmt"

	"github.com/funvibe/exprjit/internal/ast"
)

var (
	// ErrArityMismatch reports a call whose argument count differs from
	// the declared parameter count. Checked before the backend runs.
	ErrArityMismatch = errors.New("argument count does not match parameter count")

	// ErrNotCompiled reports Compile called before Return.
	ErrNotCompiled = errors.New("function has no return instruction")

	// ErrBadValue reports an operand handle that does not belong to this
	// builder or was already consumed.
	ErrBadValue = errors.New("invalid value handle")

	// ErrUnknownBackend reports an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Value is an opaque handle for an emitted instruction's result. Handles
// are only meaningful to the Builder that produced them.
type Value interface{}

// Builder accumulates instructions for one function under construction.
// Emission order is the evaluation order; the code generator drives it in
// a single post-order pass.
type Builder interface {
	// Constant emits a load of the immediate v.
	Constant(v float64) (Value, error)

	// Param emits a read of the parameter at index.
	Param(index int) (Value, error)

	// Unary emits op applied to operand.
	Unary(op ast.UnaryOp, operand Value) (Value, error)

	// Binary emits op over (left, right) in that order.
	Binary(op ast.BinaryOp, left, right Value) (Value, error)

	// Return marks v as the function result. Required before Compile.
	Return(v Value) error

	// Compile finalizes the function. The builder is spent afterwards.
	Compile() (Function, error)

	// Discard releases partial build state when generation is abandoned.
	// Safe to call after Compile; it is then a no-op.
	Discard()
}

// Function is a compiled, stateless, repeatedly callable function.
type Function interface {
	// Call evaluates the function. Argument order must match the binding
	// set the function was compiled against.
	Call(args []float64) (float64, error)

	// Arity returns the declared parameter count.
	Arity() int
}

// Disassembler is implemented by functions that can render their
// instruction stream, used for tracing. Not all backends support it.
type Disassembler interface {
	Disassemble(name string) string
}

// Backend creates function builders for one execution strategy.
type Backend interface {
	// NewFunction declares a function taking paramCount float64 scalars
	// and returning one.
	NewFunction(paramCount int) (Builder, error)

	// Name returns the backend name for display and selection.
	Name() string
}

// Select returns the backend registered under name. The empty string
// selects the default VM backend.
func Select(name string) (Backend, error) {
	switch name {
	case "", "vm":
		return NewVM(), nil
	case "closure":
		return NewClosure(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
