package backend

import (
	"fmt"

	"github.com/funvibe/exprjit/internal/ast"
	"github.com/funvibe/exprjit/internal/evaluator"
)

// ClosureBackend compiles functions by composing Go closures.
type ClosureBackend struct{}

// NewClosure creates a new closure backend.
func NewClosure() *ClosureBackend {
	return &ClosureBackend{}
}

// Name returns the backend name.
func (b *ClosureBackend) Name() string {
	return "closure"
}

// NewFunction declares a function with paramCount float64 parameters.
func (b *ClosureBackend) NewFunction(paramCount int) (Builder, error) {
	if paramCount < 0 {
		return nil, fmt.Errorf("negative parameter count: %d", paramCount)
	}
	return &closureBuilder{b: evaluator.NewBuilder(paramCount)}, nil
}

type closureBuilder struct {
	b *evaluator.Builder
}

func (cb *closureBuilder) thunk(v Value) (evaluator.Thunk, error) {
	th, ok := v.(evaluator.Thunk)
	if !ok || th == nil {
		return nil, fmt.Errorf("%w: %T", ErrBadValue, v)
	}
	return th, nil
}

func (cb *closureBuilder) Constant(v float64) (Value, error) {
	th, err := cb.b.Constant(v)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return th, nil
}

func (cb *closureBuilder) Param(index int) (Value, error) {
	th, err := cb.b.Param(index)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return th, nil
}

func (cb *closureBuilder) Unary(op ast.UnaryOp, operand Value) (Value, error) {
	x, err := cb.thunk(operand)
	if err != nil {
		return nil, err
	}
	th, err := cb.b.Unary(op, x)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return th, nil
}

func (cb *closureBuilder) Binary(op ast.BinaryOp, left, right Value) (Value, error) {
	l, err := cb.thunk(left)
	if err != nil {
		return nil, err
	}
	r, err := cb.thunk(right)
	if err != nil {
		return nil, err
	}
	th, err := cb.b.Binary(op, l, r)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return th, nil
}

func (cb *closureBuilder) Return(v Value) error {
	th, err := cb.thunk(v)
	if err != nil {
		return err
	}
	if err := cb.b.Return(th); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	return nil
}

func (cb *closureBuilder) Compile() (Function, error) {
	prog, err := cb.b.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCompiled, err)
	}
	return &closureFunction{prog: prog}, nil
}

func (cb *closureBuilder) Discard() {
	cb.b.Discard()
}

type closureFunction struct {
	prog *evaluator.Program
}

func (f *closureFunction) Arity() int {
	return f.prog.Params()
}

func (f *closureFunction) Call(args []float64) (float64, error) {
	if len(args) != f.prog.Params() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(args), f.prog.Params())
	}
	return f.prog.Run(args)
}
