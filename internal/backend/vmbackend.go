package backend

import (
	"fmt"

	"github.com/funvibe/exprjit/internal/ast"
	"github.com/funvibe/exprjit/internal/vm"
)

// VMBackend compiles functions to bytecode executed by the stack VM.
type VMBackend struct{}

// NewVM creates a new VM backend.
func NewVM() *VMBackend {
	return &VMBackend{}
}

// Name returns the backend name.
func (b *VMBackend) Name() string {
	return "vm"
}

// NewFunction declares a function with paramCount float64 parameters.
func (b *VMBackend) NewFunction(paramCount int) (Builder, error) {
	if paramCount < 0 {
		return nil, fmt.Errorf("negative parameter count: %d", paramCount)
	}
	return &vmBuilder{asm: vm.NewAssembler(paramCount)}, nil
}

type vmBuilder struct {
	asm *vm.Assembler
}

// handle unwraps a Value back into the assembler's handle type.
func (b *vmBuilder) handle(v Value) (vm.Handle, error) {
	h, ok := v.(vm.Handle)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrBadValue, v)
	}
	return h, nil
}

func (b *vmBuilder) Constant(v float64) (Value, error) {
	h, err := b.asm.Constant(v)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return h, nil
}

func (b *vmBuilder) Param(index int) (Value, error) {
	h, err := b.asm.Param(index)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return h, nil
}

func (b *vmBuilder) Unary(op ast.UnaryOp, operand Value) (Value, error) {
	x, err := b.handle(operand)
	if err != nil {
		return nil, err
	}
	h, err := b.asm.Unary(op, x)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return h, nil
}

func (b *vmBuilder) Binary(op ast.BinaryOp, left, right Value) (Value, error) {
	l, err := b.handle(left)
	if err != nil {
		return nil, err
	}
	r, err := b.handle(right)
	if err != nil {
		return nil, err
	}
	h, err := b.asm.Binary(op, l, r)
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return h, nil
}

func (b *vmBuilder) Return(v Value) error {
	h, err := b.handle(v)
	if err != nil {
		return err
	}
	if err := b.asm.Return(h); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	return nil
}

func (b *vmBuilder) Compile() (Function, error) {
	prog, err := b.asm.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCompiled, err)
	}
	return &vmFunction{prog: prog}, nil
}

func (b *vmBuilder) Discard() {
	b.asm.Discard()
}

type vmFunction struct {
	prog *vm.Program
}

func (f *vmFunction) Arity() int {
	return f.prog.Params()
}

func (f *vmFunction) Call(args []float64) (float64, error) {
	if len(args) != f.prog.Params() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(args), f.prog.Params())
	}
	return f.prog.Run(args)
}

// Disassemble renders the compiled bytecode.
func (f *vmFunction) Disassemble(name string) string {
	return f.prog.Disassemble(name)
}
