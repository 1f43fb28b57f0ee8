package backend

import (
	"errors"
	"testing"

	"github.com/funvibe/exprjit/internal/ast"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		arg  string
		name string
	}{
		{"", "vm"},
		{"vm", "vm"},
		{"closure", "closure"},
	}
	for _, c := range cases {
		be, err := Select(c.arg)
		if err != nil {
			t.Fatalf("Select(%q): %v", c.arg, err)
		}
		if be.Name() != c.name {
			t.Errorf("Select(%q).Name() = %q, want %q", c.arg, be.Name(), c.name)
		}
	}

	if _, err := Select("jit9000"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Select(jit9000): err = %v, want ErrUnknownBackend", err)
	}
}

func eachBackend(t *testing.T, fn func(t *testing.T, be Backend)) {
	for _, name := range []string{"vm", "closure"} {
		be, err := Select(name)
		if err != nil {
			t.Fatalf("Select(%q): %v", name, err)
		}
		t.Run(name, func(t *testing.T) { fn(t, be) })
	}
}

func TestArityChecked(t *testing.T) {
	eachBackend(t, func(t *testing.T, be Backend) {
		b, err := be.NewFunction(2)
		if err != nil {
			t.Fatalf("NewFunction: %v", err)
		}
		x, err := b.Param(0)
		if err != nil {
			t.Fatalf("Param: %v", err)
		}
		if err := b.Return(x); err != nil {
			t.Fatalf("Return: %v", err)
		}

		// Mid-generation state must not leak into a dangling stack: the
		// second parameter is simply never read.
		fn, err := b.Compile()
		if err != nil {
			t.Fatalf("Compile: %v", err)
		}
		if fn.Arity() != 2 {
			t.Errorf("Arity = %d, want 2", fn.Arity())
		}

		if _, err := fn.Call([]float64{1}); !errors.Is(err, ErrArityMismatch) {
			t.Errorf("short call: err = %v, want ErrArityMismatch", err)
		}
		if _, err := fn.Call([]float64{1, 2, 3}); !errors.Is(err, ErrArityMismatch) {
			t.Errorf("long call: err = %v, want ErrArityMismatch", err)
		}
		got, err := fn.Call([]float64{7, 9})
		if err != nil {
			t.Fatalf("Call: %v", err)
		}
		if got != 7 {
			t.Errorf("passthrough = %g, want 7", got)
		}
	})
}

func TestCompileBeforeReturn(t *testing.T) {
	eachBackend(t, func(t *testing.T, be Backend) {
		b, err := be.NewFunction(0)
		if err != nil {
			t.Fatalf("NewFunction: %v", err)
		}
		if _, err := b.Constant(1); err != nil {
			t.Fatalf("Constant: %v", err)
		}
		if _, err := b.Compile(); !errors.Is(err, ErrNotCompiled) {
			t.Errorf("Compile before Return: err = %v, want ErrNotCompiled", err)
		}
	})
}

func TestForeignValueRejected(t *testing.T) {
	eachBackend(t, func(t *testing.T, be Backend) {
		b, err := be.NewFunction(0)
		if err != nil {
			t.Fatalf("NewFunction: %v", err)
		}
		if _, err := b.Unary(ast.OpSqrt, "not a handle"); !errors.Is(err, ErrBadValue) {
			t.Errorf("foreign operand: err = %v, want ErrBadValue", err)
		}
		if err := b.Return(42); !errors.Is(err, ErrBadValue) {
			t.Errorf("foreign return: err = %v, want ErrBadValue", err)
		}
	})
}

func TestNegativeParamCount(t *testing.T) {
	eachBackend(t, func(t *testing.T, be Backend) {
		if _, err := be.NewFunction(-1); err == nil {
			t.Error("NewFunction(-1) succeeded")
		}
	})
}

func TestVMFunctionDisassembles(t *testing.T) {
	be := NewVM()
	b, err := be.NewFunction(0)
	if err != nil {
		t.Fatalf("NewFunction: %v", err)
	}
	v, err := b.Constant(1)
	if err != nil {
		t.Fatalf("Constant: %v", err)
	}
	if err := b.Return(v); err != nil {
		t.Fatalf("Return: %v", err)
	}
	fn, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if _, ok := fn.(Disassembler); !ok {
		t.Error("vm function does not implement Disassembler")
	}
}
