package evaluator

import (
	"errors"
	"math"
	"testing"

	"github.com/funvibe/exprjit/internal/ast"
)

func mustThunk(t *testing.T) func(Thunk, error) Thunk {
	return func(th Thunk, err error) Thunk {
		t.Helper()
		if err != nil {
			t.Fatalf("compose: %v", err)
		}
		return th
	}
}

func TestComposePolynomial(t *testing.T) {
	// (1*2) + (y*x) with params [x, y]
	b := NewBuilder(2)
	one := mustThunk(t)(b.Constant(1))
	two := mustThunk(t)(b.Constant(2))
	lhs := mustThunk(t)(b.Binary(ast.OpMul, one, two))
	y := mustThunk(t)(b.Param(1))
	x := mustThunk(t)(b.Param(0))
	rhs := mustThunk(t)(b.Binary(ast.OpMul, y, x))
	root := mustThunk(t)(b.Binary(ast.OpAdd, lhs, rhs))
	if err := b.Return(root); err != nil {
		t.Fatalf("return: %v", err)
	}

	prog, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	got, err := prog.Run([]float64{3, 5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != 17 {
		t.Errorf("result = %g, want 17", got)
	}
}

func TestSubDivNotCommutative(t *testing.T) {
	b := NewBuilder(2)
	x := mustThunk(t)(b.Param(0))
	y := mustThunk(t)(b.Param(1))
	diff := mustThunk(t)(b.Binary(ast.OpSub, x, y))
	if err := b.Return(diff); err != nil {
		t.Fatalf("return: %v", err)
	}
	prog, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	got, _ := prog.Run([]float64{5, 2})
	if got != 3 {
		t.Errorf("5-2 = %g, want 3", got)
	}
	got, _ = prog.Run([]float64{2, 5})
	if got != -3 {
		t.Errorf("2-5 = %g, want -3", got)
	}
}

func TestUnaryFuncs(t *testing.T) {
	ops := []ast.UnaryOp{
		ast.OpAcos, ast.OpAsin, ast.OpAtan, ast.OpCos, ast.OpCosh,
		ast.OpExp, ast.OpLog10, ast.OpSin, ast.OpSinh, ast.OpSqrt,
		ast.OpTan, ast.OpTanh,
	}
	want := []func(float64) float64{
		math.Acos, math.Asin, math.Atan, math.Cos, math.Cosh,
		math.Exp, math.Log10, math.Sin, math.Sinh, math.Sqrt,
		math.Tan, math.Tanh,
	}

	for i, op := range ops {
		b := NewBuilder(1)
		x := mustThunk(t)(b.Param(0))
		u := mustThunk(t)(b.Unary(op, x))
		if err := b.Return(u); err != nil {
			t.Fatalf("%s: return: %v", op, err)
		}
		prog, err := b.Finish()
		if err != nil {
			t.Fatalf("%s: finish: %v", op, err)
		}
		got, _ := prog.Run([]float64{0.5})
		if got != want[i](0.5) {
			t.Errorf("%s(0.5) = %g, want %g", op, got, want[i](0.5))
		}
	}
}

func TestNilOperandRejected(t *testing.T) {
	b := NewBuilder(0)
	if _, err := b.Unary(ast.OpSin, nil); !errors.Is(err, errNilThunk) {
		t.Errorf("Unary(nil): err = %v, want errNilThunk", err)
	}
	one := mustThunk(t)(b.Constant(1))
	if _, err := b.Binary(ast.OpAdd, one, nil); !errors.Is(err, errNilThunk) {
		t.Errorf("Binary(_, nil): err = %v, want errNilThunk", err)
	}
	if err := b.Return(nil); !errors.Is(err, errNilThunk) {
		t.Errorf("Return(nil): err = %v, want errNilThunk", err)
	}
}

func TestFinishWithoutReturn(t *testing.T) {
	b := NewBuilder(0)
	mustThunk(t)(b.Constant(1))
	if _, err := b.Finish(); !errors.Is(err, errNoReturn) {
		t.Fatalf("finish without return: err = %v, want errNoReturn", err)
	}
}

func TestDiscard(t *testing.T) {
	b := NewBuilder(1)
	mustThunk(t)(b.Param(0))
	b.Discard()

	if _, err := b.Constant(1); !errors.Is(err, errDiscarded) {
		t.Errorf("emit after discard: err = %v, want errDiscarded", err)
	}
	if _, err := b.Finish(); !errors.Is(err, errDiscarded) {
		t.Errorf("finish after discard: err = %v, want errDiscarded", err)
	}
}

func TestParamOutOfRange(t *testing.T) {
	b := NewBuilder(2)
	if _, err := b.Param(2); err == nil {
		t.Error("Param(2) on arity-2 function succeeded")
	}
	if _, err := b.Param(-1); err == nil {
		t.Error("Param(-1) succeeded")
	}
}
