// Package exprjit is the embedding API: build a tree, bind its
// identifiers, compile it on a backend and call it with argument values.
//
//	tree := ast.Add(ast.Mul(ast.Num(1), ast.Num(2)), ast.Mul(ast.Var("y"), ast.Var("x")))
//	fn, err := exprjit.Compile(tree, bindings.New("x", "y"), "")
//	result, err := fn.Call(3, 5) // 17
package exprjit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/exprjit/internal/ast"
	"github.com/funvibe/exprjit/internal/backend"
	"github.com/funvibe/exprjit/internal/bindings"
	"github.com/funvibe/exprjit/internal/codegen"
)

// Function is a compiled expression. Stateless after compilation; safe
// to call repeatedly and concurrently.
type Function struct {
	id      uuid.UUID
	fn      backend.Function
	binds   *bindings.Set
	backend string
}

// Compile lowers tree against binds on the named backend ("" selects the
// default VM backend). The binding set fixes both the arity and the
// argument order for every later Call.
func Compile(tree ast.Expr, binds *bindings.Set, backendName string) (*Function, error) {
	be, err := backend.Select(backendName)
	if err != nil {
		return nil, err
	}
	fn, err := codegen.Compile(be, tree, binds)
	if err != nil {
		return nil, err
	}
	return &Function{
		id:      uuid.New(),
		fn:      fn,
		binds:   binds,
		backend: be.Name(),
	}, nil
}

// ID returns the compilation's identifier, used to correlate trace and
// disassembly output.
func (f *Function) ID() string {
	return f.id.String()
}

// Backend returns the name of the backend the function was compiled on.
func (f *Function) Backend() string {
	return f.backend
}

// Arity returns the number of arguments Call expects.
func (f *Function) Arity() int {
	return f.fn.Arity()
}

// Params returns the parameter names in argument order.
func (f *Function) Params() []string {
	return f.binds.Names()
}

// Call invokes the compiled function. Arguments are positional, in the
// binding set's order.
func (f *Function) Call(args ...float64) (float64, error) {
	return f.fn.Call(args)
}

// CallNamed invokes the compiled function with a name→value map, ordering
// the values per the binding set.
func (f *Function) CallNamed(values map[string]float64) (float64, error) {
	args, err := f.binds.Args(values)
	if err != nil {
		return 0, err
	}
	return f.fn.Call(args)
}

// Disassemble renders the compiled instruction stream, headed by the
// compilation ID. Returns false if the backend cannot disassemble.
func (f *Function) Disassemble() (string, bool) {
	d, ok := f.fn.(backend.Disassembler)
	if !ok {
		return "", false
	}
	return d.Disassemble(fmt.Sprintf("fn %s (%s)", f.id, f.backend)), true
}

// Run performs one compile-and-call cycle: declare arity from binds,
// generate, compile, invoke with args. Builder state is released on every
// exit path, including generation failure.
func Run(tree ast.Expr, binds *bindings.Set, args []float64, backendName string) (float64, error) {
	fn, err := Compile(tree, binds, backendName)
	if err != nil {
		return 0, err
	}
	return fn.Call(args...)
}
