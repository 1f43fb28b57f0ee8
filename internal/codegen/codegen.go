// Package codegen lowers expression trees into backend instructions.
//
// The walk is a single post-order pass: children first, then one
// instruction for the node itself, threading the child result handles
// through. Each node is visited exactly once and nothing is emitted
// speculatively, so the instruction count is linear in tree size.
package codegen

import (
	"fmt"

	"github.com/funvibe/exprjit/internal/ast"
	"github.com/funvibe/exprjit/internal/backend"
	"github.com/funvibe/exprjit/internal/bindings"
)

// Generator walks one tree against one binding set, emitting into one
// builder. A Generator is single-use.
type Generator struct {
	b     backend.Builder
	binds *bindings.Set
}

// Generate emits the full instruction sequence for expr into b, ending
// with the return instruction carrying the root's result. On error the
// builder is left un-discarded; the caller owns its release.
func Generate(b backend.Builder, expr ast.Expr, binds *bindings.Set) error {
	g := &Generator{b: b, binds: binds}
	root, err := g.gen(expr)
	if err != nil {
		return err
	}
	return g.b.Return(root)
}

func (g *Generator) gen(expr ast.Expr) (backend.Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return g.b.Constant(e.Value)

	case *ast.Ident:
		// Resolved on every visit: binding the name at construction time
		// would let a stale set through.
		idx, err := g.binds.Index(e.Name)
		if err != nil {
			return nil, err
		}
		return g.b.Param(idx)

	case *ast.Unary:
		operand, err := g.gen(e.Operand)
		if err != nil {
			return nil, err
		}
		return g.b.Unary(e.Op, operand)

	case *ast.Binary:
		left, err := g.gen(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := g.gen(e.Right)
		if err != nil {
			return nil, err
		}
		return g.b.Binary(e.Op, left, right)

	case nil:
		return nil, fmt.Errorf("nil expression node")

	default:
		return nil, fmt.Errorf("unknown expression type: %T", expr)
	}
}

// Compile declares, generates and finalizes a function for expr on the
// given backend. The builder is released on every failure path.
func Compile(be backend.Backend, expr ast.Expr, binds *bindings.Set) (backend.Function, error) {
	b, err := be.NewFunction(binds.Len())
	if err != nil {
		return nil, err
	}
	if err := Generate(b, expr, binds); err != nil {
		b.Discard()
		return nil, err
	}
	fn, err := b.Compile()
	if err != nil {
		b.Discard()
		return nil, err
	}
	return fn, nil
}
