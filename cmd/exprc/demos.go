package main

import (
	"github.com/funvibe/exprjit/internal/ast"
	"github.com/funvibe/exprjit/internal/bindings"
)

// demo is a hand-built expression the CLI can compile and run. There is
// no text parser; trees are constructed programmatically.
type demo struct {
	name  string
	tree  ast.Expr
	binds *bindings.Set
}

var demos = []demo{
	{
		name:  "poly",
		tree:  ast.Add(ast.Mul(ast.Num(1), ast.Num(2)), ast.Mul(ast.Var("y"), ast.Var("x"))),
		binds: bindings.New("x", "y"),
	},
	{
		name:  "sqrt",
		tree:  ast.Sqrt(ast.Var("x")),
		binds: bindings.New("x"),
	},
	{
		name:  "diff",
		tree:  ast.Sub(ast.Var("x"), ast.Var("y")),
		binds: bindings.New("x", "y"),
	},
	{
		name: "norm",
		tree: ast.Sqrt(ast.Add(
			ast.Mul(ast.Var("x"), ast.Var("x")),
			ast.Mul(ast.Var("y"), ast.Var("y")))),
		binds: bindings.New("x", "y"),
	},
	{
		name: "wave",
		tree: ast.Add(
			ast.Mul(ast.Sin(ast.Var("t")), ast.Exp(ast.Sub(ast.Num(0), ast.Var("d")))),
			ast.Mul(ast.Cos(ast.Var("t")), ast.Tanh(ast.Var("d")))),
		binds: bindings.New("t", "d"),
	},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}
