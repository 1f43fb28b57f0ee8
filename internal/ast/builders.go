package ast

// Constructor helpers. They keep hand-built trees readable:
//
//	Add(Mul(Num(1), Num(2)), Mul(Var("y"), Var("x")))

// Num builds a constant node.
func Num(v float64) Expr { return &Number{Value: v} }

// Var builds an identifier node.
func Var(name string) Expr { return &Ident{Name: name} }

func Add(left, right Expr) Expr { return &Binary{Op: OpAdd, Left: left, Right: right} }
func Sub(left, right Expr) Expr { return &Binary{Op: OpSub, Left: left, Right: right} }
func Mul(left, right Expr) Expr { return &Binary{Op: OpMul, Left: left, Right: right} }
func Div(left, right Expr) Expr { return &Binary{Op: OpDiv, Left: left, Right: right} }

func Acos(x Expr) Expr  { return &Unary{Op: OpAcos, Operand: x} }
func Asin(x Expr) Expr  { return &Unary{Op: OpAsin, Operand: x} }
func Atan(x Expr) Expr  { return &Unary{Op: OpAtan, Operand: x} }
func Cos(x Expr) Expr   { return &Unary{Op: OpCos, Operand: x} }
func Cosh(x Expr) Expr  { return &Unary{Op: OpCosh, Operand: x} }
func Exp(x Expr) Expr   { return &Unary{Op: OpExp, Operand: x} }
func Log10(x Expr) Expr { return &Unary{Op: OpLog10, Operand: x} }
func Sin(x Expr) Expr   { return &Unary{Op: OpSin, Operand: x} }
func Sinh(x Expr) Expr  { return &Unary{Op: OpSinh, Operand: x} }
func Sqrt(x Expr) Expr  { return &Unary{Op: OpSqrt, Operand: x} }
func Tan(x Expr) Expr   { return &Unary{Op: OpTan, Operand: x} }
func Tanh(x Expr) Expr  { return &Unary{Op: OpTanh, Operand: x} }
