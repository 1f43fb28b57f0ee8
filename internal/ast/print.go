package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a tree in a compact single-line form, mainly for demo
// listings and error context. Binary operands are always parenthesized so
// the printed form is unambiguous without precedence rules.
func Format(expr Expr) string {
	var sb strings.Builder
	writeExpr(&sb, expr)
	return sb.String()
}

func writeExpr(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Number:
		sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *Ident:
		sb.WriteString(e.Name)
	case *Unary:
		sb.WriteString(e.Op.String())
		sb.WriteByte('(')
		writeExpr(sb, e.Operand)
		sb.WriteByte(')')
	case *Binary:
		sb.WriteByte('(')
		writeExpr(sb, e.Left)
		sb.WriteString(e.Op.String())
		writeExpr(sb, e.Right)
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<%T>", expr)
	}
}
