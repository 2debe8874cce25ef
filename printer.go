package exprlang

import (
	"bytes"
	"fmt"
)

// Format renders ast as source, one top-level expression per line. Every
// compound expression is parenthesized so parsing the output yields the same
// tree.
func Format(ast *Ast) string {
	var buf bytes.Buffer
	for _, expr := range ast.Exprs {
		writeExpr(&buf, expr)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// FormatExpr renders a single expression.
func FormatExpr(expr Expr) string {
	var buf bytes.Buffer
	writeExpr(&buf, expr)
	return buf.String()
}

func writeExpr(buf *bytes.Buffer, expr Expr) {
	switch e := expr.(type) {
	case *IntegerExpr:
		fmt.Fprint(buf, e.Value)
	case *BoolExpr:
		fmt.Fprint(buf, e.Value)
	case *VarExpr:
		buf.WriteString(e.Name)
	case *UnaryExpr:
		fmt.Fprintf(buf, "(%v", e.Op)
		writeExpr(buf, e.Operand)
		buf.WriteByte(')')
	case *BinaryExpr:
		buf.WriteByte('(')
		writeExpr(buf, e.Left)
		fmt.Fprintf(buf, " %v ", e.Op)
		writeExpr(buf, e.Right)
		buf.WriteByte(')')
	case *AssignExpr:
		buf.WriteByte('(')
		writeExpr(buf, e.Target)
		fmt.Fprintf(buf, " %v ", e.Op)
		writeExpr(buf, e.Value)
		buf.WriteByte(')')
	case *PrintExpr:
		buf.WriteString("(print ")
		writeExpr(buf, e.Expr)
		buf.WriteByte(')')
	}
}
