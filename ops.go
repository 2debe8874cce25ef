package exprlang

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	errDivisionByZero = errors.New("integer division by zero")
	errNegativeShift  = errors.New("negative shift count")
)

type binaryFn func(it *Interpreter, lhs, rhs Value) (Value, error)

var binaryFns map[BinaryOp]binaryFn

func pure(fn func(a, b int32) int32) binaryFn {
	return func(_ *Interpreter, lhs, rhs Value) (Value, error) {
		return intOp(lhs, rhs, fn), nil
	}
}

func ordered(pred func(c int) bool) binaryFn {
	return func(_ *Interpreter, lhs, rhs Value) (Value, error) {
		c, ok := compare(lhs, rhs)
		if !ok {
			return NoneValue(), nil
		}
		return BoolValue(pred(c)), nil
	}
}

func logical(fn func(a, b bool) bool) binaryFn {
	return func(_ *Interpreter, lhs, rhs Value) (Value, error) {
		a, ok1 := lhs.Bool()
		b, ok2 := rhs.Bool()
		if !ok1 || !ok2 {
			return NoneValue(), nil
		}
		return BoolValue(fn(a, b)), nil
	}
}

func init() {
	binaryFns = make(map[BinaryOp]binaryFn)
	binaryFns[Add] = pure(func(a, b int32) int32 { return a + b })
	binaryFns[Sub] = pure(func(a, b int32) int32 { return a - b })
	binaryFns[Mul] = pure(func(a, b int32) int32 { return a * b })
	binaryFns[Div] = doDiv
	binaryFns[Mod] = doMod
	binaryFns[BitwiseAnd] = pure(func(a, b int32) int32 { return a & b })
	binaryFns[BitwiseOr] = pure(func(a, b int32) int32 { return a | b })
	binaryFns[BitwiseXor] = pure(func(a, b int32) int32 { return a ^ b })
	binaryFns[LeftShift] = doLeftShift
	binaryFns[RightShift] = doRightShift
	binaryFns[LessThan] = ordered(func(c int) bool { return c < 0 })
	binaryFns[LessThanOrEqual] = ordered(func(c int) bool { return c <= 0 })
	binaryFns[GreaterThan] = ordered(func(c int) bool { return c > 0 })
	binaryFns[GreaterThanOrEqual] = ordered(func(c int) bool { return c >= 0 })
	binaryFns[Equal] = doEqual
	binaryFns[NotEqual] = doNotEqual
	// Both operands are already evaluated; && and || never short-circuit.
	binaryFns[LogicalAnd] = logical(func(a, b bool) bool { return a && b })
	binaryFns[LogicalOr] = logical(func(a, b bool) bool { return a || b })
}

func doDiv(_ *Interpreter, lhs, rhs Value) (Value, error) {
	if b, ok := rhs.Int(); ok && b == 0 {
		if _, ok := lhs.Int(); ok {
			return NoneValue(), errDivisionByZero
		}
	}
	return intOp(lhs, rhs, func(a, b int32) int32 { return a / b }), nil
}

func doMod(_ *Interpreter, lhs, rhs Value) (Value, error) {
	if b, ok := rhs.Int(); ok && b == 0 {
		if _, ok := lhs.Int(); ok {
			return NoneValue(), errDivisionByZero
		}
	}
	return intOp(lhs, rhs, func(a, b int32) int32 { return a % b }), nil
}

func doLeftShift(_ *Interpreter, lhs, rhs Value) (Value, error) {
	if b, ok := rhs.Int(); ok && b < 0 {
		return NoneValue(), errNegativeShift
	}
	return intOp(lhs, rhs, func(a, b int32) int32 { return a << uint32(b) }), nil
}

func doRightShift(_ *Interpreter, lhs, rhs Value) (Value, error) {
	if b, ok := rhs.Int(); ok && b < 0 {
		return NoneValue(), errNegativeShift
	}
	return intOp(lhs, rhs, func(a, b int32) int32 { return a >> uint32(b) }), nil
}

func doEqual(_ *Interpreter, lhs, rhs Value) (Value, error) {
	return BoolValue(lhs == rhs), nil
}

func doNotEqual(it *Interpreter, lhs, rhs Value) (Value, error) {
	if it.quirks.NotEqualIsEqual {
		return BoolValue(lhs == rhs), nil
	}
	return BoolValue(lhs != rhs), nil
}

// Interpreter evaluates a checked Ast. It trusts the checker: unbound names
// and ill-typed operands evaluate to None instead of failing.
type Interpreter struct {
	runtime *ScopeTable[Value]
	quirks  Quirks
	out     io.Writer
}

func NewInterpreter(std *StdEnv, quirks Quirks) *Interpreter {
	runtime := NewScopeTable[Value]()
	for name, d := range std.consts {
		runtime.Declare(0, name, BoolValue(d.Value))
	}
	return &Interpreter{
		runtime: runtime,
		quirks:  quirks,
		out:     os.Stdout,
	}
}

// Runtime exposes the runtime environment.
func (it *Interpreter) Runtime() *ScopeTable[Value] {
	return it.runtime
}

// Interpret evaluates every top-level expression and returns the value of
// the last one.
func (it *Interpreter) Interpret(ast *Ast) (Value, error) {
	ret := NoneValue()
	for _, expr := range ast.Exprs {
		v, err := it.eval(expr)
		if err != nil {
			return NoneValue(), err
		}
		ret = v
	}
	return ret, nil
}

func (it *Interpreter) eval(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *IntegerExpr:
		return IntValue(e.Value), nil
	case *BoolExpr:
		return BoolValue(e.Value), nil
	case *VarExpr:
		v, _ := it.runtime.Lookup(e.Name)
		return v, nil
	case *UnaryExpr:
		return it.evalUnary(e)
	case *BinaryExpr:
		lhs, err := it.eval(e.Left)
		if err != nil {
			return NoneValue(), err
		}
		rhs, err := it.eval(e.Right)
		if err != nil {
			return NoneValue(), err
		}
		return it.apply(e.Loc, e.Op, lhs, rhs)
	case *AssignExpr:
		return it.evalAssign(e)
	case *PrintExpr:
		v, err := it.eval(e.Expr)
		if err != nil {
			return NoneValue(), err
		}
		fmt.Fprintln(it.out, v)
		return NoneValue(), nil
	}
	return NoneValue(), newError(InterpreterError, locOf(expr.Pos()), "unknown expression %T", expr)
}

func (it *Interpreter) evalUnary(e *UnaryExpr) (Value, error) {
	v, err := it.eval(e.Operand)
	if err != nil {
		return NoneValue(), err
	}
	switch e.Op {
	case UnaryPlus:
		return v, nil
	case UnaryMinus:
		return negate(v), nil
	case BitwiseNot, LogicalNot:
		return complement(v), nil
	}
	return NoneValue(), newError(InterpreterError, locOf(e.Loc), "unknown unary operator %v", e.Op)
}

func (it *Interpreter) apply(loc Location, op BinaryOp, lhs, rhs Value) (Value, error) {
	fn, ok := binaryFns[op]
	if !ok {
		return NoneValue(), newError(InterpreterError, locOf(loc), "unknown binary operator %v", op)
	}
	v, err := fn(it, lhs, rhs)
	if err != nil {
		return NoneValue(), newError(InterpreterError, locOf(loc), "%v", err)
	}
	return v, nil
}

func (it *Interpreter) evalAssign(e *AssignExpr) (Value, error) {
	target, ok := e.Target.(*VarExpr)
	if !ok {
		return NoneValue(), nil
	}
	old, _ := it.runtime.Lookup(target.Name)
	rhs, err := it.eval(e.Value)
	if err != nil {
		return NoneValue(), err
	}

	v := rhs
	switch {
	case e.Op == Assign:
	case e.Op == LeftShiftAssign && it.quirks.ShiftLeftAssignAdds:
		v, err = it.apply(e.Loc, Add, old, rhs)
	default:
		v, err = it.apply(e.Loc, e.Op.Base(), old, rhs)
	}
	if err != nil {
		return NoneValue(), err
	}
	it.runtime.Save(target.Name, v)
	return v, nil
}
