package exprlang

import (
	"fmt"
)

// Type is the static type of an expression. TypeAny only appears inside
// operator declarations and is never attached to a node.
type Type int

const (
	TypeUnknown Type = iota
	TypeInt
	TypeBool
	TypeAny
)

func (t Type) String() string {
	switch t {
	case TypeUnknown:
		return "Unknown"
	case TypeInt:
		return "Int"
	case TypeBool:
		return "Bool"
	case TypeAny:
		return "Any"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	BitwiseNot
	LogicalNot
)

var unaryOps = [...]struct {
	name     string
	spelling string
}{
	UnaryPlus:  {"unary_plus", "+"},
	UnaryMinus: {"unary_minus", "-"},
	BitwiseNot: {"bitwise_not", "~"},
	LogicalNot: {"logical_not", "!"},
}

// Name is the standard environment key of the operator.
func (op UnaryOp) Name() string { return unaryOps[op].name }

func (op UnaryOp) String() string { return unaryOps[op].spelling }

type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	LeftShift
	RightShift
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	Equal
	NotEqual
	LogicalAnd
	LogicalOr
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	BitwiseAndAssign
	BitwiseOrAssign
	BitwiseXorAssign
	LeftShiftAssign
	RightShiftAssign
	LogicalAndAssign
	LogicalOrAssign
)

var binaryOps = [...]struct {
	name     string
	spelling string
	base     BinaryOp
}{
	Add:                {"add", "+", Add},
	Sub:                {"sub", "-", Sub},
	Mul:                {"mul", "*", Mul},
	Div:                {"div", "/", Div},
	Mod:                {"mod", "%", Mod},
	BitwiseAnd:         {"bitwise_and", "&", BitwiseAnd},
	BitwiseOr:          {"bitwise_or", "|", BitwiseOr},
	BitwiseXor:         {"bitwise_xor", "^", BitwiseXor},
	LeftShift:          {"left_shift", "<<", LeftShift},
	RightShift:         {"right_shift", ">>", RightShift},
	LessThan:           {"less_than", "<", LessThan},
	LessThanOrEqual:    {"less_than_or_equal", "<=", LessThanOrEqual},
	GreaterThan:        {"greater_than", ">", GreaterThan},
	GreaterThanOrEqual: {"greater_than_or_equal", ">=", GreaterThanOrEqual},
	Equal:              {"equal", "==", Equal},
	NotEqual:           {"not_equal", "!=", NotEqual},
	LogicalAnd:         {"logical_and", "&&", LogicalAnd},
	LogicalOr:          {"logical_or", "||", LogicalOr},
	Assign:             {"assign", "=", Assign},
	AddAssign:          {"add_assign", "+=", Add},
	SubAssign:          {"sub_assign", "-=", Sub},
	MulAssign:          {"mul_assign", "*=", Mul},
	DivAssign:          {"div_assign", "/=", Div},
	ModAssign:          {"mod_assign", "%=", Mod},
	BitwiseAndAssign:   {"bitwise_and_assign", "&=", BitwiseAnd},
	BitwiseOrAssign:    {"bitwise_or_assign", "|=", BitwiseOr},
	BitwiseXorAssign:   {"bitwise_xor_assign", "^=", BitwiseXor},
	LeftShiftAssign:    {"left_shift_assign", "<<=", LeftShift},
	RightShiftAssign:   {"right_shift_assign", ">>=", RightShift},
	LogicalAndAssign:   {"logical_and_assign", "&&=", LogicalAnd},
	LogicalOrAssign:    {"logical_or_assign", "||=", LogicalOr},
}

// Name is the standard environment key of the operator.
func (op BinaryOp) Name() string { return binaryOps[op].name }

func (op BinaryOp) String() string { return binaryOps[op].spelling }

// IsAssign reports whether op is "=" or one of its compound forms.
func (op BinaryOp) IsAssign() bool { return op >= Assign }

// Base maps a compound assignment to the binary operator it applies; plain
// operators and "=" map to themselves.
func (op BinaryOp) Base() BinaryOp { return binaryOps[op].base }

// Expr is one of *IntegerExpr, *BoolExpr, *VarExpr, *UnaryExpr,
// *BinaryExpr, *AssignExpr or *PrintExpr.
type Expr interface {
	Pos() Location
	exprNode()
}

type IntegerExpr struct {
	Loc   Location
	Value int32
}

type BoolExpr struct {
	Loc   Location
	Value bool
}

type VarExpr struct {
	Loc  Location
	Name string
	Type Type
}

type UnaryExpr struct {
	Loc     Location
	Op      UnaryOp
	Operand Expr
	Type    Type
}

type BinaryExpr struct {
	Loc   Location
	Op    BinaryOp
	Left  Expr
	Right Expr
	Type  Type
}

// AssignExpr's Target is only required to be a *VarExpr once checked.
type AssignExpr struct {
	Loc    Location
	Op     BinaryOp
	Target Expr
	Value  Expr
	Type   Type
}

type PrintExpr struct {
	Loc  Location
	Expr Expr
}

func (e *IntegerExpr) Pos() Location { return e.Loc }
func (e *BoolExpr) Pos() Location    { return e.Loc }
func (e *VarExpr) Pos() Location     { return e.Loc }
func (e *UnaryExpr) Pos() Location   { return e.Loc }
func (e *BinaryExpr) Pos() Location  { return e.Loc }
func (e *AssignExpr) Pos() Location  { return e.Loc }
func (e *PrintExpr) Pos() Location   { return e.Loc }

func (*IntegerExpr) exprNode() {}
func (*BoolExpr) exprNode()    {}
func (*VarExpr) exprNode()     {}
func (*UnaryExpr) exprNode()   {}
func (*BinaryExpr) exprNode()  {}
func (*AssignExpr) exprNode()  {}
func (*PrintExpr) exprNode()   {}

// Ast is a program: top-level expressions in source order.
type Ast struct {
	Exprs []Expr
}
