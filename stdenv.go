package exprlang

import (
	"fmt"
)

// Decl is what the identifier table binds a name to: a *ConstDecl,
// *UnaryOperatorDecl, *BinaryOperatorDecl or *VarDecl.
type Decl interface {
	decl()
}

type ConstDecl struct {
	Value bool
}

type UnaryOperatorDecl struct {
	Operand Type
	Result  Type
}

type BinaryOperatorDecl struct {
	Left   Type
	Right  Type
	Result Type
}

// VarDecl records the type a variable received on its first assignment.
type VarDecl struct {
	Name string
	Type Type
}

func (*ConstDecl) decl()          {}
func (*UnaryOperatorDecl) decl()  {}
func (*BinaryOperatorDecl) decl() {}
func (*VarDecl) decl()            {}

func (d *ConstDecl) String() string { return fmt.Sprintf("const %v", d.Value) }

func (d *UnaryOperatorDecl) String() string {
	return fmt.Sprintf("(%v) -> %v", d.Operand, d.Result)
}

func (d *BinaryOperatorDecl) String() string {
	return fmt.Sprintf("(%v, %v) -> %v", d.Left, d.Right, d.Result)
}

func (d *VarDecl) String() string { return fmt.Sprintf("var %v", d.Type) }

// StdEnv is the fixed set of built-in declarations loaded into level 0.
type StdEnv struct {
	consts map[string]*ConstDecl
	unary  map[UnaryOp]*UnaryOperatorDecl
	binary map[BinaryOp]*BinaryOperatorDecl
}

func NewStdEnv() *StdEnv {
	std := &StdEnv{
		consts: map[string]*ConstDecl{
			"true":  {Value: true},
			"false": {Value: false},
		},
		unary: map[UnaryOp]*UnaryOperatorDecl{
			UnaryPlus:  {TypeInt, TypeInt},
			UnaryMinus: {TypeInt, TypeInt},
			BitwiseNot: {TypeInt, TypeInt},
			LogicalNot: {TypeBool, TypeBool},
		},
		binary: make(map[BinaryOp]*BinaryOperatorDecl),
	}

	intOp := &BinaryOperatorDecl{TypeInt, TypeInt, TypeInt}
	cmpOp := &BinaryOperatorDecl{TypeInt, TypeInt, TypeBool}
	boolOp := &BinaryOperatorDecl{TypeBool, TypeBool, TypeBool}
	for _, op := range []BinaryOp{Add, Sub, Mul, Div, Mod, BitwiseAnd, BitwiseOr, BitwiseXor, LeftShift, RightShift} {
		std.binary[op] = intOp
	}
	for _, op := range []BinaryOp{LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual} {
		std.binary[op] = cmpOp
	}
	std.binary[LogicalAnd] = boolOp
	std.binary[LogicalOr] = boolOp
	std.binary[Equal] = &BinaryOperatorDecl{TypeAny, TypeAny, TypeBool}
	std.binary[NotEqual] = &BinaryOperatorDecl{TypeAny, TypeAny, TypeBool}
	std.binary[Assign] = &BinaryOperatorDecl{TypeAny, TypeAny, TypeAny}
	for op := AddAssign; op <= LogicalOrAssign; op++ {
		std.binary[op] = std.binary[op.Base()]
	}
	return std
}

func (std *StdEnv) Unary(op UnaryOp) *UnaryOperatorDecl { return std.unary[op] }

func (std *StdEnv) Binary(op BinaryOp) *BinaryOperatorDecl { return std.binary[op] }

// Load declares every constant and operator at level 0 of table.
func (std *StdEnv) Load(table *ScopeTable[Decl]) {
	for name, d := range std.consts {
		table.Declare(0, name, d)
	}
	for op, d := range std.unary {
		table.Declare(0, op.Name(), d)
	}
	for op, d := range std.binary {
		table.Declare(0, op.Name(), d)
	}
}
