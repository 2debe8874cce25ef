package exprlang

// Checker decorates an Ast with types, stopping at the first mismatch.
type Checker struct {
	std   *StdEnv
	table *ScopeTable[Decl]
}

func NewChecker(std *StdEnv) *Checker {
	table := NewScopeTable[Decl]()
	std.Load(table)
	return &Checker{
		std:   std,
		table: table,
	}
}

// Table exposes the identifier table.
func (c *Checker) Table() *ScopeTable[Decl] {
	return c.table
}

func (c *Checker) Check(ast *Ast) error {
	for _, expr := range ast.Exprs {
		if _, err := c.check(expr); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) check(expr Expr) (Type, error) {
	switch e := expr.(type) {
	case *IntegerExpr:
		return TypeInt, nil
	case *BoolExpr:
		return TypeBool, nil
	case *VarExpr:
		return c.checkVar(e)
	case *UnaryExpr:
		return c.checkUnary(e)
	case *BinaryExpr:
		return c.checkBinary(e)
	case *AssignExpr:
		return c.checkAssign(e)
	case *PrintExpr:
		return c.check(e.Expr)
	}
	return TypeUnknown, newError(CheckerError, locOf(expr.Pos()), "unknown expression %T", expr)
}

func (c *Checker) checkVar(e *VarExpr) (Type, error) {
	d, ok := c.table.Lookup(e.Name)
	if !ok {
		return TypeUnknown, newError(CheckerError, locOf(e.Loc), "unknown identifier %s", e.Name)
	}
	switch d := d.(type) {
	case *VarDecl:
		e.Type = d.Type
	case *ConstDecl:
		e.Type = TypeBool
	default:
		return TypeUnknown, newError(CheckerError, locOf(e.Loc), "%s names a built-in operator, not a variable", e.Name)
	}
	return e.Type, nil
}

func (c *Checker) unaryDecl(op UnaryOp) *UnaryOperatorDecl {
	if d, ok := c.table.Lookup(op.Name()); ok {
		if d, ok := d.(*UnaryOperatorDecl); ok {
			return d
		}
	}
	return c.std.Unary(op)
}

func (c *Checker) binaryDecl(op BinaryOp) *BinaryOperatorDecl {
	if d, ok := c.table.Lookup(op.Name()); ok {
		if d, ok := d.(*BinaryOperatorDecl); ok {
			return d
		}
	}
	return c.std.Binary(op)
}

func (c *Checker) checkUnary(e *UnaryExpr) (Type, error) {
	typ, err := c.check(e.Operand)
	if err != nil {
		return TypeUnknown, err
	}
	spec := c.unaryDecl(e.Op)
	if typ != spec.Operand {
		return TypeUnknown, newError(CheckerError, locOf(e.Loc),
			"operand of unary %v has type %v, expected %v", e.Op, typ, spec.Operand)
	}
	e.Type = spec.Result
	return e.Type, nil
}

func (c *Checker) checkBinary(e *BinaryExpr) (Type, error) {
	lhs, err := c.check(e.Left)
	if err != nil {
		return TypeUnknown, err
	}
	rhs, err := c.check(e.Right)
	if err != nil {
		return TypeUnknown, err
	}

	spec := c.binaryDecl(e.Op)
	if err := matchOperands(e.Loc, e.Op, spec, lhs, rhs); err != nil {
		return TypeUnknown, err
	}
	e.Type = spec.Result
	return e.Type, nil
}

func matchOperands(loc Location, op BinaryOp, spec *BinaryOperatorDecl, lhs, rhs Type) error {
	if spec.Left == TypeAny && spec.Right == TypeAny {
		if lhs != rhs {
			return newError(CheckerError, locOf(loc),
				"operands of %v have different types: %v and %v", op, lhs, rhs)
		}
		return nil
	}
	if lhs != spec.Left {
		return newError(CheckerError, locOf(loc),
			"left operand of %v has type %v, expected %v", op, lhs, spec.Left)
	}
	if rhs != spec.Right {
		return newError(CheckerError, locOf(loc),
			"right operand of %v has type %v, expected %v", op, rhs, spec.Right)
	}
	return nil
}

func (c *Checker) checkAssign(e *AssignExpr) (Type, error) {
	rhs, err := c.check(e.Value)
	if err != nil {
		return TypeUnknown, err
	}
	spec := c.binaryDecl(e.Op)

	target, ok := e.Target.(*VarExpr)
	if !ok {
		return TypeUnknown, newError(CheckerError, locOf(e.Target.Pos()),
			"left side of %v must be a variable", e.Op)
	}

	d, declared := c.table.Lookup(target.Name)
	if declared {
		if _, ok := d.(*VarDecl); !ok {
			return TypeUnknown, newError(CheckerError, locOf(target.Loc),
				"cannot assign to built-in %s", target.Name)
		}
	}

	if e.Op == Assign {
		if !declared {
			c.table.Save(target.Name, &VarDecl{Name: target.Name, Type: rhs})
			target.Type = rhs
			e.Type = rhs
			return e.Type, nil
		}
		typ := d.(*VarDecl).Type
		if typ != rhs {
			return TypeUnknown, newError(CheckerError, locOf(e.Loc),
				"cannot assign %v to %s of type %v", rhs, target.Name, typ)
		}
		target.Type = typ
		e.Type = typ
		return e.Type, nil
	}

	if !declared {
		return TypeUnknown, newError(CheckerError, locOf(target.Loc), "unknown identifier %s", target.Name)
	}
	typ := d.(*VarDecl).Type
	if err := matchOperands(e.Loc, e.Op, spec, typ, rhs); err != nil {
		return TypeUnknown, err
	}
	target.Type = typ
	e.Type = spec.Result
	return e.Type, nil
}
