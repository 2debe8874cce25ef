package exprlang

import (
	"errors"
	"strings"
	"testing"
)

func checkString(c *Checker, src string) (*Ast, error) {
	ast, err := parseString(src)
	if err != nil {
		return nil, err
	}
	return ast, c.Check(ast)
}

func TestCheckTypes(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{input: "1", want: TypeInt},
		{input: "true", want: TypeBool},
		{input: "-1", want: TypeInt},
		{input: "~1", want: TypeInt},
		{input: "!false", want: TypeBool},
		{input: "1 + 2", want: TypeInt},
		{input: "1 < 2", want: TypeBool},
		{input: "1 == 2", want: TypeBool},
		{input: "true != false", want: TypeBool},
		{input: "true && false", want: TypeBool},
		{input: "x = 1", want: TypeInt},
		{input: "b = 1 > 0", want: TypeBool},
		{input: "print 7", want: TypeInt},
	}
	for _, test := range tests {
		ast, err := checkString(NewChecker(NewStdEnv()), test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got := typeOf(ast.Exprs[0]); got != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "y", want: "unknown identifier y"},
		{input: "x = 5 x = true", want: "cannot assign Bool to x of type Int"},
		{input: "b = true b += 1", want: "left operand of += has type Bool, expected Int"},
		{input: "n = 1 n &&= true", want: "left operand of &&= has type Int, expected Bool"},
		{input: "n += 1", want: "unknown identifier n"},
		{input: "1 = 2", want: "left side of = must be a variable"},
		{input: "(x) + 1 = 2", want: "left side of = must be a variable"},
		{input: "-true", want: "operand of unary - has type Bool, expected Int"},
		{input: "!1", want: "operand of unary ! has type Int, expected Bool"},
		{input: "~true", want: "operand of unary ~ has type Bool, expected Int"},
		{input: "true + 1", want: "left operand of + has type Bool, expected Int"},
		{input: "1 + true", want: "right operand of + has type Bool, expected Int"},
		{input: "1 == true", want: "operands of == have different types: Int and Bool"},
		{input: "1 && true", want: "left operand of && has type Int, expected Bool"},
		{input: "add", want: "add names a built-in operator, not a variable"},
		{input: "mul = 3", want: "cannot assign to built-in mul"},
		{input: "true", want: ""},
	}
	for _, test := range tests {
		_, err := checkString(NewChecker(NewStdEnv()), test.input)
		if test.want == "" {
			if err != nil {
				t.Errorf("%q: %v", test.input, err)
			}
			continue
		}
		var e *Error
		if !errors.As(err, &e) || e.Kind != CheckerError {
			t.Errorf("%q: want CheckerError but got %v", test.input, err)
			continue
		}
		if e.Msg != test.want {
			t.Errorf("%q: want %q but got %q", test.input, test.want, e.Msg)
		}
	}
}

func TestCheckStickyTypes(t *testing.T) {
	c := NewChecker(NewStdEnv())
	if _, err := checkString(c, "x = 5"); err != nil {
		t.Fatal(err)
	}
	d, ok := c.Table().Lookup("x")
	if !ok {
		t.Fatal("x was not recorded")
	}
	if v, ok := d.(*VarDecl); !ok || v.Type != TypeInt {
		t.Fatalf("want var Int but got %v", d)
	}
	if _, err := checkString(c, "x = x * 2 x"); err != nil {
		t.Error(err)
	}
	if _, err := checkString(c, "x = false"); err == nil {
		t.Error("want error on retyping x")
	}
}

func TestCheckDecoratesNodes(t *testing.T) {
	ast, err := checkString(NewChecker(NewStdEnv()), "x = 1 x += 2 * x")
	if err != nil {
		t.Fatal(err)
	}
	assign := ast.Exprs[1].(*AssignExpr)
	if assign.Type != TypeInt || assign.Target.(*VarExpr).Type != TypeInt {
		t.Errorf("assignment not decorated: %+v", assign)
	}
	mul := assign.Value.(*BinaryExpr)
	if mul.Type != TypeInt || mul.Right.(*VarExpr).Type != TypeInt {
		t.Errorf("operand not decorated: %+v", mul)
	}
}

func TestCheckScopes(t *testing.T) {
	c := NewChecker(NewStdEnv())
	if _, err := checkString(c, "outer = 1"); err != nil {
		t.Fatal(err)
	}
	c.Table().OpenScope()
	if _, err := checkString(c, "inner = outer + 1 outer = 3"); err != nil {
		t.Fatal(err)
	}
	c.Table().CloseScope()
	_, err := checkString(c, "inner")
	if err == nil || !strings.Contains(err.Error(), "unknown identifier inner") {
		t.Errorf("inner should be gone with its scope, got %v", err)
	}
}
