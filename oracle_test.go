package exprlang

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
)

// randomExpr builds an expression over + - * on small literals, with
// optional grouping. Negative literals are always parenthesized since a
// leading minus takes the rest of the expression.
func randomExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.Intn(3) == 0 {
		n := r.Intn(10)
		if r.Intn(4) == 0 {
			return fmt.Sprintf("(-%d)", n)
		}
		return fmt.Sprint(n)
	}
	ops := []string{"+", "-", "*"}
	lhs := randomExpr(r, depth-1)
	rhs := randomExpr(r, depth-1)
	e := lhs + " " + ops[r.Intn(len(ops))] + " " + rhs
	if r.Intn(2) == 0 {
		e = "(" + e + ")"
	}
	return e
}

// TestArithmeticOracle compares integer arithmetic against the anko
// interpreter. Literals stay below 10 so no result leaves int32.
func TestArithmeticOracle(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := quietSession()
	for i := 0; i < 200; i++ {
		src := randomExpr(r, 3)
		want, err := vm.Execute(env.NewEnv(), nil, src)
		if err != nil {
			t.Fatalf("anko %q: %v", src, err)
		}
		got := evalString(t, s, src)
		if got.String() != fmt.Sprint(want) {
			t.Errorf("%q: want %v but got %v", src, want, got)
		}
	}
}

func TestArithmeticOracleFixed(t *testing.T) {
	s := quietSession()
	for _, src := range []string{
		"1 + 2 * 3",
		"2 * 3 - 4 * 5",
		"10 - 3 - 2",
		"(-(4 - 9)) * 3",
		"((1 + 2) * (3 - 4)) - -5",
	} {
		want, err := vm.Execute(env.NewEnv(), nil, src)
		if err != nil {
			t.Fatalf("anko %q: %v", src, err)
		}
		got := evalString(t, s, strings.TrimSpace(src))
		if got.String() != fmt.Sprint(want) {
			t.Errorf("%q: want %v but got %v", src, want, got)
		}
	}
}
