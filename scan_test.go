package exprlang

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{
			input: "",
			want:  []TokenKind{TokenEOF},
		},
		{
			input: "print x true false printer",
			want:  []TokenKind{TokenPrint, TokenIdentifier, TokenTrue, TokenFalse, TokenIdentifier, TokenEOF},
		},
		{
			input: "<<= >>= << >> <= >= < >",
			want: []TokenKind{TokenLeftShiftAssign, TokenRightShiftAssign, TokenLeftShift, TokenRightShift,
				TokenLessThanOrEqual, TokenGreaterThanOrEqual, TokenLessThan, TokenGreaterThan, TokenEOF},
		},
		{
			input: "&&= ||= && || &= |= & |",
			want: []TokenKind{TokenLogicalAndAssign, TokenLogicalOrAssign, TokenLogicalAnd, TokenLogicalOr,
				TokenBitwiseAndAssign, TokenBitwiseOrAssign, TokenBitwiseAnd, TokenBitwiseOr, TokenEOF},
		},
		{
			input: "+= -= *= /= %= ^= == != = ! ~",
			want: []TokenKind{TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign, TokenModAssign,
				TokenBitwiseXorAssign, TokenEqual, TokenNotEqual, TokenAssign, TokenLogicalNot, TokenBitwiseNot, TokenEOF},
		},
		{
			input: "x1=(42)# trailing comment\n_y",
			want: []TokenKind{TokenIdentifier, TokenAssign, TokenLeftParen, TokenInteger, TokenRightParen,
				TokenIdentifier, TokenEOF},
		},
	}
	for _, test := range tests {
		tokens, err := NewScanner("<test>", strings.NewReader(test.input)).ScanAll()
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		var got []TokenKind
		for _, tok := range tokens {
			got = append(got, tok.Kind)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestScanLocations(t *testing.T) {
	tokens, err := NewScanner("a.expr", strings.NewReader("x = 10\n  y <<= x")).ScanAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: TokenIdentifier, Spelling: "x", Loc: Location{"a.expr", 1, 1}},
		{Kind: TokenAssign, Spelling: "=", Loc: Location{"a.expr", 1, 3}},
		{Kind: TokenInteger, Spelling: "10", Loc: Location{"a.expr", 1, 5}},
		{Kind: TokenIdentifier, Spelling: "y", Loc: Location{"a.expr", 2, 3}},
		{Kind: TokenLeftShiftAssign, Spelling: "<<=", Loc: Location{"a.expr", 2, 5}},
		{Kind: TokenIdentifier, Spelling: "x", Loc: Location{"a.expr", 2, 9}},
		{Kind: TokenEOF, Spelling: "", Loc: Location{"a.expr", 2, 10}},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestScanError(t *testing.T) {
	_, err := NewScanner("<test>", strings.NewReader("1 +\n $")).ScanAll()
	var e *Error
	if !errors.As(err, &e) || e.Kind != ScannerError {
		t.Fatalf("want ScannerError but got %v", err)
	}
	if want := (Location{"<test>", 2, 2}); e.Loc == nil || *e.Loc != want {
		t.Errorf("want location %v but got %v", want, e.Loc)
	}
}

func TestNewTokenKeywords(t *testing.T) {
	if tok := NewToken(TokenIdentifier, "print", Location{}); tok.Kind != TokenPrint {
		t.Errorf("want Print but got %v", tok.Kind)
	}
	if tok := NewToken(TokenIdentifier, "Print", Location{}); tok.Kind != TokenIdentifier {
		t.Errorf("want Identifier but got %v", tok.Kind)
	}
}
