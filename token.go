package exprlang

import (
	"fmt"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInteger
	TokenIdentifier
	TokenPrint
	TokenTrue
	TokenFalse
	TokenLeftParen
	TokenRightParen
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenMod
	TokenBitwiseAnd
	TokenBitwiseOr
	TokenBitwiseXor
	TokenBitwiseNot
	TokenLogicalAnd
	TokenLogicalOr
	TokenLogicalNot
	TokenLeftShift
	TokenRightShift
	TokenLessThan
	TokenLessThanOrEqual
	TokenGreaterThan
	TokenGreaterThanOrEqual
	TokenEqual
	TokenNotEqual
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenModAssign
	TokenBitwiseAndAssign
	TokenBitwiseOrAssign
	TokenBitwiseXorAssign
	TokenLeftShiftAssign
	TokenRightShiftAssign
	TokenLogicalAndAssign
	TokenLogicalOrAssign
)

var tokenNames = [...]string{
	TokenEOF:                "EOF",
	TokenInteger:            "Integer",
	TokenIdentifier:         "Identifier",
	TokenPrint:              "Print",
	TokenTrue:               "True",
	TokenFalse:              "False",
	TokenLeftParen:          "LeftParen",
	TokenRightParen:         "RightParen",
	TokenPlus:               "Plus",
	TokenMinus:              "Minus",
	TokenStar:               "Star",
	TokenSlash:              "Slash",
	TokenMod:                "Mod",
	TokenBitwiseAnd:         "BitwiseAnd",
	TokenBitwiseOr:          "BitwiseOr",
	TokenBitwiseXor:         "BitwiseXor",
	TokenBitwiseNot:         "BitwiseNot",
	TokenLogicalAnd:         "LogicalAnd",
	TokenLogicalOr:          "LogicalOr",
	TokenLogicalNot:         "LogicalNot",
	TokenLeftShift:          "LeftShift",
	TokenRightShift:         "RightShift",
	TokenLessThan:           "LessThan",
	TokenLessThanOrEqual:    "LessThanOrEqual",
	TokenGreaterThan:        "GreaterThan",
	TokenGreaterThanOrEqual: "GreaterThanOrEqual",
	TokenEqual:              "Equal",
	TokenNotEqual:           "NotEqual",
	TokenAssign:             "Assign",
	TokenPlusAssign:         "PlusAssign",
	TokenMinusAssign:        "MinusAssign",
	TokenStarAssign:         "StarAssign",
	TokenSlashAssign:        "SlashAssign",
	TokenModAssign:          "ModAssign",
	TokenBitwiseAndAssign:   "BitwiseAndAssign",
	TokenBitwiseOrAssign:    "BitwiseOrAssign",
	TokenBitwiseXorAssign:   "BitwiseXorAssign",
	TokenLeftShiftAssign:    "LeftShiftAssign",
	TokenRightShiftAssign:   "RightShiftAssign",
	TokenLogicalAndAssign:   "LogicalAndAssign",
	TokenLogicalOrAssign:    "LogicalOrAssign",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords are matched against identifier spellings when a token is built.
var keywords = map[string]TokenKind{
	"print": TokenPrint,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// Location is a 1-based position in a named source.
type Location struct {
	File string
	Line int
	Col  int
}

func (l Location) String() string {
	return fmt.Sprintf("[%s] line: %d, col: %d", l.File, l.Line, l.Col)
}

type Token struct {
	Kind     TokenKind
	Spelling string
	Loc      Location
}

// NewToken builds a token, promoting identifiers spelled like a keyword to
// the keyword's kind.
func NewToken(kind TokenKind, spelling string, loc Location) Token {
	if kind == TokenIdentifier {
		if kw, ok := keywords[spelling]; ok {
			kind = kw
		}
	}
	return Token{Kind: kind, Spelling: spelling, Loc: loc}
}

func (t Token) String() string {
	return fmt.Sprintf("%v %v %q", t.Loc, t.Kind, t.Spelling)
}
