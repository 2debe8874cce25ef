package exprlang

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
)

// Scanner turns source text into tokens. The token slice always ends with
// a TokenEOF token.
type Scanner struct {
	buf  *bufio.Reader
	name string
	line int
	col  int

	prevLine int
	prevCol  int
}

func NewScanner(name string, r io.Reader) *Scanner {
	return &Scanner{
		buf:  bufio.NewReader(r),
		name: name,
		line: 1,
		col:  1,
	}
}

func (s *Scanner) loc() Location {
	return Location{File: s.name, Line: s.line, Col: s.col}
}

func (s *Scanner) readRune() (rune, error) {
	r, _, err := s.buf.ReadRune()
	if err != nil {
		return r, err
	}
	s.prevLine, s.prevCol = s.line, s.col
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r, nil
}

func (s *Scanner) unreadRune() error {
	err := s.buf.UnreadRune()
	if err == nil {
		s.line, s.col = s.prevLine, s.prevCol
	}
	return err
}

// acceptRune consumes the next rune if it is want.
func (s *Scanner) acceptRune(want rune) bool {
	r, err := s.readRune()
	if err != nil {
		return false
	}
	if r != want {
		s.unreadRune()
		return false
	}
	return true
}

func (s *Scanner) SkipWhite() {
	for {
		r, err := s.readRune()
		if err != nil {
			return
		}
		if r == '#' {
			for {
				r, err = s.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			s.unreadRune()
			return
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func (s *Scanner) scanWhile(first rune, pred func(rune) bool) (string, error) {
	var buf bytes.Buffer
	buf.WriteRune(first)
	for {
		r, err := s.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if !pred(r) {
			s.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

// operator picks between an operator and its '='-suffixed form.
func (s *Scanner) operator(single, assign TokenKind) TokenKind {
	if s.acceptRune('=') {
		return assign
	}
	return single
}

// Next returns the next token.
func (s *Scanner) Next() (Token, error) {
	s.SkipWhite()
	start := s.loc()
	r, err := s.readRune()
	if err == io.EOF {
		return NewToken(TokenEOF, "", start), nil
	}
	if err != nil {
		return Token{}, newError(ScannerError, locOf(start), "%v", err)
	}

	switch {
	case isDigit(r):
		spelling, err := s.scanWhile(r, isDigit)
		if err != nil {
			return Token{}, newError(ScannerError, locOf(start), "%v", err)
		}
		return NewToken(TokenInteger, spelling, start), nil
	case isIdentLetter(r):
		spelling, err := s.scanWhile(r, func(r rune) bool {
			return isIdentLetter(r) || isDigit(r)
		})
		if err != nil {
			return Token{}, newError(ScannerError, locOf(start), "%v", err)
		}
		return NewToken(TokenIdentifier, spelling, start), nil
	}

	var kind TokenKind
	switch r {
	case '(':
		kind = TokenLeftParen
	case ')':
		kind = TokenRightParen
	case '+':
		kind = s.operator(TokenPlus, TokenPlusAssign)
	case '-':
		kind = s.operator(TokenMinus, TokenMinusAssign)
	case '*':
		kind = s.operator(TokenStar, TokenStarAssign)
	case '/':
		kind = s.operator(TokenSlash, TokenSlashAssign)
	case '%':
		kind = s.operator(TokenMod, TokenModAssign)
	case '^':
		kind = s.operator(TokenBitwiseXor, TokenBitwiseXorAssign)
	case '~':
		kind = TokenBitwiseNot
	case '&':
		if s.acceptRune('&') {
			kind = s.operator(TokenLogicalAnd, TokenLogicalAndAssign)
		} else {
			kind = s.operator(TokenBitwiseAnd, TokenBitwiseAndAssign)
		}
	case '|':
		if s.acceptRune('|') {
			kind = s.operator(TokenLogicalOr, TokenLogicalOrAssign)
		} else {
			kind = s.operator(TokenBitwiseOr, TokenBitwiseOrAssign)
		}
	case '<':
		if s.acceptRune('<') {
			kind = s.operator(TokenLeftShift, TokenLeftShiftAssign)
		} else {
			kind = s.operator(TokenLessThan, TokenLessThanOrEqual)
		}
	case '>':
		if s.acceptRune('>') {
			kind = s.operator(TokenRightShift, TokenRightShiftAssign)
		} else {
			kind = s.operator(TokenGreaterThan, TokenGreaterThanOrEqual)
		}
	case '=':
		kind = s.operator(TokenAssign, TokenEqual)
	case '!':
		kind = s.operator(TokenLogicalNot, TokenNotEqual)
	default:
		return Token{}, newError(ScannerError, locOf(start), "invalid character: %q", r)
	}
	return NewToken(kind, spellings[kind], start), nil
}

// ScanAll scans the whole input.
func (s *Scanner) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

var spellings = map[TokenKind]string{
	TokenLeftParen:          "(",
	TokenRightParen:         ")",
	TokenPlus:               "+",
	TokenMinus:              "-",
	TokenStar:               "*",
	TokenSlash:              "/",
	TokenMod:                "%",
	TokenBitwiseAnd:         "&",
	TokenBitwiseOr:          "|",
	TokenBitwiseXor:         "^",
	TokenBitwiseNot:         "~",
	TokenLogicalAnd:         "&&",
	TokenLogicalOr:          "||",
	TokenLogicalNot:         "!",
	TokenLeftShift:          "<<",
	TokenRightShift:         ">>",
	TokenLessThan:           "<",
	TokenLessThanOrEqual:    "<=",
	TokenGreaterThan:        ">",
	TokenGreaterThanOrEqual: ">=",
	TokenEqual:              "==",
	TokenNotEqual:           "!=",
	TokenAssign:             "=",
	TokenPlusAssign:         "+=",
	TokenMinusAssign:        "-=",
	TokenStarAssign:         "*=",
	TokenSlashAssign:        "/=",
	TokenModAssign:          "%=",
	TokenBitwiseAndAssign:   "&=",
	TokenBitwiseOrAssign:    "|=",
	TokenBitwiseXorAssign:   "^=",
	TokenLeftShiftAssign:    "<<=",
	TokenRightShiftAssign:   ">>=",
	TokenLogicalAndAssign:   "&&=",
	TokenLogicalOrAssign:    "||=",
}
