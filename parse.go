package exprlang

import (
	"strconv"
)

const (
	minBindingPower = -1
	maxBindingPower = 120
)

// bindingPowers holds the left binding power of every infix token. Tokens
// missing from the table end the current expression.
var bindingPowers = map[TokenKind]int{
	TokenAssign:             10,
	TokenPlusAssign:         10,
	TokenMinusAssign:        10,
	TokenStarAssign:         10,
	TokenSlashAssign:        10,
	TokenModAssign:          10,
	TokenBitwiseAndAssign:   10,
	TokenBitwiseOrAssign:    10,
	TokenBitwiseXorAssign:   10,
	TokenLeftShiftAssign:    10,
	TokenRightShiftAssign:   10,
	TokenLogicalAndAssign:   10,
	TokenLogicalOrAssign:    10,
	TokenLogicalOr:          20,
	TokenLogicalAnd:         30,
	TokenBitwiseOr:          40,
	TokenBitwiseXor:         50,
	TokenBitwiseAnd:         60,
	TokenEqual:              70,
	TokenNotEqual:           70,
	TokenLessThan:           80,
	TokenLessThanOrEqual:    80,
	TokenGreaterThan:        80,
	TokenGreaterThanOrEqual: 80,
	TokenLeftShift:          90,
	TokenRightShift:         90,
	TokenPlus:               100,
	TokenMinus:              100,
	TokenStar:               110,
	TokenSlash:              110,
	TokenMod:                110,
	TokenLogicalNot:         120,
	TokenBitwiseNot:         120,
}

// Star stays in this set so "a * b * c" keeps grouping as "a * (b * c)".
var rightAssociative = map[TokenKind]bool{
	TokenLogicalNot:       true,
	TokenBitwiseNot:       true,
	TokenStar:             true,
	TokenAssign:           true,
	TokenPlusAssign:       true,
	TokenMinusAssign:      true,
	TokenStarAssign:       true,
	TokenSlashAssign:      true,
	TokenModAssign:        true,
	TokenBitwiseAndAssign: true,
	TokenBitwiseOrAssign:  true,
	TokenBitwiseXorAssign: true,
	TokenLeftShiftAssign:  true,
	TokenRightShiftAssign: true,
	TokenLogicalAndAssign: true,
	TokenLogicalOrAssign:  true,
}

var infixOps = map[TokenKind]BinaryOp{
	TokenPlus:               Add,
	TokenMinus:              Sub,
	TokenStar:               Mul,
	TokenSlash:              Div,
	TokenMod:                Mod,
	TokenBitwiseAnd:         BitwiseAnd,
	TokenBitwiseOr:          BitwiseOr,
	TokenBitwiseXor:         BitwiseXor,
	TokenLeftShift:          LeftShift,
	TokenRightShift:         RightShift,
	TokenLessThan:           LessThan,
	TokenLessThanOrEqual:    LessThanOrEqual,
	TokenGreaterThan:        GreaterThan,
	TokenGreaterThanOrEqual: GreaterThanOrEqual,
	TokenEqual:              Equal,
	TokenNotEqual:           NotEqual,
	TokenLogicalAnd:         LogicalAnd,
	TokenLogicalOr:          LogicalOr,
	TokenAssign:             Assign,
	TokenPlusAssign:         AddAssign,
	TokenMinusAssign:        SubAssign,
	TokenStarAssign:         MulAssign,
	TokenSlashAssign:        DivAssign,
	TokenModAssign:          ModAssign,
	TokenBitwiseAndAssign:   BitwiseAndAssign,
	TokenBitwiseOrAssign:    BitwiseOrAssign,
	TokenBitwiseXorAssign:   BitwiseXorAssign,
	TokenLeftShiftAssign:    LeftShiftAssign,
	TokenRightShiftAssign:   RightShiftAssign,
	TokenLogicalAndAssign:   LogicalAndAssign,
	TokenLogicalOrAssign:    LogicalOrAssign,
}

var prefixOps = map[TokenKind]UnaryOp{
	TokenPlus:       UnaryPlus,
	TokenMinus:      UnaryMinus,
	TokenBitwiseNot: BitwiseNot,
	TokenLogicalNot: LogicalNot,
}

// prefixBindingPower is the threshold a prefix operator parses its operand
// with. Unary minus, like print, takes the whole expression to its right.
func prefixBindingPower(kind TokenKind) int {
	if kind == TokenMinus {
		return minBindingPower
	}
	return maxBindingPower
}

func lbp(kind TokenKind) int {
	if bp, ok := bindingPowers[kind]; ok {
		return bp
	}
	return minBindingPower
}

// Parser is a precedence climbing parser over a scanned token stream.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func (p *Parser) curr() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var loc Location
	if len(p.tokens) > 0 {
		loc = p.tokens[len(p.tokens)-1].Loc
	}
	return NewToken(TokenEOF, "", loc)
}

func (p *Parser) advance() Token {
	tok := p.curr()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// nud builds the seed expression introduced by tok.
func (p *Parser) nud(tok Token) (Expr, error) {
	switch tok.Kind {
	case TokenLeftParen:
		expr, err := p.ParseExpression(minBindingPower)
		if err != nil {
			return nil, err
		}
		if p.curr().Kind != TokenRightParen {
			return nil, newError(ParserError, locOf(tok.Loc),
				"missing right parenthesis for parenthesized expression, found %v", p.curr().Kind)
		}
		p.advance()
		return expr, nil
	case TokenPrint:
		expr, err := p.ParseExpression(minBindingPower)
		if err != nil {
			return nil, err
		}
		return &PrintExpr{Loc: tok.Loc, Expr: expr}, nil
	case TokenInteger:
		i, err := strconv.ParseInt(tok.Spelling, 10, 32)
		if err != nil {
			return nil, newError(ParserError, locOf(tok.Loc), "invalid integer literal %s", tok.Spelling)
		}
		return &IntegerExpr{Loc: tok.Loc, Value: int32(i)}, nil
	case TokenTrue, TokenFalse:
		return &BoolExpr{Loc: tok.Loc, Value: tok.Kind == TokenTrue}, nil
	case TokenIdentifier:
		return &VarExpr{Loc: tok.Loc, Name: tok.Spelling}, nil
	case TokenEOF:
		return nil, newError(ParserError, locOf(tok.Loc), "unexpected end of input")
	}

	if op, ok := prefixOps[tok.Kind]; ok {
		operand, err := p.ParseExpression(prefixBindingPower(tok.Kind))
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Loc: tok.Loc, Op: op, Operand: operand}, nil
	}
	return nil, newError(ParserError, locOf(tok.Loc), "unexpected token %v %q", tok.Kind, tok.Spelling)
}

// led extends left with the infix operator tok.
func (p *Parser) led(left Expr, tok Token, right Expr) (Expr, error) {
	op, ok := infixOps[tok.Kind]
	if !ok {
		if _, prefix := prefixOps[tok.Kind]; prefix {
			return nil, newError(ParserError, locOf(tok.Loc),
				"unexpected prefix operator %q; separate expressions with parentheses", tok.Spelling)
		}
		return nil, newError(ParserError, locOf(tok.Loc), "%v is not an infix operator", tok.Kind)
	}
	if op.IsAssign() {
		return &AssignExpr{Loc: tok.Loc, Op: op, Target: left, Value: right}, nil
	}
	return &BinaryExpr{Loc: tok.Loc, Op: op, Left: left, Right: right}, nil
}

// ParseExpression parses one expression whose infix operators all bind
// tighter than rbp.
func (p *Parser) ParseExpression(rbp int) (Expr, error) {
	left, err := p.nud(p.advance())
	if err != nil {
		return nil, err
	}

	for rbp < lbp(p.curr().Kind) {
		tok := p.advance()
		next := lbp(tok.Kind)
		if rightAssociative[tok.Kind] {
			next--
		}
		right, err := p.ParseExpression(next)
		if err != nil {
			return nil, err
		}
		left, err = p.led(left, tok, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// Parse consumes every token up to EOF.
func (p *Parser) Parse() (*Ast, error) {
	ast := &Ast{}
	for p.curr().Kind != TokenEOF {
		expr, err := p.ParseExpression(minBindingPower)
		if err != nil {
			return nil, err
		}
		ast.Exprs = append(ast.Exprs, expr)
	}
	return ast, nil
}
