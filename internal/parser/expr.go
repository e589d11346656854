package parser

import (
	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/token"
)

// binopPrec maps a binary-operator token to its precedence climbing
// strength (spec §4.3 "Binary operators use a precedence table"). Higher
// binds tighter; '=' is lowest and right-associative.
var binopPrec = map[token.Kind]int{
	token.KindAssign:    1,
	token.KindPipe:      2,
	token.KindCaret:     3,
	token.KindAmpersand: 4,
	token.KindEquals:    5,
	token.KindPlus:      6,
	token.KindMinus:     6,
	token.KindStar:      7,
	token.KindSlash:     7,
}

var binopKindOf = map[token.Kind]ast.BinopKind{
	token.KindAssign:    ast.BinopAssign,
	token.KindPipe:      ast.BinopBitOr,
	token.KindCaret:     ast.BinopBitXor,
	token.KindAmpersand: ast.BinopBitAnd,
	token.KindEquals:    ast.BinopEquals,
	token.KindPlus:      ast.BinopAdd,
	token.KindMinus:     ast.BinopSub,
	token.KindStar:      ast.BinopMul,
	token.KindSlash:     ast.BinopDiv,
}

// prefixUnopKindOf maps a prefix-position token to its unary-operator kind.
// '^' and '+' are binops too (BinopBitXor, BinopAdd); this table gives them
// their prefix-unop meaning (dereference, unary plus) the same way '-' and
// '&' already have both a binop and a prefix-unop entry.
var prefixUnopKindOf = map[token.Kind]ast.UnopKind{
	token.KindMinus:      ast.UnopNeg,
	token.KindBang:       ast.UnopNot,
	token.KindTilde:      ast.UnopBitNot,
	token.KindAmpersand:  ast.UnopAddr,
	token.KindCaret:      ast.UnopDeref,
	token.KindPlus:       ast.UnopPositive,
	token.KindPlusPlus:   ast.UnopPreIncr,
	token.KindMinusMinus: ast.UnopPreDecr,
}

// postfixUnopKindOf maps a postfix-position token to its unary-operator
// kind (spec §4.3 "postfix unop (++, --) if the token maps into the
// postfix-unop table").
var postfixUnopKindOf = map[token.Kind]ast.UnopKind{
	token.KindPlusPlus:   ast.UnopPostIncr,
	token.KindMinusMinus: ast.UnopPostDecr,
}

// expression is the Pratt entry point: parse a primary, then climb binary
// operators down to minimum precedence 1.
func (p *Parser) expression() ast.Expr {
	return p.binaryExpr(1)
}

// binaryExpr implements the precedence-climbing loop (spec §4.3): repeatedly
// peek a binop, compare its precedence against min, and if it qualifies,
// consume it and recurse with min = prec+1 (left-associative) except for
// assignment, which recurses with min = prec to stay right-associative.
func (p *Parser) binaryExpr(min int) ast.Expr {
	left := p.unary()

	for {
		kind, ok := p.peekBinop()
		if !ok {
			break
		}
		prec := binopPrec[kind]
		if prec < min {
			break
		}
		tok := p.advance()
		nextMin := prec + 1
		if kind == token.KindAssign {
			nextMin = prec
		}
		right := p.binaryExpr(nextMin)
		left = p.prog.Exprs.NewBinop(tok, binopKindOf[kind], left, right)
	}
	return left
}

func (p *Parser) peekBinop() (token.Kind, bool) {
	k := p.tokens.Kind(p.stream[p.pos])
	_, ok := binopPrec[k]
	return k, ok
}

// unary parses an optional prefix operator applied to a postfix expression
// (spec §4.3 "primary production ... any prefix unary operator").
func (p *Parser) unary() ast.Expr {
	k := p.tokens.Kind(p.stream[p.pos])
	if opKind, ok := prefixUnopKindOf[k]; ok {
		tok := p.advance()
		operand := p.unary()
		return p.prog.Exprs.NewUnop(tok, opKind, operand)
	}
	return p.postfix(p.primary())
}

// postfix greedily consumes call/subscript/member/postfix-unop suffixes
// (spec §4.3 "After the primary, the parser greedily consumes postfix
// suffixes").
func (p *Parser) postfix(e ast.Expr) ast.Expr {
	for {
		switch {
		case p.check(token.KindLParen):
			e = p.call(e)
		case p.check(token.KindLBracket):
			tok := p.advance()
			index := p.expression()
			p.consume(token.KindRBracket, "expected ']' after subscript")
			e = p.prog.Exprs.NewIndex(tok, e, index)
		case p.check(token.KindDot):
			p.advance()
			nameTok := p.consume(token.KindWord, "expected member name after '.'")
			e = p.prog.Exprs.NewMember(nameTok, e, p.tokens.Word(nameTok))
		default:
			k := p.tokens.Kind(p.stream[p.pos])
			if opKind, ok := postfixUnopKindOf[k]; ok {
				tok := p.advance()
				e = p.prog.Exprs.NewUnop(tok, opKind, e)
				continue
			}
			return e
		}
	}
}

// call parses `( args )` where args is a comma-separated expression list,
// appending each argument to the call-arg arena in rank order (spec §4.3
// "Call argument parsing").
func (p *Parser) call(callee ast.Expr) ast.Expr {
	tok := p.advance() // '('

	var args []ast.Expr
	if !p.check(token.KindRParen) {
		for {
			args = append(args, p.expression())
			if !p.match(token.KindComma) {
				break
			}
		}
	}
	p.consume(token.KindRParen, "expected ')' after call arguments")

	call := p.prog.Exprs.NewCall(tok, callee, int32(len(args)))
	for i, arg := range args {
		p.prog.Exprs.AppendArg(call, arg, int32(i))
	}
	return call
}

// primary parses an integer literal, identifier (→ Symref expr), or
// parenthesized expression (spec §4.3 "primary production").
func (p *Parser) primary() ast.Expr {
	tok := p.stream[p.pos]
	switch p.tokens.Kind(tok) {
	case token.KindInteger:
		p.advance()
		return p.prog.Exprs.NewInteger(tok, p.tokens.Int(tok))
	case token.KindWord:
		p.advance()
		ref := p.prog.Symrefs.New(p.tokens.Word(tok), p.scopes.Current(), tok)
		return p.prog.Exprs.NewName(tok, ref)
	case token.KindLParen:
		p.advance()
		inner := p.expression()
		p.consume(token.KindRParen, "expected ')' after parenthesized expression")
		return inner
	default:
		cerrors.Panic(cerrors.New(cerrors.KindSyntax,
			"expected an expression, found "+p.tokens.Kind(tok).String(), p.locAt(tok)))
		panic("unreachable")
	}
}
