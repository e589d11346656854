package parser

import (
	"sourcecc/internal/ast"
	"sourcecc/internal/intern"
	"sourcecc/internal/token"
)

// statement parses one of the non-declaration statement forms (spec §4.3
// "Statement grammar").
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchKeyword(intern.ConstStrIf):
		return p.ifStmt()
	case p.matchKeyword(intern.ConstStrWhile):
		return p.whileStmt()
	case p.matchKeyword(intern.ConstStrFor):
		return p.forStmt()
	case p.matchKeyword(intern.ConstStrReturn):
		return p.returnStmt()
	case p.check(token.KindLBrace):
		return p.compoundStmt()
	default:
		return p.exprStmt()
	}
}

// ifStmt parses `if ( EXPR ) STMT`. The grammar defines no else clause (spec
// §4.3 "Statement grammar" lists only the bare if form); Stmt.Else stays
// the zero (absent) handle.
func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.KindLParen, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.KindRParen, "expected ')' after if condition")
	then := p.statement()
	return p.prog.Stmts.NewIf(cond, then, 0)
}

// whileStmt parses `while ( EXPR ) STMT`.
func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.KindLParen, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(token.KindRParen, "expected ')' after while condition")
	body := p.statement()
	return p.prog.Stmts.NewWhile(cond, body)
}

// forStmt parses `for ( STMT ; EXPR ; STMT ) STMT`.
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.KindLParen, "expected '(' after 'for'")

	var init ast.Stmt
	if !p.check(token.KindSemicolon) {
		init = p.blockItem()
	} else {
		p.advance()
	}

	var cond ast.Expr
	if !p.check(token.KindSemicolon) {
		cond = p.expression()
	}
	p.consume(token.KindSemicolon, "expected ';' after for condition")

	var post ast.Stmt
	if !p.check(token.KindRParen) {
		postExpr := p.expression()
		post = p.prog.Stmts.NewExpr(postExpr)
	}
	p.consume(token.KindRParen, "expected ')' after for clauses")

	body := p.statement()
	return p.prog.Stmts.NewFor(init, cond, post, body)
}

// returnStmt parses `return EXPR? ;`.
func (p *Parser) returnStmt() ast.Stmt {
	var value ast.Expr
	if !p.check(token.KindSemicolon) {
		value = p.expression()
	}
	p.consume(token.KindSemicolon, "expected ';' after return statement")
	return p.prog.Stmts.NewReturn(value)
}

// exprStmt parses `EXPR ;`.
func (p *Parser) exprStmt() ast.Stmt {
	e := p.expression()
	p.consume(token.KindSemicolon, "expected ';' after expression statement")
	return p.prog.Stmts.NewExpr(e)
}

// compoundStmt parses `{ STMT* }`, opening a block scope child of the
// enclosing scope for its duration (spec §4.3 "Scope stack discipline"; the
// Open Question on block-scope identity is resolved in favor of one block
// scope per compound statement, per SPEC_FULL.md).
func (p *Parser) compoundStmt() ast.Stmt {
	p.consume(token.KindLBrace, "expected '{'")

	blockScope := p.scopes.Push(ast.ScopeProc, p.prog.Scopes.Proc(p.scopes.Current()))

	var children []ast.Stmt
	for !p.check(token.KindRBrace) && !p.check(token.KindEOF) {
		children = append(children, p.blockItem())
	}
	p.consume(token.KindRBrace, "expected '}' to close compound statement")
	p.scopes.Pop()

	compound := p.prog.Stmts.NewCompound(blockScope, int32(len(children)))
	for i, child := range children {
		p.prog.Stmts.AppendChild(compound, child, int32(i))
	}
	return compound
}
