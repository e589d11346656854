// Package parser implements recursive descent over declarations and
// statements, and Pratt precedence climbing over expressions (spec §4.3),
// building the ast.Program arenas directly rather than an intermediate
// syntax tree: every production allocates its entity as soon as it has
// enough information, the same discipline the source grammar assumes for
// the dense-linking invariant to hold.
package parser

import (
	"sourcecc/internal/ast"
	cerrors "sourcecc/internal/errors"
	"sourcecc/internal/intern"
	"sourcecc/internal/source"
	"sourcecc/internal/symtab"
	"sourcecc/internal/token"
)

// Parser walks a single token stream, already fully scanned by package
// lexer, maintaining one token of lookahead (spec §4.2) via pos.
type Parser struct {
	files  *source.Files
	file   source.File
	strs   *intern.Table
	kw     *intern.Keywords
	tokens *token.Tokens
	stream []token.Token
	pos    int

	prog   *ast.Program
	scopes *symtab.Stack
}

// New creates a Parser over an already-scanned token stream and registers
// the language's builtin base types in the program's root scope before any
// declaration is parsed.
func New(files *source.Files, file source.File, strs *intern.Table, kw *intern.Keywords, tokens *token.Tokens, stream []token.Token, prog *ast.Program) *Parser {
	p := &Parser{
		files:  files,
		file:   file,
		strs:   strs,
		kw:     kw,
		tokens: tokens,
		stream: stream,
		prog:   prog,
		scopes: symtab.New(prog),
	}
	registerBuiltins(prog, strs)
	return p
}

// builtinBase names the base types available without an explicit
// declaration (spec §3 "base: (name, size_in_bytes)"). Source evidence for
// the exact set is absent from original_source/api.h (only TypeKind is
// listed, not a concrete base-type table), so this is a minimal, named set
// sufficient to type data/array/proc declarations in the example programs.
var builtinBase = []struct {
	name string
	size int
}{
	{"int", 8},
	{"bool", 1},
	{"byte", 1},
}

func registerBuiltins(prog *ast.Program, strs *intern.Table) {
	root := prog.Scopes.Root()
	for _, b := range builtinBase {
		name := strs.InternString(b.name)
		tp := prog.Types.NewBase(name, b.size)
		symtab.Define(prog, strs, root, ast.NewTypeSymbol(name, root, tp), cerrors.Location{})
	}
}

// Parse runs the top-level declaration loop until EOF, returning the
// populated Program. Panics raised by any production (via cerrors.Panic)
// propagate to the caller; package compiler is responsible for recovering
// them into a returned error.
func (p *Parser) Parse() *ast.Program {
	for !p.check(token.KindEOF) {
		p.topLevelDecl()
	}
	return p.prog
}

// topLevelDecl dispatches the four declaration forms the grammar allows at
// global scope (spec §4.3 "Declaration grammar").
func (p *Parser) topLevelDecl() {
	switch {
	case p.matchKeyword(intern.ConstStrData):
		p.dataDecl()
	case p.matchKeyword(intern.ConstStrArray):
		p.arrayDecl()
	case p.matchKeyword(intern.ConstStrProc):
		p.procDecl()
	case p.matchKeyword(intern.ConstStrEntity):
		p.entityDecl()
	default:
		cerrors.Panic(cerrors.New(cerrors.KindSyntax, "expected a declaration", p.locHere()))
	}
}

// blockItem dispatches the statement grammar inside a compound statement:
// data/array declarations plus the ordinary statement forms (spec §4.3
// "Statement grammar" — proc and entity are declaration-only, not valid
// inside a block).
func (p *Parser) blockItem() ast.Stmt {
	switch {
	case p.matchKeyword(intern.ConstStrData):
		return p.dataDecl()
	case p.matchKeyword(intern.ConstStrArray):
		return p.arrayDecl()
	default:
		return p.statement()
	}
}

// dataDecl parses `data NAME TYPE;`.
func (p *Parser) dataDecl() ast.Stmt {
	nameTok := p.consume(token.KindWord, "expected data name")
	name := p.tokens.Word(nameTok)
	tp := p.typeExpr()
	p.consume(token.KindSemicolon, "expected ';' after data declaration")

	scope := p.scopes.Current()
	d := p.prog.Datas.New(name, tp, scope, 0)
	symtab.Define(p.prog, p.strs, scope, ast.NewDataSymbol(name, scope, d), p.locAt(nameTok))
	return p.prog.Stmts.NewData(d)
}

// arrayDecl parses `array NAME [ IDX_TYPE ] VALUE_TYPE;`.
func (p *Parser) arrayDecl() ast.Stmt {
	nameTok := p.consume(token.KindWord, "expected array name")
	name := p.tokens.Word(nameTok)

	p.consume(token.KindLBracket, "expected '[' after array name")
	idxType := p.typeExpr()
	p.consume(token.KindRBracket, "expected ']' after array index type")
	valType := p.typeExpr()
	p.consume(token.KindSemicolon, "expected ';' after array declaration")

	scope := p.scopes.Current()
	arrType := p.prog.Types.NewArray(idxType, valType)
	a := p.prog.Arrays.New(name, arrType, scope)
	symtab.Define(p.prog, p.strs, scope, ast.NewArraySymbol(name, scope, a), p.locAt(nameTok))
	return p.prog.Stmts.NewArray(a)
}

// entityDecl parses `entity NAME TYPE;`, valid only at global scope (spec
// §4.3 "at global scope only").
func (p *Parser) entityDecl() {
	if !p.prog.Scopes.IsRoot(p.scopes.Current()) {
		cerrors.Panic(cerrors.New(cerrors.KindSyntax, "entity declaration outside global scope", p.locHere()))
	}
	nameTok := p.consume(token.KindWord, "expected entity name")
	name := p.tokens.Word(nameTok)
	inner := p.typeExpr()
	p.consume(token.KindSemicolon, "expected ';' after entity declaration")

	scope := p.scopes.Current()
	entType := p.prog.Types.NewEntity(name, inner)
	symtab.Define(p.prog, p.strs, scope, ast.NewTypeSymbol(name, scope, entType), p.locAt(nameTok))
}

// procDecl parses `proc NAME ( (NAME TYPE)* ) RET_TYPE { STMTS }`.
func (p *Parser) procDecl() {
	nameTok := p.consume(token.KindWord, "expected proc name")
	name := p.tokens.Word(nameTok)
	declScope := p.scopes.Current()

	p.consume(token.KindLParen, "expected '(' after proc name")

	type paramSpec struct {
		nameTok token.Token
		name    intern.String
		tp      ast.Type
	}
	var params []paramSpec
	if !p.check(token.KindRParen) {
		for {
			pn := p.consume(token.KindWord, "expected parameter name")
			pt := p.typeExpr()
			params = append(params, paramSpec{nameTok: pn, name: p.tokens.Word(pn), tp: pt})
			if !p.match(token.KindComma) {
				break
			}
		}
	}
	p.consume(token.KindRParen, "expected ')' after parameter list")

	retType := p.typeExpr()

	procType := p.prog.Types.NewProc(retType, int32(len(params)))
	for i, pm := range params {
		p.prog.Types.AppendParamType(procType, pm.tp, int32(i))
	}

	proc := p.prog.Procs.New(name, procType, declScope, int32(len(params)))
	symtab.Define(p.prog, p.strs, declScope, ast.NewProcSymbol(name, declScope, proc), p.locAt(nameTok))

	bodyScope := p.scopes.Push(ast.ScopeProc, proc)
	p.prog.Procs.BindBodyScope(proc, bodyScope)

	var firstParam ast.Param
	for i, pm := range params {
		param := p.prog.Params.New(pm.name, pm.tp, proc, int32(i))
		if i == 0 {
			firstParam = param
		}
		symtab.Define(p.prog, p.strs, bodyScope, ast.NewParamSymbol(pm.name, bodyScope, param), p.locAt(pm.nameTok))
	}
	if len(params) > 0 {
		p.prog.Procs.BindFirstParam(proc, firstParam)
	}

	body := p.compoundStmt()
	p.prog.Procs.BindBody(proc, body)
	p.scopes.Pop()
}

// typeExpr parses a TYPE position (spec §4.5 "a type expression like ^T
// produces a reference type whose Symref points at T"). A leading '^'
// defers resolution through a Symref, the only form that may name a type
// not yet declared (spec §8 S2 "forward type reference"). A bare name has
// no such forward-reference allowance: it resolves immediately against the
// scopes already open, matching S1 where `data x int;` yields a Symbol
// whose type is the base int type directly, not a reference wrapper.
func (p *Parser) typeExpr() ast.Type {
	if p.match(token.KindCaret) {
		nameTok := p.consume(token.KindWord, "expected type name after '^'")
		ref := p.prog.Symrefs.New(p.tokens.Word(nameTok), p.scopes.Current(), nameTok)
		return p.prog.Types.NewReference(ref)
	}
	nameTok := p.consume(token.KindWord, "expected type name")
	name := p.tokens.Word(nameTok)
	sym, ok := symtab.Lookup(p.prog, p.scopes.Current(), name)
	if !ok {
		cerrors.Panic(cerrors.New(cerrors.KindUnresolvedSymbol,
			"undefined symbol '"+p.strs.String(name)+"'", p.locAt(nameTok)))
	}
	if p.prog.Symbols.Kind(sym) != ast.SymbolType {
		cerrors.Panic(cerrors.New(cerrors.KindMismatch,
			"'"+p.strs.String(name)+"' does not name a type", p.locAt(nameTok)))
	}
	return p.prog.Symbols.Type(sym)
}

// --- token stream helpers ---

func (p *Parser) check(k token.Kind) bool {
	return p.tokens.Kind(p.stream[p.pos]) == k
}

func (p *Parser) checkKeyword(kind intern.ConstStrKind) bool {
	cur := p.stream[p.pos]
	return p.tokens.Kind(cur) == token.KindWord && p.tokens.Word(cur) == p.kw.Handle(kind)
}

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) matchKeyword(kind intern.ConstStrKind) bool {
	if p.checkKeyword(kind) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) advance() token.Token {
	tok := p.stream[p.pos]
	if p.tokens.Kind(tok) != token.KindEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) consume(k token.Kind, message string) token.Token {
	if !p.check(k) {
		found := p.tokens.Kind(p.stream[p.pos])
		cerrors.Panic(cerrors.New(cerrors.KindSyntax,
			message+": expected "+k.String()+", found "+found.String(), p.locHere()))
	}
	return p.advance()
}

func (p *Parser) locHere() cerrors.Location {
	return p.locAt(p.stream[p.pos])
}

func (p *Parser) locAt(tok token.Token) cerrors.Location {
	offset := p.tokens.Offset(tok)
	line, col := p.files.LineCol(p.file, offset)
	return cerrors.Location{File: p.files.PathString(p.file), Offset: offset, Line: line, Column: col}
}
