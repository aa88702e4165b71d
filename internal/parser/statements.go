package parser

import (
	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// parseProgram parses the whole token stream as a flat sequence of
// top-level statements (spec.md §3 "Program"); fn statements are only
// legal here (spec.md §4.2 "Function declarations ... permitted only at
// top level").
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		prog.Statements = append(prog.Statements, p.parseStatement(true))
	}
	return prog
}

// parseStatement dispatches on cur's leading keyword/token. atTopLevel
// gates `fn` (spec.md §4.2 WrongFnDefinition).
func (p *Parser) parseStatement(atTopLevel bool) ast.Statement {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetStmt(false)
	case token.CONST:
		return p.parseLetStmt(true)
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.LOOP:
		return p.parseLoopStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.FN:
		if !atTopLevel {
			p.fail(perr.WrongFnDefinition, p.cur.Pos)
		}
		return p.parseFnDecl()
	default:
		return p.parseExpressionStmt()
	}
}

// parseLetStmt parses `let NAME (= EXPR)?;` or, with isConst, `const NAME
// = EXPR;` (initializer required and must be a constant expression —
// spec.md §4.2).
func (p *Parser) parseLetStmt(isConst bool) *ast.LetStmt {
	tok := p.cur
	p.advance() // consume 'let'/'const'

	if !p.curIs(token.IDENT) {
		p.fail(perr.VariableExpected, p.cur.Pos)
	}
	name := p.cur.Literal
	p.advance()

	var value ast.Expression
	if isConst {
		p.expect(token.ASSIGN, "in constant declaration")
		value = p.parseExpression(lowest)
		if !isConstExpr(value) {
			p.fail(perr.ForbiddenConstantExpr, tok.Pos, name)
		}
	} else if p.curIs(token.ASSIGN) {
		p.advance()
		value = p.parseExpression(lowest)
	}

	p.expect(token.SEMICOLON, "to end variable declaration")
	return &ast.LetStmt{Position: tok.Pos, Name: name, Value: value, Const: isConst}
}

// parseBlockStmt parses `{ stmt* }`, introducing a nested scope at
// evaluation time (spec.md §3). Statements inside a block are never at
// top level, so a nested `fn` is rejected.
func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	tok := p.expect(token.LBRACE, "to open block")
	block := &ast.BlockStmt{Position: tok.Pos}
	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			p.fail(perr.UnexpectedEOF, p.cur.Pos)
		}
		block.Statements = append(block.Statements, p.parseStatement(false))
	}
	p.advance() // consume '}'
	return block
}

// parseExpressionStmt parses `EXPR;`. The ';' may be left off when the
// expression is the last thing in the source, so a script can end in a
// bare value expression.
func (p *Parser) parseExpressionStmt() *ast.ExpressionStmt {
	tok := p.cur
	expr := p.parseExpression(lowest)
	if !p.curIs(token.EOF) {
		p.expect(token.SEMICOLON, "to end expression statement")
	}
	return &ast.ExpressionStmt{Position: tok.Pos, Expression: expr}
}
