package parser

import (
	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// parseIfStmt parses `if cond block (else (block|ifstmt))?` in statement
// position (spec.md §3 IfStmt — no produced value, unlike IfExpr).
func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.cur
	p.advance() // consume 'if'
	cond := p.parseExpression(lowest)
	then := p.parseBlockStmt()

	var elseStmt ast.Statement
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			elseStmt = p.parseIfStmt()
		} else {
			elseStmt = p.parseBlockStmt()
		}
	}
	return &ast.IfStmt{Position: tok.Pos, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.cur
	p.advance() // consume 'while'
	cond := p.parseExpression(lowest)
	p.loopDepth++
	body := p.parseBlockStmt()
	p.loopDepth--
	return &ast.WhileStmt{Position: tok.Pos, Cond: cond, Body: body}
}

func (p *Parser) parseLoopStmt() *ast.LoopStmt {
	tok := p.cur
	p.advance() // consume 'loop'
	p.loopDepth++
	body := p.parseBlockStmt()
	p.loopDepth--
	return &ast.LoopStmt{Position: tok.Pos, Body: body}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	tok := p.cur
	p.advance() // consume 'for'
	if !p.curIs(token.IDENT) {
		p.fail(perr.VariableExpected, p.cur.Pos)
	}
	varName := p.cur.Literal
	p.advance()
	p.expect(token.IN, "in for-loop")
	iterable := p.parseExpression(lowest)
	p.loopDepth++
	body := p.parseBlockStmt()
	p.loopDepth--
	return &ast.ForStmt{Position: tok.Pos, Var: varName, Iterable: iterable, Body: body}
}

// parseBreakStmt enforces spec.md §4.2's structural check: `break`
// outside a loop is LoopBreak, never reaching the evaluator.
func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	tok := p.cur
	if p.loopDepth == 0 {
		p.fail(perr.LoopBreak, tok.Pos)
	}
	p.advance()
	p.expect(token.SEMICOLON, "to end break statement")
	return &ast.BreakStmt{Position: tok.Pos}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.cur
	p.advance() // consume 'return'
	var value ast.Expression
	if !p.curIs(token.SEMICOLON) {
		value = p.parseExpression(lowest)
	}
	p.expect(token.SEMICOLON, "to end return statement")
	return &ast.ReturnStmt{Position: tok.Pos, Value: value}
}
