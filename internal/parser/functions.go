package parser

import (
	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// parseFnDecl parses `fn NAME(PARAMS) BLOCK`, already verified to be at
// top level by the caller (spec.md §4.2). Only reached when
// user_functions_enabled; otherwise BadInput.
func (p *Parser) parseFnDecl() *ast.FnDecl {
	tok := p.cur
	if !p.opts.UserFunctions {
		p.fail(perr.BadInput, tok.Pos, "function declarations are disabled")
	}
	p.advance() // consume 'fn'

	if !p.curIs(token.IDENT) {
		p.fail(perr.FnMissingName, tok.Pos)
	}
	name := p.cur.Literal
	p.advance()

	if !p.curIs(token.LPAREN) {
		p.fail(perr.FnMissingParams, tok.Pos, name)
	}
	p.advance() // consume '('

	seen := make(map[string]bool)
	var params []string
	for !p.curIs(token.RPAREN) {
		if len(params) > 0 {
			p.expect(token.COMMA, "between function parameters")
		}
		if !p.curIs(token.IDENT) {
			p.fail(perr.VariableExpected, p.cur.Pos)
		}
		param := p.cur.Literal
		if seen[param] {
			p.fail(perr.FnDuplicatedParam, tok.Pos, name, param)
		}
		seen[param] = true
		params = append(params, param)
		p.advance()
	}
	p.advance() // consume ')'

	if !p.curIs(token.LBRACE) {
		p.fail(perr.FnMissingBody, tok.Pos, name)
	}
	body := p.parseBlockStmt()

	return &ast.FnDecl{Position: tok.Pos, Name: name, Params: params, Body: body}
}
