package parser

import (
	"strconv"

	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// parseExpression is the Pratt precedence-climbing core (spec.md §4.2):
// look up cur's prefix handler, then repeatedly fold in infix operators
// whose precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.fail(perr.ExprExpected, p.cur.Pos, "an")
	}
	left := prefix()

	for precedence < getPrecedence(p.cur.Type) {
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			break
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseUint(tok.Literal, 10, 64)
	if err != nil {
		p.fail(perr.BadInput, tok.Pos, "Invalid number: '"+tok.Literal+"'")
	}
	p.advance()
	return &ast.IntegerLiteral{Position: tok.Pos, Value: int64(v)}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.fail(perr.BadInput, tok.Pos, "Invalid number: '"+tok.Literal+"'")
	}
	p.advance()
	return &ast.FloatLiteral{Position: tok.Pos, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.StringLiteral{Position: tok.Pos, Value: tok.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	runes := []rune(tok.Literal)
	var r rune
	if len(runes) > 0 {
		r = runes[0]
	}
	return &ast.CharLiteral{Position: tok.Pos, Value: r}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.BoolLiteral{Position: tok.Pos, Value: tok.Type == token.TRUE}
}

// parseIdentifierOrCall distinguishes a bare variable reference from a
// named call: spec.md §3 models CallExpr as "name + argument
// expressions", never an arbitrary callee, so the only place a call can
// start is an identifier immediately followed by '('.
func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.cur
	name := tok.Literal
	p.advance()

	if !p.curIs(token.LPAREN) {
		return &ast.Identifier{Position: tok.Pos, Name: name}
	}
	p.advance() // consume '('

	var args []ast.Expression
	for !p.curIs(token.RPAREN) {
		if len(args) > 0 {
			p.expect(token.COMMA, "between call arguments")
		}
		if p.curIs(token.RPAREN) || p.curIs(token.COMMA) {
			p.fail(perr.MalformedCallExpr, p.cur.Pos, "Invalid expression in function call arguments")
		}
		args = append(args, p.parseExpression(lowest))
	}
	p.expect(token.RPAREN, "to close function call arguments")
	return &ast.CallExpr{Position: tok.Pos, Name: name, Args: args}
}

func (p *Parser) parseGroupExpr() ast.Expression {
	tok := p.cur
	p.advance() // consume '('
	if p.curIs(token.RPAREN) {
		p.fail(perr.ExprExpected, p.cur.Pos, "a grouped")
	}
	inner := p.parseExpression(lowest)
	p.expect(token.RPAREN, "to close grouped expression")
	return &ast.GroupExpr{Position: tok.Pos, Inner: inner}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.cur
	if !p.opts.Arrays {
		p.fail(perr.BadInput, tok.Pos, "array literals are disabled")
	}
	p.advance() // consume '['

	var elems []ast.Expression
	for !p.curIs(token.RBRACK) {
		if len(elems) > 0 {
			p.expect(token.COMMA, "between array elements")
			if p.curIs(token.RBRACK) {
				break // trailing comma
			}
		}
		elems = append(elems, p.parseExpression(lowest))
	}
	p.expect(token.RBRACK, "to close array literal")
	return &ast.ArrayLiteral{Position: tok.Pos, Elements: elems}
}

func (p *Parser) parseMapLiteral() ast.Expression {
	tok := p.cur
	if !p.opts.Objects {
		p.fail(perr.BadInput, tok.Pos, "map literals are disabled")
	}
	p.advance() // consume '#'
	p.expect(token.LBRACE, "to open map literal")

	seen := make(map[string]bool)
	var pairs []ast.MapPair
	for !p.curIs(token.RBRACE) {
		if len(pairs) > 0 {
			p.expect(token.COMMA, "between map entries")
			if p.curIs(token.RBRACE) {
				break // trailing comma
			}
		}
		if !p.curIs(token.IDENT) {
			p.fail(perr.PropertyExpected, p.cur.Pos)
		}
		name := p.cur.Literal
		if seen[name] {
			p.fail(perr.DuplicatedProperty, p.cur.Pos, name)
		}
		seen[name] = true
		p.advance()
		p.expect(token.COLON, "after map property name")
		val := p.parseExpression(lowest)
		pairs = append(pairs, ast.MapPair{Name: name, Value: val})
	}
	p.expect(token.RBRACE, "to close map literal")
	return &ast.MapLiteral{Position: tok.Pos, Pairs: pairs}
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	tok := p.cur
	p.advance()
	operand := p.parseExpression(unary)
	return &ast.UnaryExpr{Position: tok.Pos, Op: tok.Type, Operand: operand}
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.cur
	prec := getPrecedence(tok.Type)
	p.advance()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Position: tok.Pos, Op: tok.Type, Left: left, Right: right}
}

// parseIndexExpr handles the postfix `target[index]` form (spec.md §3);
// only parsed when arrays_enabled.
func (p *Parser) parseIndexExpr(target ast.Expression) ast.Expression {
	tok := p.cur
	if !p.opts.Arrays {
		p.fail(perr.BadInput, tok.Pos, "indexing is disabled")
	}
	p.advance() // consume '['
	if p.curIs(token.RBRACK) {
		p.fail(perr.MalformedIndexExpr, tok.Pos, "Invalid index in indexing expression")
	}
	idx := p.parseExpression(lowest)
	p.expect(token.RBRACK, "to close index expression")
	return &ast.IndexExpr{Position: tok.Pos, Target: target, Index: idx}
}

// parseMemberExpr handles the postfix `target.property` form (spec.md
// §3); only parsed when objects_enabled.
func (p *Parser) parseMemberExpr(target ast.Expression) ast.Expression {
	tok := p.cur
	if !p.opts.Objects {
		p.fail(perr.BadInput, tok.Pos, "member access is disabled")
	}
	p.advance() // consume '.'
	if !p.curIs(token.IDENT) {
		p.fail(perr.PropertyExpected, p.cur.Pos)
	}
	prop := p.cur.Literal
	p.advance()
	return &ast.MemberExpr{Position: tok.Pos, Target: target, Property: prop}
}

// parseAssignExpr validates left is a proper lvalue chain (spec.md §4.2
// "Assignment validation") and, for compound forms, records the base
// binary operator the evaluator desugars `x OP= y` through. The RHS is
// parsed at assignment-1 so chained assignment is right-associative.
func (p *Parser) parseAssignExpr(left ast.Expression) ast.Expression {
	tok := p.cur
	if !isLvalueChain(left) {
		p.fail(perr.AssignmentToInvalidLHS, left.Pos())
	}
	compoundOp := token.ILLEGAL
	if base, ok := token.BaseOp(tok.Type); ok {
		compoundOp = base
	}
	p.advance()
	value := p.parseExpression(assignment - 1)
	return &ast.AssignExpr{Position: tok.Pos, Target: left, CompoundOp: compoundOp, Value: value}
}

// isLvalueChain reports whether expr has the shape IDENT(.PROP|[EXPR])*
// spec.md §4.2 requires of an assignment target; anything else is
// AssignmentToInvalidLHS.
func isLvalueChain(expr ast.Expression) bool {
	switch n := expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.IndexExpr:
		return isLvalueChain(n.Target)
	case *ast.MemberExpr:
		return isLvalueChain(n.Target)
	default:
		return false
	}
}

// parseIfExpr parses `if` in expression position (spec.md §3: "if used as
// expression"), producing an *ast.IfExpr whose value is whichever branch
// ran.
func (p *Parser) parseIfExpr() ast.Expression {
	tok := p.cur
	p.advance() // consume 'if'
	cond := p.parseExpression(lowest)
	then := p.parseBlockStmt()

	var elseNode ast.Node
	if p.curIs(token.ELSE) {
		p.advance()
		if p.curIs(token.IF) {
			elseNode = p.parseIfExpr()
		} else {
			elseNode = p.parseBlockStmt()
		}
	}
	return &ast.IfExpr{Position: tok.Pos, Cond: cond, Then: then, Else: elseNode}
}

// isConstExpr reports whether expr is a literal or a literal-only
// aggregate, spec.md §4.2's requirement for a `const` initializer.
func isConstExpr(expr ast.Expression) bool {
	switch n := expr.(type) {
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.CharLiteral, *ast.BoolLiteral:
		return true
	case *ast.UnaryExpr:
		return (n.Op == token.MINUS || n.Op == token.PLUS) && isConstExpr(n.Operand)
	case *ast.GroupExpr:
		return isConstExpr(n.Inner)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			if !isConstExpr(el) {
				return false
			}
		}
		return true
	case *ast.MapLiteral:
		for _, pair := range n.Pairs {
			if !isConstExpr(pair.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
