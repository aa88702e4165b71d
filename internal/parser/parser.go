// Package parser implements the Pratt-style expression parser and
// recursive-descent statement parser (spec.md §4.2). It consumes
// internal/lexer's token stream and produces a pkg/ast tree, never
// recovering from an error: the first structured perr.ParseError aborts
// parsing and is returned (spec.md §7, §8 "Parse determinism").
//
// It is a Pratt parser built around prefixParseFns/infixParseFns maps
// keyed by token type and a precedence table, with a plain mutable
// cur/peek cursor rather than an immutable token cursor — this grammar
// has no panic-mode error recovery to backtrack for, so the lighter
// cursor is enough.
package parser

import (
	"github.com/cwbudde/rscript/internal/lexer"
	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// Options gates the optional syntax forms spec.md §4.2 "Optional syntax
// gates" and §6 describes as build-time configuration.
type Options struct {
	Arrays        bool
	Objects       bool
	UserFunctions bool
	IntegerWidth  int // 32 or 64; defaults to 64 if anything else
}

// Precedence levels, lowest to highest (spec.md §4.2 operator table).
const (
	_ int = iota
	lowest
	assignment // right-assoc
	logicOr
	logicAnd
	equality
	comparison
	bitOr
	bitXor
	bitAnd
	shift
	additive
	multiplicative
	unary
	postfix // call, index, member
)

var precedences = map[token.Type]int{
	token.ASSIGN:         assignment,
	token.PLUS_ASSIGN:    assignment,
	token.MINUS_ASSIGN:   assignment,
	token.STAR_ASSIGN:    assignment,
	token.SLASH_ASSIGN:   assignment,
	token.PERCENT_ASSIGN: assignment,
	token.SHL_ASSIGN:     assignment,
	token.SHR_ASSIGN:     assignment,
	token.BAND_ASSIGN:    assignment,
	token.BOR_ASSIGN:     assignment,
	token.BXOR_ASSIGN:    assignment,

	token.OR: logicOr,

	token.AND: logicAnd,

	token.EQ: equality,
	token.NE: equality,

	token.LT: comparison,
	token.GT: comparison,
	token.LE: comparison,
	token.GE: comparison,

	token.BOR: bitOr,

	token.BXOR: bitXor,

	token.BAND: bitAnd,

	token.SHL: shift,
	token.SHR: shift,

	token.PLUS:  additive,
	token.MINUS: additive,

	token.STAR:    multiplicative,
	token.SLASH:   multiplicative,
	token.PERCENT: multiplicative,

	token.LBRACK: postfix,
	token.DOT:    postfix,
}

func getPrecedence(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return lowest
}

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser holds the mutable cur/peek lookahead over a lexer's token
// stream plus the structural state needed for §4.2's parse-time checks:
// loopDepth for `break` validation. Fn-declaration placement is checked
// through parseStatement's atTopLevel parameter, not a field.
type Parser struct {
	lex *lexer.Lexer
	opts Options

	cur, peek token.Token

	loopDepth int

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// parseAbort is the internal panic payload used to unwind to Parse on the
// first structured error, mirroring the bailout idiom go/parser itself
// uses for syntax errors — a single-error grammar doesn't need per-call
// error returns threaded through every recursive descent method.
type parseAbort struct {
	err *perr.ParseError
}

// Parse parses source into a Program under opts, or returns the first
// structured ParseError encountered (spec.md §7: no multi-error
// recovery).
func Parse(source string, opts Options) (prog *ast.Program, outErr *perr.ParseError) {
	width := opts.IntegerWidth
	if width != 32 && width != 64 {
		width = 64
	}
	p := &Parser{
		lex:  lexer.New(source, width),
		opts: opts,
	}
	p.registerFns()

	defer func() {
		if r := recover(); r != nil {
			if ab, ok := r.(parseAbort); ok {
				prog = nil
				outErr = ab.err
				return
			}
			panic(r)
		}
	}()

	p.cur = p.readToken()
	p.peek = p.readToken()
	prog = p.parseProgram()
	return prog, nil
}

func (p *Parser) registerFns() {
	p.prefixFns = map[token.Type]prefixParseFn{
		token.INT:    p.parseIntegerLiteral,
		token.FLOAT:  p.parseFloatLiteral,
		token.STRING: p.parseStringLiteral,
		token.CHAR:   p.parseCharLiteral,
		token.TRUE:   p.parseBoolLiteral,
		token.FALSE:  p.parseBoolLiteral,
		token.IDENT:  p.parseIdentifierOrCall,
		token.LPAREN: p.parseGroupExpr,
		token.LBRACK: p.parseArrayLiteral,
		token.HASH:   p.parseMapLiteral,
		token.IF:     p.parseIfExpr,
		token.MINUS:  p.parseUnaryExpr,
		token.PLUS:   p.parseUnaryExpr,
		token.NOT:    p.parseUnaryExpr,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseBinaryExpr,
		token.MINUS:    p.parseBinaryExpr,
		token.STAR:     p.parseBinaryExpr,
		token.SLASH:    p.parseBinaryExpr,
		token.PERCENT:  p.parseBinaryExpr,
		token.EQ:       p.parseBinaryExpr,
		token.NE:       p.parseBinaryExpr,
		token.LT:       p.parseBinaryExpr,
		token.GT:       p.parseBinaryExpr,
		token.LE:       p.parseBinaryExpr,
		token.GE:       p.parseBinaryExpr,
		token.AND:      p.parseBinaryExpr,
		token.OR:       p.parseBinaryExpr,
		token.BAND:     p.parseBinaryExpr,
		token.BOR:      p.parseBinaryExpr,
		token.BXOR:     p.parseBinaryExpr,
		token.SHL:      p.parseBinaryExpr,
		token.SHR:      p.parseBinaryExpr,
		token.LBRACK:   p.parseIndexExpr,
		token.DOT:      p.parseMemberExpr,
		token.ASSIGN:         p.parseAssignExpr,
		token.PLUS_ASSIGN:    p.parseAssignExpr,
		token.MINUS_ASSIGN:   p.parseAssignExpr,
		token.STAR_ASSIGN:    p.parseAssignExpr,
		token.SLASH_ASSIGN:   p.parseAssignExpr,
		token.PERCENT_ASSIGN: p.parseAssignExpr,
		token.SHL_ASSIGN:     p.parseAssignExpr,
		token.SHR_ASSIGN:     p.parseAssignExpr,
		token.BAND_ASSIGN:    p.parseAssignExpr,
		token.BOR_ASSIGN:     p.parseAssignExpr,
		token.BXOR_ASSIGN:    p.parseAssignExpr,
	}
}

// readToken pulls the next token from the lexer, lifting a lexical
// failure into a BadInput ParseError at the lexer's current position
// (spec.md §7: "Lex errors are lifted into parse errors with
// BadInput(message)").
func (p *Parser) readToken() token.Token {
	tok, err := p.lex.Next()
	if err != nil {
		p.fail(perr.BadInput, p.lex.Pos(), err.Error())
	}
	return tok
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.readToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect advances past cur if it matches t, otherwise aborts with
// MissingToken(expected, context).
func (p *Parser) expect(t token.Type, context string) token.Token {
	if !p.curIs(t) {
		p.fail(perr.MissingToken, p.cur.Pos, t.String(), context)
	}
	tok := p.cur
	p.advance()
	return tok
}

// fail aborts parsing with a structured ParseError at pos.
func (p *Parser) fail(kind perr.ParseErrorKind, pos token.Position, args ...string) {
	panic(parseAbort{perr.New(kind, pos, args...)})
}
