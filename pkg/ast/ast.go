// Package ast defines the tagged-variant expression and statement tree
// produced by internal/parser. Every node carries the source Position of
// its defining token; positions survive unchanged until they are attached
// to a diagnostic.
package ast

import (
	"strings"

	"github.com/cwbudde/rscript/pkg/token"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a parsed script: a flat sequence of top-level
// statements (which may include Non-goal-permitted FnDecl statements).
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.None()
	}
	return p.Statements[0].Pos()
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// --- literals -------------------------------------------------------------

type IntegerLiteral struct {
	Position token.Position
	Value    int64
}

func (l *IntegerLiteral) Pos() token.Position { return l.Position }
func (l *IntegerLiteral) String() string      { return formatInt(l.Value) }
func (*IntegerLiteral) expressionNode()       {}

type FloatLiteral struct {
	Position token.Position
	Value    float64
}

func (l *FloatLiteral) Pos() token.Position { return l.Position }
func (l *FloatLiteral) String() string      { return formatFloat(l.Value) }
func (*FloatLiteral) expressionNode()       {}

type StringLiteral struct {
	Position token.Position
	Value    string // already un-escaped
}

func (l *StringLiteral) Pos() token.Position { return l.Position }
func (l *StringLiteral) String() string      { return quote(l.Value) }
func (*StringLiteral) expressionNode()       {}

type CharLiteral struct {
	Position token.Position
	Value    rune
}

func (l *CharLiteral) Pos() token.Position { return l.Position }
func (l *CharLiteral) String() string      { return "'" + string(l.Value) + "'" }
func (*CharLiteral) expressionNode()       {}

type BoolLiteral struct {
	Position token.Position
	Value    bool
}

func (l *BoolLiteral) Pos() token.Position { return l.Position }
func (l *BoolLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}
func (*BoolLiteral) expressionNode() {}

// Identifier references a binding in scope.
type Identifier struct {
	Position token.Position
	Name     string
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) String() string      { return i.Name }
func (*Identifier) expressionNode()       {}
