package ast

import (
	"strings"

	"github.com/cwbudde/rscript/pkg/token"
)

// UnaryExpr is a prefixed unary operator, e.g. -x, !flag.
type UnaryExpr struct {
	Position token.Position
	Op       token.Type
	Operand  Expression
}

func (e *UnaryExpr) Pos() token.Position { return e.Position }
func (e *UnaryExpr) String() string      { return "(" + e.Op.String() + e.Operand.String() + ")" }
func (*UnaryExpr) expressionNode()       {}

// BinaryExpr is an infix operator application. Desugared at evaluation
// time into a registry call keyed by (Op.String(), operand types) — the
// evaluator itself has no arithmetic built in.
type BinaryExpr struct {
	Position token.Position
	Op       token.Type
	Left     Expression
	Right    Expression
}

func (e *BinaryExpr) Pos() token.Position { return e.Position }
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}
func (*BinaryExpr) expressionNode() {}

// AssignExpr is `target = value` or a compound form (target OP= value,
// represented with CompoundOp set to the base binary operator). Target is
// restricted by the parser to an lvalue chain (Identifier, IndexExpr, or
// MemberExpr rooted at an Identifier).
type AssignExpr struct {
	Position   token.Position
	Target     Expression
	CompoundOp token.Type // zero value (token.ILLEGAL) for plain `=`
	Value      Expression
}

func (e *AssignExpr) Pos() token.Position { return e.Position }
func (e *AssignExpr) String() string {
	op := "="
	if e.CompoundOp != token.ILLEGAL {
		op = e.CompoundOp.String() + "="
	}
	return "(" + e.Target.String() + " " + op + " " + e.Value.String() + ")"
}
func (*AssignExpr) expressionNode() {}

// CallExpr invokes a named function with positional arguments.
type CallExpr struct {
	Position token.Position
	Name     string
	Args     []Expression
}

func (e *CallExpr) Pos() token.Position { return e.Position }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (*CallExpr) expressionNode() {}

// ArrayLiteral is `[e1, e2, ...]`. Only parsed when arrays_enabled.
type ArrayLiteral struct {
	Position  token.Position
	Elements  []Expression
}

func (e *ArrayLiteral) Pos() token.Position { return e.Position }
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (*ArrayLiteral) expressionNode() {}

// MapPair is one `name: expr` entry of a MapLiteral; order is preserved.
type MapPair struct {
	Name  string
	Value Expression
}

// MapLiteral is `#{name: expr, ...}`. Only parsed when objects_enabled.
// Property names are verified unique by the parser (§3 invariant).
type MapLiteral struct {
	Position token.Position
	Pairs    []MapPair
}

func (e *MapLiteral) Pos() token.Position { return e.Position }
func (e *MapLiteral) String() string {
	parts := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		parts[i] = p.Name + ": " + p.Value.String()
	}
	return "#{" + strings.Join(parts, ", ") + "}"
}
func (*MapLiteral) expressionNode() {}

// IndexExpr is `target[index]`. Only parsed when arrays_enabled.
type IndexExpr struct {
	Position token.Position
	Target   Expression
	Index    Expression
}

func (e *IndexExpr) Pos() token.Position { return e.Position }
func (e *IndexExpr) String() string      { return e.Target.String() + "[" + e.Index.String() + "]" }
func (*IndexExpr) expressionNode()       {}

// MemberExpr is `target.property`. Only parsed when objects_enabled.
type MemberExpr struct {
	Position token.Position
	Target   Expression
	Property string
}

func (e *MemberExpr) Pos() token.Position { return e.Position }
func (e *MemberExpr) String() string      { return e.Target.String() + "." + e.Property }
func (*MemberExpr) expressionNode()       {}

// GroupExpr is a parenthesized expression, kept as its own node so
// pretty-printing round-trips the source grouping.
type GroupExpr struct {
	Position token.Position
	Inner    Expression
}

func (e *GroupExpr) Pos() token.Position { return e.Position }

// String adds no parentheses of its own around a binary, unary or
// assignment expression, which already print enclosed in parentheses.
func (e *GroupExpr) String() string {
	switch e.Inner.(type) {
	case *BinaryExpr, *UnaryExpr, *AssignExpr:
		return e.Inner.String()
	}
	return "(" + e.Inner.String() + ")"
}
func (*GroupExpr) expressionNode()       {}

// IfExpr is `if cond block else (block|ifexpr)` used in expression
// position; its value is the value of whichever branch ran (unit if no
// else and the condition is false).
type IfExpr struct {
	Position  token.Position
	Cond      Expression
	Then      *BlockStmt
	Else      Node // *BlockStmt or *IfExpr, nil if absent
}

func (e *IfExpr) Pos() token.Position { return e.Position }
func (e *IfExpr) String() string {
	s := "if " + e.Cond.String() + " " + e.Then.String()
	if e.Else != nil {
		s += " else " + e.Else.String()
	}
	return s
}
func (*IfExpr) expressionNode() {}
