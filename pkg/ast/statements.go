package ast

import (
	"strings"

	"github.com/cwbudde/rscript/pkg/token"
)

// ExpressionStmt wraps an expression evaluated for its value/side-effects.
type ExpressionStmt struct {
	Position   token.Position
	Expression Expression
}

func (s *ExpressionStmt) Pos() token.Position { return s.Position }
func (s *ExpressionStmt) String() string      { return s.Expression.String() + ";" }
func (*ExpressionStmt) statementNode()        {}

// LetStmt is `let NAME (= EXPR)?;` or, with Const set, `const NAME = EXPR;`.
// Const additionally pins the binding (§3 Scope invariant); the parser
// requires a constant-expression initializer for const and rejects
// anything else as ForbiddenConstantExpr.
type LetStmt struct {
	Position token.Position
	Name     string
	Value    Expression // nil for `let NAME;` with no initializer
	Const    bool
}

func (s *LetStmt) Pos() token.Position { return s.Position }
func (s *LetStmt) String() string {
	kw := "let"
	if s.Const {
		kw = "const"
	}
	if s.Value == nil {
		return kw + " " + s.Name + ";"
	}
	return kw + " " + s.Name + " = " + s.Value.String() + ";"
}
func (*LetStmt) statementNode() {}

// BlockStmt introduces a nested scope; its statements run with a fresh
// mark on the evaluator's scope stack that is truncated on exit.
type BlockStmt struct {
	Position   token.Position
	Statements []Statement
}

func (s *BlockStmt) Pos() token.Position { return s.Position }
func (s *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, st := range s.Statements {
		sb.WriteString(st.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (*BlockStmt) statementNode() {}
