package ast

import "github.com/cwbudde/rscript/pkg/token"

// IfStmt is `if cond block (else (block|ifstmt))?` used in statement
// position (no produced value).
type IfStmt struct {
	Position token.Position
	Cond     Expression
	Then     *BlockStmt
	Else     Statement // *BlockStmt or *IfStmt, nil if absent
}

func (s *IfStmt) Pos() token.Position { return s.Position }
func (s *IfStmt) String() string {
	out := "if " + s.Cond.String() + " " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}
func (*IfStmt) statementNode() {}

// WhileStmt is `while cond block`.
type WhileStmt struct {
	Position token.Position
	Cond     Expression
	Body     *BlockStmt
}

func (s *WhileStmt) Pos() token.Position { return s.Position }
func (s *WhileStmt) String() string      { return "while " + s.Cond.String() + " " + s.Body.String() }
func (*WhileStmt) statementNode()        {}

// LoopStmt is `loop block`, an unconditional loop exited only via break
// or return.
type LoopStmt struct {
	Position token.Position
	Body     *BlockStmt
}

func (s *LoopStmt) Pos() token.Position { return s.Position }
func (s *LoopStmt) String() string      { return "loop " + s.Body.String() }
func (*LoopStmt) statementNode()        {}

// ForStmt is `for NAME in seq block`, iterating via the registered
// `iterator` capability on seq's runtime type.
type ForStmt struct {
	Position token.Position
	Var      string
	Iterable Expression
	Body     *BlockStmt
}

func (s *ForStmt) Pos() token.Position { return s.Position }
func (s *ForStmt) String() string {
	return "for " + s.Var + " in " + s.Iterable.String() + " " + s.Body.String()
}
func (*ForStmt) statementNode() {}

// BreakStmt unwinds to the nearest enclosing loop. The parser rejects one
// outside a loop (LoopBreak) so it never reaches the evaluator.
type BreakStmt struct {
	Position token.Position
}

func (s *BreakStmt) Pos() token.Position { return s.Position }
func (s *BreakStmt) String() string      { return "break;" }
func (*BreakStmt) statementNode()        {}

// ReturnStmt unwinds to the enclosing user-defined function, carrying an
// optional value (unit if absent).
type ReturnStmt struct {
	Position token.Position
	Value    Expression // nil for bare `return;`
}

func (s *ReturnStmt) Pos() token.Position { return s.Position }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}
func (*ReturnStmt) statementNode() {}
