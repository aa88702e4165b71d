package ast

import (
	"strings"

	"github.com/cwbudde/rscript/pkg/token"
)

// FnDecl is `fn NAME(PARAMS) BLOCK`, permitted only at top level of the
// script (§4.2); the parser rejects a nested one as WrongFnDefinition.
// Only parsed when user_functions_enabled.
type FnDecl struct {
	Position token.Position
	Name     string
	Params   []string
	Body     *BlockStmt
}

func (s *FnDecl) Pos() token.Position { return s.Position }
func (s *FnDecl) String() string {
	return "fn " + s.Name + "(" + strings.Join(s.Params, ", ") + ") " + s.Body.String()
}
func (*FnDecl) statementNode() {}
