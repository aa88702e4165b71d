package eval

import (
	"reflect"

	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
)

func (e *Evaluator) evalStmt(stmt ast.Statement, scope *value.Scope) (value.Dynamic, error) {
	if err := e.tick(stmt.Pos()); err != nil {
		return value.Dynamic{}, err
	}

	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return e.evalExpr(s.Expression, scope)

	case *ast.LetStmt:
		val := value.Nil()
		if s.Value != nil {
			v, err := e.evalExpr(s.Value, scope)
			if err != nil {
				return value.Dynamic{}, err
			}
			val = v.Clone()
		}
		scope.Declare(s.Name, val, s.Const)
		return value.Nil(), nil

	case *ast.BlockStmt:
		return e.evalBlock(s, scope)

	case *ast.IfStmt:
		return e.evalIfStmt(s, scope)

	case *ast.WhileStmt:
		return e.evalWhileStmt(s, scope)

	case *ast.LoopStmt:
		return e.evalLoopStmt(s, scope)

	case *ast.ForStmt:
		return e.evalForStmt(s, scope)

	case *ast.BreakStmt:
		return value.Dynamic{}, &errBreak{}

	case *ast.ReturnStmt:
		val := value.Nil()
		if s.Value != nil {
			v, err := e.evalExpr(s.Value, scope)
			if err != nil {
				return value.Dynamic{}, err
			}
			val = v
		}
		return value.Dynamic{}, &errReturn{value: val}

	case *ast.FnDecl:
		// Hoisted in Run; a nested occurrence would already have been
		// rejected by the parser as WrongFnDefinition.
		return value.Nil(), nil

	default:
		return value.Dynamic{}, rterr.NewRuntime(stmt.Pos(), "unhandled statement node")
	}
}

func (e *Evaluator) evalIfStmt(s *ast.IfStmt, scope *value.Scope) (value.Dynamic, error) {
	condVal, err := e.evalExpr(s.Cond, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	b, ok := condVal.AsBool()
	if !ok {
		return value.Dynamic{}, rterr.NewIfGuard(s.Cond.Pos(), condVal.TypeName())
	}
	if b {
		if _, err := e.evalBlock(s.Then, scope); err != nil {
			return value.Dynamic{}, err
		}
	} else if s.Else != nil {
		if _, err := e.evalStmt(s.Else, scope); err != nil {
			return value.Dynamic{}, err
		}
	}
	// IfStmt is statement position: it never produces a value (unlike
	// ast.IfExpr), matching its doc comment.
	return value.Nil(), nil
}

func (e *Evaluator) evalWhileStmt(s *ast.WhileStmt, scope *value.Scope) (value.Dynamic, error) {
	for {
		condVal, err := e.evalExpr(s.Cond, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		b, ok := condVal.AsBool()
		if !ok {
			return value.Dynamic{}, rterr.NewIfGuard(s.Cond.Pos(), condVal.TypeName())
		}
		if !b {
			break
		}
		if _, err := e.evalBlock(s.Body, scope); err != nil {
			if _, ok := err.(*errBreak); ok {
				break
			}
			return value.Dynamic{}, err
		}
	}
	return value.Nil(), nil
}

func (e *Evaluator) evalLoopStmt(s *ast.LoopStmt, scope *value.Scope) (value.Dynamic, error) {
	for {
		if _, err := e.evalBlock(s.Body, scope); err != nil {
			if _, ok := err.(*errBreak); ok {
				break
			}
			return value.Dynamic{}, err
		}
	}
	return value.Nil(), nil
}

// evalForStmt iterates seq via the registered "iterator" capability on its
// runtime type (spec.md §4.4): a fallible unary callable that turns seq
// into an *value.Array of items to bind s.Var to, one per iteration.
func (e *Evaluator) evalForStmt(s *ast.ForStmt, scope *value.Scope) (value.Dynamic, error) {
	seq, err := e.evalExpr(s.Iterable, scope)
	if err != nil {
		return value.Dynamic{}, err
	}

	entry, ok := e.Registry.Lookup("iterator", []reflect.Type{seq.Type()})
	if !ok {
		return value.Dynamic{}, rterr.NewForMismatch(s.Position, seq.TypeName())
	}
	iterVal, err := entry.Call([]*value.Dynamic{&seq}, s.Position)
	if err != nil {
		return value.Dynamic{}, err
	}
	arr, ok := iterVal.AsArray()
	if !ok {
		return value.Dynamic{}, rterr.NewForMismatch(s.Position, seq.TypeName())
	}

	result := value.Nil()
	for _, item := range arr.Elements {
		mark := scope.Mark()
		scope.Declare(s.Var, item, false)
		v, err := e.evalBlock(s.Body, scope)
		scope.Truncate(mark)
		if err != nil {
			if _, ok := err.(*errBreak); ok {
				break
			}
			return value.Dynamic{}, err
		}
		result = v
	}
	return result, nil
}
