package eval

import (
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// evalBinary desugars every binary operator except && and || into a
// registry lookup keyed by the operator's lexeme (spec.md §9). && and ||
// are special-cased here, not in the registry, because they must
// short-circuit: the right operand is only evaluated when the left one
// didn't already decide the result.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr, scope *value.Scope) (value.Dynamic, error) {
	switch n.Op {
	case token.AND:
		l, err := e.evalExpr(n.Left, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		lb, ok := l.AsBool()
		if !ok {
			return value.Dynamic{}, rterr.NewBooleanArgMismatch(n.Left.Pos(), l.TypeName())
		}
		if !lb {
			return value.Bool(false), nil
		}
		r, err := e.evalExpr(n.Right, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		rb, ok := r.AsBool()
		if !ok {
			return value.Dynamic{}, rterr.NewBooleanArgMismatch(n.Right.Pos(), r.TypeName())
		}
		return value.Bool(rb), nil

	case token.OR:
		l, err := e.evalExpr(n.Left, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		lb, ok := l.AsBool()
		if !ok {
			return value.Dynamic{}, rterr.NewBooleanArgMismatch(n.Left.Pos(), l.TypeName())
		}
		if lb {
			return value.Bool(true), nil
		}
		r, err := e.evalExpr(n.Right, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		rb, ok := r.AsBool()
		if !ok {
			return value.Dynamic{}, rterr.NewBooleanArgMismatch(n.Right.Pos(), r.TypeName())
		}
		return value.Bool(rb), nil
	}

	l, err := e.evalExpr(n.Left, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	r, err := e.evalExpr(n.Right, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	return e.dispatchOperator(n.Op.String(), []value.Dynamic{l, r}, n.Position)
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr, scope *value.Scope) (value.Dynamic, error) {
	v, err := e.evalExpr(n.Operand, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	return e.dispatchOperator(n.Op.String(), []value.Dynamic{v}, n.Position)
}
