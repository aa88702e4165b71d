package eval

import (
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// evalAssign resolves target's lvalue chain and writes value into it.
// Const-protection is checked before value is evaluated at all (spec.md
// §7: "Const-protection is enforced before evaluating the RHS").
func (e *Evaluator) evalAssign(n *ast.AssignExpr, scope *value.Scope) (value.Dynamic, error) {
	slot, err := e.resolveLvalue(n.Target, scope)
	if err != nil {
		return value.Dynamic{}, err
	}

	if n.CompoundOp != token.ILLEGAL {
		rhs, err := e.evalExpr(n.Value, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		result, err := e.dispatchOperator(n.CompoundOp.String(), []value.Dynamic{*slot, rhs}, n.Position)
		if err != nil {
			return value.Dynamic{}, err
		}
		*slot = result
		return result, nil
	}

	rhs, err := e.evalExpr(n.Value, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	*slot = rhs.Clone()
	return *slot, nil
}

// rootName walks Target/target chains down to the Identifier the chain is
// rooted at (spec.md §4.2 "an lvalue chain IDENT (.PROP|[EXPR])*").
func (e *Evaluator) rootName(expr ast.Expression) (string, bool) {
	switch n := expr.(type) {
	case *ast.Identifier:
		return n.Name, true
	case *ast.IndexExpr:
		return e.rootName(n.Target)
	case *ast.MemberExpr:
		return e.rootName(n.Target)
	default:
		return "", false
	}
}

// resolveLvalue checks the chain's root for constness (§4.4: rejected
// "before any sub-evaluation") and, if clear, resolves the full chain to
// a mutable slot.
func (e *Evaluator) resolveLvalue(expr ast.Expression, scope *value.Scope) (*value.Dynamic, error) {
	root, ok := e.rootName(expr)
	if !ok {
		return nil, rterr.NewRuntime(expr.Pos(), "invalid assignment target")
	}
	isConst, found := scope.IsConst(root)
	if !found {
		return nil, rterr.NewAssignmentToUnknownLHS(expr.Pos(), root)
	}
	if isConst {
		return nil, rterr.NewAssignmentToConstant(expr.Pos(), root)
	}
	return e.resolveChain(expr, scope)
}

// resolveChain walks expr (already const-cleared at its root) down to a
// live *value.Dynamic slot, evaluating any index/member sub-expressions
// along the way.
func (e *Evaluator) resolveChain(expr ast.Expression, scope *value.Scope) (*value.Dynamic, error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		slot := scope.Slot(n.Name)
		if slot == nil {
			return nil, rterr.NewVariableNotFound(n.Position, n.Name)
		}
		return slot, nil

	case *ast.IndexExpr:
		targetSlot, err := e.resolveChain(n.Target, scope)
		if err != nil {
			return nil, err
		}
		idxVal, err := e.evalExpr(n.Index, scope)
		if err != nil {
			return nil, err
		}
		if arr, ok := targetSlot.AsArray(); ok {
			idx, ok := idxVal.AsInt()
			if !ok {
				return nil, rterr.NewIndexingType(n.Position, idxVal.TypeName())
			}
			if idx < 0 || int(idx) >= len(arr.Elements) {
				return nil, rterr.NewArrayBounds(n.Position, int(idx), len(arr.Elements))
			}
			return &arr.Elements[idx], nil
		}
		if m, ok := targetSlot.AsMap(); ok {
			key, ok := idxVal.AsString()
			if !ok {
				return nil, rterr.NewIndexingType(n.Position, idxVal.TypeName())
			}
			slot, found := m.Slot(key)
			if !found {
				return nil, rterr.NewIndexExpr(n.Position, "no such property: "+key)
			}
			return slot, nil
		}
		return nil, rterr.NewIndexingType(n.Position, targetSlot.TypeName())

	case *ast.MemberExpr:
		targetSlot, err := e.resolveChain(n.Target, scope)
		if err != nil {
			return nil, err
		}
		m, ok := targetSlot.AsMap()
		if !ok {
			return nil, rterr.NewDotExpr(n.Position, "cannot access property '"+n.Property+"' on "+targetSlot.TypeName())
		}
		slot, found := m.Slot(n.Property)
		if !found {
			return nil, rterr.NewDotExpr(n.Position, "no such property: "+n.Property)
		}
		return slot, nil

	default:
		return nil, rterr.NewRuntime(expr.Pos(), "invalid assignment target")
	}
}
