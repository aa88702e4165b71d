package eval

import (
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
)

func (e *Evaluator) evalExpr(expr ast.Expression, scope *value.Scope) (value.Dynamic, error) {
	if err := e.tick(expr.Pos()); err != nil {
		return value.Dynamic{}, err
	}

	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return value.Int(n.Value), nil
	case *ast.FloatLiteral:
		return value.Float(n.Value), nil
	case *ast.StringLiteral:
		return value.Str(n.Value), nil
	case *ast.CharLiteral:
		return value.Ch(n.Value), nil
	case *ast.BoolLiteral:
		return value.Bool(n.Value), nil

	case *ast.Identifier:
		v, ok := scope.Lookup(n.Name)
		if !ok {
			return value.Dynamic{}, rterr.NewVariableNotFound(n.Position, n.Name)
		}
		return v, nil

	case *ast.GroupExpr:
		return e.evalExpr(n.Inner, scope)

	case *ast.UnaryExpr:
		return e.evalUnary(n, scope)

	case *ast.BinaryExpr:
		return e.evalBinary(n, scope)

	case *ast.AssignExpr:
		return e.evalAssign(n, scope)

	case *ast.CallExpr:
		return e.evalCall(n, scope)

	case *ast.ArrayLiteral:
		arr := value.NewArray(nil)
		for _, elExpr := range n.Elements {
			v, err := e.evalExpr(elExpr, scope)
			if err != nil {
				return value.Dynamic{}, err
			}
			arr.Elements = append(arr.Elements, v.Clone())
		}
		return value.New(arr), nil

	case *ast.MapLiteral:
		m := value.NewMap()
		for _, pair := range n.Pairs {
			v, err := e.evalExpr(pair.Value, scope)
			if err != nil {
				return value.Dynamic{}, err
			}
			m.Set(pair.Name, v.Clone())
		}
		return value.New(m), nil

	case *ast.IndexExpr:
		return e.evalIndexRead(n, scope)

	case *ast.MemberExpr:
		return e.evalMemberRead(n, scope)

	case *ast.IfExpr:
		return e.evalIfExpr(n, scope)

	default:
		return value.Dynamic{}, rterr.NewRuntime(expr.Pos(), "unhandled expression node")
	}
}

func (e *Evaluator) evalIfExpr(n *ast.IfExpr, scope *value.Scope) (value.Dynamic, error) {
	condVal, err := e.evalExpr(n.Cond, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	b, ok := condVal.AsBool()
	if !ok {
		return value.Dynamic{}, rterr.NewIfGuard(n.Cond.Pos(), condVal.TypeName())
	}
	if b {
		return e.evalBlock(n.Then, scope)
	}
	switch elseNode := n.Else.(type) {
	case *ast.BlockStmt:
		return e.evalBlock(elseNode, scope)
	case *ast.IfExpr:
		return e.evalIfExpr(elseNode, scope)
	default:
		return value.Nil(), nil
	}
}

func (e *Evaluator) evalIndexRead(n *ast.IndexExpr, scope *value.Scope) (value.Dynamic, error) {
	target, err := e.evalExpr(n.Target, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	idx, err := e.evalExpr(n.Index, scope)
	if err != nil {
		return value.Dynamic{}, err
	}

	if arr, ok := target.AsArray(); ok {
		i, ok := idx.AsInt()
		if !ok {
			return value.Dynamic{}, rterr.NewIndexingType(n.Position, idx.TypeName())
		}
		if i < 0 || int(i) >= len(arr.Elements) {
			return value.Dynamic{}, rterr.NewArrayBounds(n.Position, int(i), len(arr.Elements))
		}
		return arr.Elements[i], nil
	}
	if s, ok := target.AsString(); ok {
		i, ok := idx.AsInt()
		if !ok {
			return value.Dynamic{}, rterr.NewIndexingType(n.Position, idx.TypeName())
		}
		runes := []rune(s)
		if i < 0 || int(i) >= len(runes) {
			return value.Dynamic{}, rterr.NewStringBounds(n.Position, int(i), len(runes))
		}
		return value.Ch(runes[i]), nil
	}
	if m, ok := target.AsMap(); ok {
		key, ok := idx.AsString()
		if !ok {
			return value.Dynamic{}, rterr.NewIndexingType(n.Position, idx.TypeName())
		}
		v, found := m.Get(key)
		if !found {
			return value.Dynamic{}, rterr.NewIndexExpr(n.Position, "no such property: "+key)
		}
		return v, nil
	}
	return value.Dynamic{}, rterr.NewIndexingType(n.Position, target.TypeName())
}

func (e *Evaluator) evalMemberRead(n *ast.MemberExpr, scope *value.Scope) (value.Dynamic, error) {
	target, err := e.evalExpr(n.Target, scope)
	if err != nil {
		return value.Dynamic{}, err
	}
	m, ok := target.AsMap()
	if !ok {
		return value.Dynamic{}, rterr.NewDotExpr(n.Position, "cannot access property '"+n.Property+"' on "+target.TypeName())
	}
	v, found := m.Get(n.Property)
	if !found {
		return value.Dynamic{}, rterr.NewDotExpr(n.Position, "no such property: "+n.Property)
	}
	return v, nil
}
