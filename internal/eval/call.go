package eval

import (
	"reflect"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
)

// evalCall dispatches a CallExpr. A name matching a top-level user-defined
// function always wins over a registry entry of the same name — the two
// dispatch mechanisms are disjoint (user functions match on name+arity
// alone; registry entries match on name+exact-argument-types).
func (e *Evaluator) evalCall(n *ast.CallExpr, scope *value.Scope) (value.Dynamic, error) {
	if fn, ok := e.funcs[n.Name]; ok {
		return e.callUserFn(fn, n, scope)
	}
	return e.callRegistry(n, scope)
}

func (e *Evaluator) callUserFn(fn *ast.FnDecl, call *ast.CallExpr, scope *value.Scope) (value.Dynamic, error) {
	if len(call.Args) != len(fn.Params) {
		return value.Dynamic{}, rterr.NewFunctionArgsMismatch(call.Position, fn.Name, len(fn.Params), len(call.Args))
	}

	argVals := make([]value.Dynamic, len(call.Args))
	for i, a := range call.Args {
		v, err := e.evalExpr(a, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		argVals[i] = v.Clone()
	}

	e.depth++
	defer func() { e.depth-- }()
	if e.Opts.MaxCallDepth > 0 && e.depth > e.Opts.MaxCallDepth {
		return value.Dynamic{}, rterr.NewStackOverflow(call.Position)
	}

	// No closures (spec.md §9): a fresh scope seeded only with the global
	// consts and this call's parameters, never the caller's locals.
	child := value.NewScope()
	e.globals.EachConst(func(name string, v value.Dynamic) {
		child.Declare(name, v, true)
	})
	for i, p := range fn.Params {
		child.Declare(p, argVals[i], false)
	}

	result, err := e.evalBlock(fn.Body, child)
	if err != nil {
		if ret, ok := err.(*errReturn); ok {
			return ret.value, nil
		}
		if _, ok := err.(*errBreak); ok {
			return value.Dynamic{}, rterr.NewRuntime(call.Position, "break escaped its enclosing loop")
		}
		return value.Dynamic{}, err
	}
	return result, nil
}

func (e *Evaluator) callRegistry(n *ast.CallExpr, scope *value.Scope) (value.Dynamic, error) {
	argVals := make([]value.Dynamic, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		argVals[i] = v
	}

	types := make([]reflect.Type, len(argVals))
	for i, v := range argVals {
		types[i] = v.Type()
	}
	entry, ok := e.Registry.Lookup(n.Name, types)
	if !ok {
		names := make([]string, len(argVals))
		for i, v := range argVals {
			names[i] = v.TypeName()
		}
		return value.Dynamic{}, rterr.NewFunctionNotFound(n.Position, n.Name, names)
	}

	ptrs := make([]*value.Dynamic, len(argVals))
	if len(entry.Modes) > 0 && entry.Modes[0] == registry.ByMutRef {
		if e.isAddressable(n.Args[0]) {
			slot, err := e.resolveLvalue(n.Args[0], scope)
			if err != nil {
				return value.Dynamic{}, err
			}
			ptrs[0] = slot
		} else {
			// Not an addressable expression (e.g. a call result or
			// literal) — the callable still gets a live slot, but any
			// mutation it performs is invisible after the call returns.
			ptrs[0] = &argVals[0]
		}
		for i := 1; i < len(argVals); i++ {
			ptrs[i] = &argVals[i]
		}
	} else {
		for i := range argVals {
			ptrs[i] = &argVals[i]
		}
	}

	return entry.Call(ptrs, n.Position)
}
