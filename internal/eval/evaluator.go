// Package eval implements the tree-walking interpreter (spec.md §4.4):
// expression and statement evaluation, operator desugaring into registry
// calls, lvalue-chain resolution with const protection, and user-defined
// function dispatch. It has no built-in arithmetic or comparison of its
// own — every binary/unary operator is a lookup into the function
// registry keyed by the operator's lexeme (spec.md §9 "Operator-as-
// callable").
package eval

import (
	"reflect"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// Options mirrors the evaluator-relevant build-time configuration options
// (spec.md §6). The parser-facing syntax gates (arrays_enabled,
// objects_enabled, user_functions_enabled) live in internal/parser since
// they affect what can be parsed at all, not how it evaluates.
type Options struct {
	IntWidth            value.IntWidth
	UncheckedArithmetic bool
	OperationFuel       uint64 // 0 = unlimited (spec.md §4.4 "operation fuel")
	MaxCallDepth        int    // 0 = unlimited
}

// Evaluator is a tree-walking interpreter over an *ast.Program. One
// Evaluator is reused across Run calls on the same engine; its Registry
// outlives any single evaluation (spec.md §3 "Registry entries live with
// the engine instance and outlast individual evaluations").
type Evaluator struct {
	Registry *registry.Registry
	Opts     Options

	fuel    uint64
	depth   int
	funcs   map[string]*ast.FnDecl
	globals *value.Scope
}

func New(reg *registry.Registry, opts Options) *Evaluator {
	return &Evaluator{Registry: reg, Opts: opts}
}

// Run evaluates program against scope, which becomes both the
// evaluation's global scope and the source of the "global consts"
// user-defined functions may see (spec.md §9 "No closures"). Top-level
// FnDecl statements are hoisted before any other statement runs, so
// forward calls between top-level functions work regardless of
// declaration order.
func (e *Evaluator) Run(program *ast.Program, scope *value.Scope) (value.Dynamic, error) {
	e.fuel = e.Opts.OperationFuel
	e.depth = 0
	e.globals = scope
	e.funcs = make(map[string]*ast.FnDecl)
	for _, stmt := range program.Statements {
		if fn, ok := stmt.(*ast.FnDecl); ok {
			e.funcs[fn.Name] = fn
		}
	}

	result := value.Nil()
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.FnDecl); ok {
			continue
		}
		v, err := e.evalStmt(stmt, scope)
		if err != nil {
			// A Return or Break leaking to the top level indicates a
			// parser/evaluator bug (spec.md §8 "control-flow
			// containment") — surface it as ErrorRuntime rather than
			// letting the internal carrier type escape this package.
			switch err.(type) {
			case *errReturn:
				return value.Dynamic{}, rterr.NewRuntime(stmt.Pos(), "return outside function")
			case *errBreak:
				return value.Dynamic{}, rterr.NewRuntime(stmt.Pos(), "break outside loop")
			}
			return value.Dynamic{}, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) tick(pos token.Position) error {
	if e.Opts.OperationFuel == 0 {
		return nil
	}
	if e.fuel == 0 {
		return rterr.NewTooManyOperations(pos)
	}
	e.fuel--
	return nil
}

// evalBlock runs a block's statements under a fresh scope mark, truncated
// on exit regardless of how the block ends (spec.md §3 "A block
// introduces a mark; block exit truncates to the mark").
func (e *Evaluator) evalBlock(block *ast.BlockStmt, scope *value.Scope) (value.Dynamic, error) {
	mark := scope.Mark()
	defer scope.Truncate(mark)

	if err := e.tick(block.Position); err != nil {
		return value.Dynamic{}, err
	}

	result := value.Nil()
	for _, stmt := range block.Statements {
		v, err := e.evalStmt(stmt, scope)
		if err != nil {
			return value.Dynamic{}, err
		}
		result = v
	}
	return result, nil
}

// dispatchOperator looks up name (the operator's token lexeme) against
// the runtime types of args and invokes the matching registered callable.
// This is the one place the evaluator talks to the registry for
// arithmetic/comparison/etc — there is no operator switch anywhere else
// (spec.md §9).
func (e *Evaluator) dispatchOperator(name string, args []value.Dynamic, pos token.Position) (value.Dynamic, error) {
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		types[i] = a.Type()
	}
	entry, ok := e.Registry.Lookup(name, types)
	if !ok {
		names := make([]string, len(args))
		for i, a := range args {
			names[i] = a.TypeName()
		}
		return value.Dynamic{}, rterr.NewFunctionNotFound(pos, name, names)
	}
	ptrs := make([]*value.Dynamic, len(args))
	for i := range args {
		ptrs[i] = &args[i]
	}
	return entry.Call(ptrs, pos)
}

func (e *Evaluator) isAddressable(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.IndexExpr, *ast.MemberExpr:
		return true
	default:
		return false
	}
}
