package rscript

import (
	"github.com/cwbudde/rscript/internal/eval"
	"github.com/cwbudde/rscript/internal/parser"
	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/stdlib"
)

// Engine bundles a function registry and a tree-walking evaluator
// configured by a fixed set of Options (spec.md §2 "Engine"). It is safe
// to Eval the same Engine repeatedly; each Eval gets its own top-level
// Scope unless EvalWithScope is used.
type Engine struct {
	settings settings
	registry *registry.Registry
	eval     *eval.Evaluator
}

// New builds an Engine, applying opts over the default configuration
// (arrays, objects and user functions enabled; 64-bit checked integers;
// the stdlib builtins registered).
func New(opts ...Option) *Engine {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	reg := registry.New(s.syncMode)
	if s.withStdlib {
		stdlib.Register(reg, stdlib.Options{
			IntWidth:            s.evalOptions().IntWidth,
			UncheckedArithmetic: s.uncheckedArithmetic,
		})
	}

	return &Engine{
		settings: s,
		registry: reg,
		eval:     eval.New(reg, s.evalOptions()),
	}
}

// RegisterFn adapts fn via reflection into the registry's uniform Native
// shape (spec.md §4.3) and installs it under name, replacing any existing
// entry with the same (name, argument-type) signature.
func (e *Engine) RegisterFn(name string, fn any) error {
	entry, err := registry.AdaptFunc(name, fn)
	if err != nil {
		return err
	}
	e.registry.Register(entry)
	return nil
}

// Compile parses source under the default grammar configuration (arrays,
// objects and user functions enabled, 64-bit integer literals),
// independent of any particular Engine's Options — useful for tooling
// that only needs the AST (formatting, static analysis) and not
// evaluation.
func Compile(source string) (*ast.Program, error) {
	prog, perr := parser.Parse(source, defaultSettings().parserOptions())
	if perr != nil {
		return nil, rterr.NewErrParsing(perr)
	}
	return prog, nil
}

// compile parses source under e's own grammar configuration, used by
// Eval/EvalWithScope so the script sees exactly the syntax e was built
// with.
func (e *Engine) compile(source string) (*ast.Program, error) {
	prog, perr := parser.Parse(source, e.settings.parserOptions())
	if perr != nil {
		return nil, rterr.NewErrParsing(perr)
	}
	return prog, nil
}

// Eval parses and evaluates source against a fresh top-level Scope.
func (e *Engine) Eval(source string) (Dynamic, error) {
	return e.EvalWithScope(NewScope(), source)
}

// EvalWithScope parses and evaluates source against scope, which becomes
// the evaluation's global scope — bindings declared at top level persist
// in scope after Eval returns, so a host can call EvalWithScope
// repeatedly against the same scope to build up state across calls.
func (e *Engine) EvalWithScope(scope *Scope, source string) (Dynamic, error) {
	prog, err := e.compile(source)
	if err != nil {
		return value.Dynamic{}, err
	}
	return e.eval.Run(prog, scope)
}

// EvalAST evaluates an already-parsed Program against a fresh Scope,
// skipping the parse step (e.g. for a program compiled once with Compile
// and evaluated many times).
func (e *Engine) EvalAST(program *ast.Program) (Dynamic, error) {
	return e.eval.Run(program, NewScope())
}
