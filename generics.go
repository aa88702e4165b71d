package rscript

import (
	"reflect"

	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/pkg/token"
)

// EvalAs evaluates source and coerces the result to T, failing with
// ErrorMismatchOutputType if the script's result isn't exactly T's
// underlying Dynamic payload type (spec.md §6 host convenience wrapper —
// no numeric coercion, matching the registry's own exact-type discipline).
func EvalAs[T any](e *Engine, source string) (T, error) {
	d, err := e.Eval(source)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](d)
}

// EvalASTAs is EvalAs for an already-parsed Program.
func EvalASTAs[T any](e *Engine, program *ast.Program) (T, error) {
	d, err := e.EvalAST(program)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](d)
}

func coerce[T any](d Dynamic) (T, error) {
	if v, ok := d.Raw().(T); ok {
		return v, nil
	}
	var zero T
	want := reflect.TypeOf(zero)
	wantName := "unknown"
	if want != nil {
		wantName = want.String()
	}
	return zero, rterr.NewMismatchOutputType(token.None(), wantName, d.TypeName())
}
