package eval

import (
	"testing"

	"github.com/cwbudde/rscript/internal/parser"
	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/ast"
	"github.com/cwbudde/rscript/stdlib"
)

func newEvaluator(t *testing.T, opts Options) *Evaluator {
	t.Helper()
	reg := registry.New(false)
	stdlib.Register(reg, stdlib.Options{IntWidth: opts.IntWidth, UncheckedArithmetic: opts.UncheckedArithmetic})
	if opts.IntWidth == 0 {
		opts.IntWidth = value.Width64
	}
	return New(reg, opts)
}

func parseOrFail(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, parser.Options{Arrays: true, Objects: true, UserFunctions: true, IntegerWidth: 64})
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func run(t *testing.T, e *Evaluator, src string) (value.Dynamic, error) {
	t.Helper()
	prog := parseOrFail(t, src)
	return e.Run(prog, value.NewScope())
}

func TestIfStmtBranches(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `let x = 0; if true { x = 1; } else { x = 2; } x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}

	v, err = run(t, e, `let x = 0; if false { x = 1; } else { x = 2; } x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestWhileStmtAndBreak(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `
		let i = 0;
		while true {
			i = i + 1;
			if i > 4 {
				break;
			}
		}
		i
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestLoopStmtAndBreak(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `
		let total = 0;
		let i = 0;
		loop {
			i = i + 1;
			total = total + i;
			if i >= 3 {
				break;
			}
		}
		total
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestForStmtOverArray(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `
		let sum = 0;
		for n in [10, 20, 30] {
			sum = sum + n;
		}
		sum
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 60 {
		t.Fatalf("got %d, want 60", got)
	}
}

func TestUserFunctionCallAndReturn(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `
		fn add(a, b) {
			return a + b;
		}
		add(3, 4)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestOperatorDispatchViaRegistry(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `"foo" + "bar"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsString(); got != "foobar" {
		t.Fatalf("got %q, want %q", got, "foobar")
	}

	if _, err := run(t, e, `"foo" + 1`); err == nil {
		t.Fatalf("expected a function-not-found error for string+int")
	} else if _, ok := err.(*rterr.ErrFunctionNotFound); !ok {
		t.Fatalf("err = %T, want *rterr.ErrFunctionNotFound", err)
	}
}

func TestConstProtectionThroughIndexChain(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	_, err := run(t, e, `const xs = [1, 2, 3]; xs[0] = 9;`)
	target, ok := err.(*rterr.ErrAssignmentToConstant)
	if !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrAssignmentToConstant", err, err)
	}
	if target.Name != "xs" {
		t.Fatalf("Name = %q, want %q", target.Name, "xs")
	}
}

func TestAssignmentToUnknownVariable(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	_, err := run(t, e, `y = 1;`)
	if _, ok := err.(*rterr.ErrAssignmentToUnknownLHS); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrAssignmentToUnknownLHS", err, err)
	}
}

func TestCompoundAssignment(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `let x = 10; x += 5; x -= 2; x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 13 {
		t.Fatalf("got %d, want 13", got)
	}
}

func TestOperationFuelExhaustion(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64, OperationFuel: 3})
	_, err := run(t, e, `let x = 0; while true { x = x + 1; }`)
	if _, ok := err.(*rterr.ErrTooManyOperations); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrTooManyOperations", err, err)
	}
}

func TestMaxCallDepthExhaustion(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64, MaxCallDepth: 4})
	_, err := run(t, e, `
		fn recurse(n) {
			return recurse(n + 1);
		}
		recurse(0)
	`)
	if _, ok := err.(*rterr.ErrStackOverflow); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrStackOverflow", err, err)
	}
}

func TestFunctionArgsMismatch(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	_, err := run(t, e, `
		fn one(a) {
			return a;
		}
		one(1, 2)
	`)
	if _, ok := err.(*rterr.ErrFunctionArgsMismatch); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrFunctionArgsMismatch", err, err)
	}
}

func TestNoClosuresOverCallerLocals(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	_, err := run(t, e, `
		let secret = 42;
		fn reveal() {
			return secret;
		}
		reveal()
	`)
	if _, ok := err.(*rterr.ErrVariableNotFound); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrVariableNotFound", err, err)
	}
}

func TestGlobalConstsVisibleInsideUserFunctions(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	v, err := run(t, e, `
		const factor = 10;
		fn scale(n) {
			return n * factor;
		}
		scale(4)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := v.AsInt(); got != 40 {
		t.Fatalf("got %d, want 40", got)
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	_, err := run(t, e, `let xs = [1, 2]; xs[5]`)
	if _, ok := err.(*rterr.ErrArrayBounds); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrArrayBounds", err, err)
	}
}

func TestForOverNonIterableType(t *testing.T) {
	e := newEvaluator(t, Options{IntWidth: value.Width64})
	_, err := run(t, e, `for n in 5 { }`)
	if _, ok := err.(*rterr.ErrForMismatch); !ok {
		t.Fatalf("err = %v (%T), want *rterr.ErrForMismatch", err, err)
	}
}
