package parser

import (
	"testing"

	"github.com/cwbudde/rscript/internal/perr"
	"github.com/cwbudde/rscript/pkg/ast"
)

func defaultOptions() Options {
	return Options{Arrays: true, Objects: true, UserFunctions: true, IntegerWidth: 64}
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src, defaultOptions())
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	return prog
}

func requireParseError(t *testing.T, src string, opts Options, kind perr.ParseErrorKind) {
	t.Helper()
	_, err := Parse(src, opts)
	if err == nil {
		t.Fatalf("Parse(%q): expected a %v error, got none", src, kind)
	}
	if err.Kind != kind {
		t.Fatalf("Parse(%q): Kind = %v, want %v (%v)", src, err.Kind, kind, err)
	}
}

// TestPrecedenceClimbing verifies multiplicative binds tighter than
// additive and that parenthesized groups override it, by inspecting the
// produced AST shape directly rather than relying on evaluation.
func TestPrecedenceClimbing(t *testing.T) {
	prog := mustParse(t, "1 + 2 * 3;")
	stmt, ok := prog.Statements[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.ExpressionStmt", prog.Statements[0])
	}
	bin, ok := stmt.Expression.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpr", stmt.Expression)
	}
	if _, ok := bin.Left.(*ast.IntegerLiteral); !ok {
		t.Fatalf("top-level left operand = %T, want *ast.IntegerLiteral (the '1')", bin.Left)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("top-level right operand = %T, want nested *ast.BinaryExpr ('2 * 3')", bin.Right)
	}
	if lit, ok := rhs.Left.(*ast.IntegerLiteral); !ok || lit.Value != 2 {
		t.Fatalf("nested left operand = %v, want integer literal 2", rhs.Left)
	}
}

func TestPrecedenceGroupingOverride(t *testing.T) {
	prog := mustParse(t, "(1 + 2) * 3;")
	stmt := prog.Statements[0].(*ast.ExpressionStmt)
	bin, ok := stmt.Expression.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpr", stmt.Expression)
	}
	if _, ok := bin.Left.(*ast.GroupExpr); !ok {
		t.Fatalf("left operand = %T, want *ast.GroupExpr", bin.Left)
	}
}

// TestAssignmentIsRightAssociative verifies `a = b = c` parses as
// `a = (b = c)`.
func TestAssignmentIsRightAssociative(t *testing.T) {
	prog := mustParse(t, "a = b = c;")
	stmt := prog.Statements[0].(*ast.ExpressionStmt)
	outer, ok := stmt.Expression.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expression = %T, want *ast.AssignExpr", stmt.Expression)
	}
	if _, ok := outer.Value.(*ast.AssignExpr); !ok {
		t.Fatalf("outer assignment's value = %T, want nested *ast.AssignExpr", outer.Value)
	}
}

func TestStatementGrammar(t *testing.T) {
	cases := map[string]func(*testing.T, ast.Statement){
		"let x = 1;": func(t *testing.T, s ast.Statement) {
			let, ok := s.(*ast.LetStmt)
			if !ok || let.Const || let.Name != "x" {
				t.Fatalf("got %#v, want let x = 1", s)
			}
		},
		"const x = 1;": func(t *testing.T, s ast.Statement) {
			let, ok := s.(*ast.LetStmt)
			if !ok || !let.Const {
				t.Fatalf("got %#v, want const x = 1", s)
			}
		},
		"if true { 1; } else { 2; }": func(t *testing.T, s ast.Statement) {
			ifs, ok := s.(*ast.IfStmt)
			if !ok || ifs.Else == nil {
				t.Fatalf("got %#v, want an if/else", s)
			}
		},
		"while true { break; }": func(t *testing.T, s ast.Statement) {
			if _, ok := s.(*ast.WhileStmt); !ok {
				t.Fatalf("got %#v, want *ast.WhileStmt", s)
			}
		},
		"loop { break; }": func(t *testing.T, s ast.Statement) {
			if _, ok := s.(*ast.LoopStmt); !ok {
				t.Fatalf("got %#v, want *ast.LoopStmt", s)
			}
		},
		"for x in y { }": func(t *testing.T, s ast.Statement) {
			f, ok := s.(*ast.ForStmt)
			if !ok || f.Var != "x" {
				t.Fatalf("got %#v, want for x in y", s)
			}
		},
		"return 1;": func(t *testing.T, s ast.Statement) {
			r, ok := s.(*ast.ReturnStmt)
			if !ok || r.Value == nil {
				t.Fatalf("got %#v, want return 1", s)
			}
		},
		"fn f(a, b) { return a; }": func(t *testing.T, s ast.Statement) {
			fn, ok := s.(*ast.FnDecl)
			if !ok || fn.Name != "f" || len(fn.Params) != 2 {
				t.Fatalf("got %#v, want fn f(a, b)", s)
			}
		},
	}

	for src, check := range cases {
		prog := mustParse(t, src)
		if len(prog.Statements) != 1 {
			t.Fatalf("%s: got %d statements, want 1", src, len(prog.Statements))
		}
		check(t, prog.Statements[0])
	}
}

func TestParseErrorTaxonomy(t *testing.T) {
	opts := defaultOptions()

	requireParseError(t, "let x = 1", opts, perr.MissingToken) // no trailing ';'
	requireParseError(t, "let x =", opts, perr.ExprExpected)
	requireParseError(t, "{ let x = 1;", opts, perr.UnexpectedEOF) // unterminated block
	requireParseError(t, "$", opts, perr.BadInput)
	requireParseError(t, "break;", opts, perr.LoopBreak)
	requireParseError(t, "fn f(a, a) { return a; }", opts, perr.FnDuplicatedParam)
	requireParseError(t, "#{a: 1, a: 2}", opts, perr.DuplicatedProperty)
	requireParseError(t, "while true { fn nested() { return 1; } }", opts, perr.WrongFnDefinition)
	requireParseError(t, "1 = 2;", opts, perr.AssignmentToInvalidLHS)
	requireParseError(t, "const x = f();", opts, perr.ForbiddenConstantExpr)
}

// TestSyntaxGatesRejectDisabledForms verifies each build-time gate turns
// its syntax form into a BadInput parse error instead of silently
// ignoring it.
func TestSyntaxGatesRejectDisabledForms(t *testing.T) {
	noArrays := defaultOptions()
	noArrays.Arrays = false
	requireParseError(t, "[1, 2, 3];", noArrays, perr.BadInput)

	noObjects := defaultOptions()
	noObjects.Objects = false
	requireParseError(t, "#{a: 1};", noObjects, perr.BadInput)

	noFns := defaultOptions()
	noFns.UserFunctions = false
	requireParseError(t, "fn f() { return 1; }", noFns, perr.BadInput)
}

// TestConstExprAcceptsLiteralAggregates verifies the const-initializer
// check recurses into array/map literals and through +/- unary prefixes,
// not just bare scalar literals.
func TestConstExprAcceptsLiteralAggregates(t *testing.T) {
	for _, src := range []string{
		"const x = -1;",
		"const x = +1.5;",
		"const x = (1);",
		"const x = [1, 2, -3];",
		"const x = #{a: 1, b: [2, 3]};",
	} {
		mustParse(t, src)
	}
}

func TestConstExprRejectsNonLiteral(t *testing.T) {
	opts := defaultOptions()
	for _, src := range []string{
		"const x = y;",
		"const x = f();",
		"const x = [1, f()];",
	} {
		requireParseError(t, src, opts, perr.ForbiddenConstantExpr)
	}
}
