package ast_test

import (
	"testing"

	"github.com/cwbudde/rscript/internal/parser"
)

func defaultOptions() parser.Options {
	return parser.Options{Arrays: true, Objects: true, UserFunctions: true, IntegerWidth: 64}
}

// TestProgramStringIsIdempotent exercises the round-trip/idempotence
// property: formatting a parsed program, reparsing the formatted text,
// and formatting again must produce the same text the second time.
// Pretty-printing is not required to reproduce the original source
// layout, only to stabilize after one round trip.
func TestProgramStringIsIdempotent(t *testing.T) {
	sources := []string{
		`let x = 1 + 2 * 3;`,
		`const pi = 3; let r = 2; let area = pi * r * r;`,
		`if true { let x = 1; } else { let x = 2; }`,
		`while true { break; }`,
		`for n in [1, 2, 3] { let x = n; }`,
		`fn add(a, b) { return a + b; } add(1, 2);`,
		`let m = #{a: 1, b: 2}; m.a;`,
		`let xs = [1, 2, 3]; xs[0] = 9;`,
	}

	for _, src := range sources {
		prog, err := parser.Parse(src, defaultOptions())
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		first := prog.String()

		reparsed, err := parser.Parse(first, defaultOptions())
		if err != nil {
			t.Fatalf("reparsing formatted output of %q failed: %v\nformatted: %s", src, err, first)
		}
		second := reparsed.String()

		if first != second {
			t.Fatalf("formatting is not idempotent for %q:\nfirst:  %s\nsecond: %s", src, first, second)
		}
	}
}
