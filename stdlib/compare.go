package stdlib

import (
	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/value"
)

// registerComparisons wires ==, !=, <, >, <=, >= across the primitive
// types that support them (spec.md §4.4). Cross-type comparisons (e.g.
// int == float) are deliberately not registered: the registry's
// exact-match dispatch means such a call simply surfaces
// ErrorFunctionNotFound, the same way an unregistered arithmetic
// combination would.
func registerComparisons(reg *registry.Registry) {
	adapt(reg, "==", func(a, b int64) (bool, error) { return a == b, nil })
	adapt(reg, "!=", func(a, b int64) (bool, error) { return a != b, nil })
	adapt(reg, "<", func(a, b int64) (bool, error) { return a < b, nil })
	adapt(reg, ">", func(a, b int64) (bool, error) { return a > b, nil })
	adapt(reg, "<=", func(a, b int64) (bool, error) { return a <= b, nil })
	adapt(reg, ">=", func(a, b int64) (bool, error) { return a >= b, nil })

	adapt(reg, "==", func(a, b float64) (bool, error) { return a == b, nil })
	adapt(reg, "!=", func(a, b float64) (bool, error) { return a != b, nil })
	adapt(reg, "<", func(a, b float64) (bool, error) { return a < b, nil })
	adapt(reg, ">", func(a, b float64) (bool, error) { return a > b, nil })
	adapt(reg, "<=", func(a, b float64) (bool, error) { return a <= b, nil })
	adapt(reg, ">=", func(a, b float64) (bool, error) { return a >= b, nil })

	adapt(reg, "==", func(a, b string) (bool, error) { return a == b, nil })
	adapt(reg, "!=", func(a, b string) (bool, error) { return a != b, nil })
	adapt(reg, "<", func(a, b string) (bool, error) { return a < b, nil })
	adapt(reg, ">", func(a, b string) (bool, error) { return a > b, nil })
	adapt(reg, "<=", func(a, b string) (bool, error) { return a <= b, nil })
	adapt(reg, ">=", func(a, b string) (bool, error) { return a >= b, nil })

	adapt(reg, "==", func(a, b bool) (bool, error) { return a == b, nil })
	adapt(reg, "!=", func(a, b bool) (bool, error) { return a != b, nil })

	adapt(reg, "==", func(a, b value.Char) (bool, error) { return a == b, nil })
	adapt(reg, "!=", func(a, b value.Char) (bool, error) { return a != b, nil })
	adapt(reg, "<", func(a, b value.Char) (bool, error) { return a < b, nil })
	adapt(reg, ">", func(a, b value.Char) (bool, error) { return a > b, nil })
	adapt(reg, "<=", func(a, b value.Char) (bool, error) { return a <= b, nil })
	adapt(reg, ">=", func(a, b value.Char) (bool, error) { return a >= b, nil })
}
