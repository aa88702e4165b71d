package stdlib

import "github.com/cwbudde/rscript/internal/registry"

// registerLogic wires unary `!`. && and || never reach the registry —
// the evaluator short-circuits them directly (spec.md §9).
func registerLogic(reg *registry.Registry) {
	adapt(reg, "!", func(a bool) (bool, error) { return !a, nil })
}
