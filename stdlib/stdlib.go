// Package stdlib is the built-in function library registered into a
// fresh engine's registry (spec.md §4.3, §6). Every operator the
// evaluator dispatches through the registry — arithmetic, comparison,
// the "iterator" capability a for-loop consults — lives here as ordinary
// registered callables, not evaluator special cases. A host embedding
// the engine can shadow or extend any of it with its own RegisterFn
// calls; re-registration simply replaces the signature.
package stdlib

import (
	"fmt"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/value"
)

// Options mirrors the subset of the engine's build-time configuration
// that changes how the arithmetic/comparison library behaves (spec.md
// §6). It is a deliberately small, separate struct from eval.Options so
// this package doesn't need to import internal/eval.
type Options struct {
	IntWidth            value.IntWidth
	UncheckedArithmetic bool
}

// Register installs the full standard library into reg under opts.
func Register(reg *registry.Registry, opts Options) {
	w := opts.IntWidth
	if w != value.Width32 && w != value.Width64 {
		w = value.Width64
	}
	opts.IntWidth = w

	registerArithmetic(reg, opts)
	registerComparisons(reg)
	registerLogic(reg)
	registerStrings(reg)
	registerArrays(reg)
	registerMaps(reg)
	registerJSON(reg)
}

// adapt registers fn under name via registry.AdaptFunc, panicking on
// failure. Every stdlib signature here is fixed at compile time, so a
// failure can only mean a mistake in this package, not a user mistake —
// the panic surfaces it immediately rather than silently leaving a
// builtin unregistered.
func adapt(reg *registry.Registry, name string, fn any) {
	entry, err := registry.AdaptFunc(name, fn)
	if err != nil {
		panic(fmt.Sprintf("stdlib: registering %q: %v", name, err))
	}
	reg.Register(entry)
}
