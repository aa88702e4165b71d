// Package rscript is the public embedding facade: construct an *Engine
// with the build-time Options the script needs, register host functions,
// then Eval source (spec.md §6). Everything under internal/ is wired
// together here; a host application never imports internal/* directly.
package rscript

import (
	"github.com/cwbudde/rscript/internal/eval"
	"github.com/cwbudde/rscript/internal/parser"
	"github.com/cwbudde/rscript/internal/value"
)

// Dynamic and Scope are re-exported so host code can hold script values
// and pre-seed a scope without reaching into internal/value.
type Dynamic = value.Dynamic
type Scope = value.Scope

// NewScope creates an empty scope, for use with EvalWithScope.
func NewScope() *Scope { return value.NewScope() }

// settings is the engine's fully-resolved build-time configuration,
// assembled by applying every Option in order (spec.md §6).
type settings struct {
	arrays              bool
	objects             bool
	userFunctions       bool
	integerWidth        int
	uncheckedArithmetic bool
	syncMode            bool
	operationFuel       uint64
	maxCallDepth        int
	withStdlib          bool
}

func defaultSettings() settings {
	return settings{
		arrays:        true,
		objects:       true,
		userFunctions: true,
		integerWidth:  64,
		withStdlib:    true,
	}
}

// Option configures an Engine at construction time (spec.md §6 build-time
// configuration). Options apply in the order passed to New.
type Option func(*settings)

// WithArrays toggles array literal/indexing syntax (spec.md §6
// arrays_enabled).
func WithArrays(enabled bool) Option { return func(s *settings) { s.arrays = enabled } }

// WithObjects toggles map literal/member-access syntax (objects_enabled).
func WithObjects(enabled bool) Option { return func(s *settings) { s.objects = enabled } }

// WithUserFunctions toggles top-level `fn` declarations
// (user_functions_enabled).
func WithUserFunctions(enabled bool) Option {
	return func(s *settings) { s.userFunctions = enabled }
}

// WithIntegerWidth sets the integer_width option; bits must be 32 or 64,
// anything else is treated as 64.
func WithIntegerWidth(bits int) Option {
	return func(s *settings) { s.integerWidth = bits }
}

// WithUncheckedArithmetic disables overflow/div-zero checking, letting
// integer arithmetic wrap like Go's own fixed-width int types.
func WithUncheckedArithmetic(enabled bool) Option {
	return func(s *settings) { s.uncheckedArithmetic = enabled }
}

// WithSyncMode switches the registry to guard registration/lookup with a
// RWMutex, the Go stand-in for a `Send + Sync` bound on registered
// callables (spec.md §5). It does not check or make the registered
// callables themselves safe to call from multiple goroutines.
func WithSyncMode(enabled bool) Option { return func(s *settings) { s.syncMode = enabled } }

// WithOperationFuel bounds the number of AST nodes a single Eval may
// visit; 0 (the default) means unlimited.
func WithOperationFuel(n uint64) Option { return func(s *settings) { s.operationFuel = n } }

// WithMaxCallDepth bounds user-function call nesting; 0 means unlimited.
func WithMaxCallDepth(n int) Option { return func(s *settings) { s.maxCallDepth = n } }

// WithStdlib controls whether the stdlib package's builtins (arithmetic,
// comparison, array/map helpers, JSON) are registered into a new Engine.
// Defaults to true; a host that wants to build its own operator library
// from scratch can pass WithStdlib(false).
func WithStdlib(register bool) Option { return func(s *settings) { s.withStdlib = register } }

func (s settings) normalizedWidth() int {
	if s.integerWidth != 32 && s.integerWidth != 64 {
		return 64
	}
	return s.integerWidth
}

func (s settings) parserOptions() parser.Options {
	return parser.Options{
		Arrays:        s.arrays,
		Objects:       s.objects,
		UserFunctions: s.userFunctions,
		IntegerWidth:  s.normalizedWidth(),
	}
}

func (s settings) evalOptions() eval.Options {
	width := value.Width64
	if s.normalizedWidth() == 32 {
		width = value.Width32
	}
	return eval.Options{
		IntWidth:            width,
		UncheckedArithmetic: s.uncheckedArithmetic,
		OperationFuel:       s.operationFuel,
		MaxCallDepth:        s.maxCallDepth,
	}
}
