package stdlib

import (
	"reflect"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/token"
)

// registerMaps wires the map builtins, hand-built for the same reason as
// the array builtins in arrays.go: *value.Map is the Dynamic's own
// representation, not a by-mutable-reference marker.
func registerMaps(reg *registry.Registry) {
	mapT := value.MapType()

	reg.Register(&registry.Entry{
		Name:  "len",
		Types: []reflect.Type{mapT},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			m, _ := args[0].AsMap()
			return value.Int(int64(m.Len())), nil
		},
	})

	reg.Register(&registry.Entry{
		Name:  "keys",
		Types: []reflect.Type{mapT},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			m, _ := args[0].AsMap()
			keys := m.Keys()
			elems := make([]value.Dynamic, len(keys))
			for i, k := range keys {
				elems[i] = value.Str(k)
			}
			return value.New(value.NewArray(elems)), nil
		},
	})

	// A map iterates as its ordered list of keys (spec.md §4.4's
	// iterator capability names no particular order, so insertion order
	// — the same order `keys` reports — is as good a choice as any).
	reg.Register(&registry.Entry{
		Name:  "iterator",
		Types: []reflect.Type{mapT},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			m, _ := args[0].AsMap()
			keys := m.Keys()
			elems := make([]value.Dynamic, len(keys))
			for i, k := range keys {
				elems[i] = value.Str(k)
			}
			return value.New(value.NewArray(elems)), nil
		},
	})
}
