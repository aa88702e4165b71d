package stdlib

import (
	"reflect"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/token"
)

// registerArrays wires the array builtins. These are hand-built
// registry.Entry values rather than registry.AdaptFunc adaptations: an
// array Dynamic's Go representation is itself *value.Array, so any
// native parameter typed *value.Array looks like a by-mutable-reference
// pointer to AdaptFunc (spec.md §4.3) even where the intent is a
// read-only array argument. Building the Entry directly sidesteps the
// ambiguity and is also what push(array, value) needs regardless, since
// ByMutRef's reflective pointer dance in registry.AdaptFunc is built for
// scalar *T, not our own already-pointer-shaped composite types.
func registerArrays(reg *registry.Registry) {
	arrT := value.ArrayType()

	reg.Register(&registry.Entry{
		Name:  "len",
		Types: []reflect.Type{arrT},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			arr, _ := args[0].AsArray()
			return value.Int(int64(arr.Len())), nil
		},
	})

	reg.Register(&registry.Entry{
		Name:  "iterator",
		Types: []reflect.Type{arrT},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			return *args[0], nil
		},
	})

	for _, elemT := range []reflect.Type{
		value.IntType(), value.FloatType(), value.StrType(),
		value.BoolType(), value.CharType(), arrT, value.MapType(),
	} {
		reg.Register(&registry.Entry{
			Name:  "push",
			Types: []reflect.Type{arrT, elemT},
			Modes: []registry.ParamMode{registry.ByMutRef, registry.ByValue},
			Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
				arr, ok := args[0].AsArray()
				if !ok {
					return value.Dynamic{}, rterr.NewRuntime(pos, "push: first argument is not an array")
				}
				arr.Elements = append(arr.Elements, args[1].Clone())
				return value.Nil(), nil
			},
		})
	}
}
