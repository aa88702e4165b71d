package registry

import (
	"fmt"
	"reflect"

	"github.com/cwbudde/rscript/internal/rterr"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/token"
)

// MaxArity bounds the arity of an adapted native callable (spec.md §4.3
// "bounded"; pinned to 20 per original_source/src/fn_register.rs's
// `def_register!(A, B, C, D, E, F, G, H, J, K, L, M, N, P, Q, R, S, T, U,
// V)` macro expansion — see SPEC_FULL.md "Supplemented features").
const MaxArity = 20

var errorType = reflect.TypeOf((*error)(nil)).Elem()
var dynamicType = reflect.TypeOf(value.Dynamic{})

// ErrPointerNotFirst is returned by AdaptFunc when a pointer parameter
// appears anywhere but the first slot — spec.md §4.3 restricts
// by-mutable-reference passing to the first argument only.
var ErrPointerNotFirst = fmt.Errorf("registry: only the first parameter may be passed by mutable reference")

// ErrArity is returned when fn's arity exceeds MaxArity.
var ErrArity = fmt.Errorf("registry: function exceeds the %d-argument registration limit", MaxArity)

// ErrNotFunc is returned when fn is not a func value.
var ErrNotFunc = fmt.Errorf("registry: register target is not a function")

// ErrBadReturn is returned when fn's return shape matches none of the
// three registration flavors (typed infallible, dynamic passthrough,
// fallible).
var ErrBadReturn = fmt.Errorf("registry: unsupported return signature")

// AdaptFunc builds an Entry from an arbitrary Go func via reflection,
// implementing the host registration facade (spec.md §4.3). It detects
// the return flavor automatically:
//
//	func(A, B, ...) T              -> infallible, T boxed into Dynamic
//	func(A, B, ...) value.Dynamic  -> dynamic passthrough
//	func(A, B, ...) (T, error)     -> fallible, error surfaces with the
//	                                   call position stamped on it
//	func(A, B, ...) (value.Dynamic, error) -> fallible, dynamic result
//
// A first parameter of pointer kind (e.g. *int64) is the by-mutable-
// reference slot: the adapter copies the caller slot's payload, without
// cloning it, into a fresh *T, calls fn, and writes the value fn left
// there back into the caller's slot, so fn's mutation is visible to the
// caller. Any other parameter being a pointer is ErrPointerNotFirst.
func AdaptFunc(name string, fn any) (*Entry, error) {
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		return nil, ErrNotFunc
	}
	if rt.IsVariadic() {
		return nil, fmt.Errorf("registry: variadic functions are not supported")
	}
	arity := rt.NumIn()
	if arity > MaxArity {
		return nil, ErrArity
	}

	types := make([]reflect.Type, arity)
	modes := make([]ParamMode, arity)
	paramTypes := make([]reflect.Type, arity) // the Go param type actually passed to fn
	for i := 0; i < arity; i++ {
		pt := rt.In(i)
		if pt.Kind() == reflect.Pointer {
			if i != 0 {
				return nil, ErrPointerNotFirst
			}
			modes[i] = ByMutRef
			types[i] = pt.Elem()
			paramTypes[i] = pt
		} else {
			modes[i] = ByValue
			types[i] = pt
			paramTypes[i] = pt
		}
	}

	callFn, err := buildCaller(name, rv, rt, arity, modes, paramTypes)
	if err != nil {
		return nil, err
	}

	return &Entry{Name: name, Types: types, Modes: modes, Call: callFn}, nil
}

func buildCaller(name string, rv reflect.Value, rt reflect.Type, arity int, modes []ParamMode, paramTypes []reflect.Type) (Native, error) {
	numOut := rt.NumOut()

	fallible := false
	dynamicReturn := false

	switch numOut {
	case 1:
		if rt.Out(0) == dynamicType {
			dynamicReturn = true
		}
	case 2:
		if rt.Out(1) != errorType {
			return nil, ErrBadReturn
		}
		fallible = true
		if rt.Out(0) == dynamicType {
			dynamicReturn = true
		}
	default:
		return nil, ErrBadReturn
	}

	return func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
		if len(args) != arity {
			return value.Dynamic{}, rterr.NewFunctionArgsMismatch(pos, name, arity, len(args))
		}
		in := make([]reflect.Value, arity)
		for i := 0; i < arity; i++ {
			if modes[i] == ByMutRef {
				// Copy the caller slot's payload (not cloned) into a
				// fresh *T; the value fn leaves there is written back
				// into the caller's slot after the call.
				ptr := reflect.New(paramTypes[i].Elem())
				ptr.Elem().Set(reflect.ValueOf(args[i].Raw()).Convert(paramTypes[i].Elem()))
				in[i] = ptr
			} else if paramTypes[i] == dynamicType {
				// A value.Dynamic parameter takes the argument's clone as is.
				in[i] = reflect.ValueOf(args[i].Clone())
			} else {
				raw := args[i].Clone().Raw()
				in[i] = reflect.ValueOf(raw).Convert(paramTypes[i])
			}
		}

		out := rv.Call(in)

		// Write back the mutated ByMutRef slot, if any.
		if arity > 0 && modes[0] == ByMutRef {
			newVal := in[0].Elem().Interface()
			*args[0] = value.New(newVal)
		}

		var result value.Dynamic
		if numOut >= 1 {
			if dynamicReturn {
				result = out[0].Interface().(value.Dynamic)
			} else {
				result = value.New(out[0].Interface())
			}
		} else {
			result = value.Nil()
		}

		if fallible {
			errVal := out[numOut-1].Interface()
			if errVal != nil {
				err := errVal.(error)
				return value.Dynamic{}, stampPosition(err, pos)
			}
		}
		return result, nil
	}, nil
}

// PositionStamper is implemented by runtime errors (rterr.ErrArithmetic,
// notably) that record where they were raised, so stampPosition can set
// it at the call site per spec.md §4.3 "Fallible" registration flavor.
type PositionStamper interface {
	StampPosition(token.Position)
}

func stampPosition(err error, pos token.Position) error {
	if ps, ok := err.(PositionStamper); ok {
		ps.StampPosition(pos)
		return err
	}
	return rterr.NewRuntime(pos, err.Error())
}
