package registry

import (
	"reflect"
	"testing"

	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/token"
)

func intAddEntry() *Entry {
	return &Entry{
		Name:  "+",
		Types: []reflect.Type{value.IntType(), value.IntType()},
		Modes: []ParamMode{ByValue, ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			a, _ := args[0].AsInt()
			b, _ := args[1].AsInt()
			return value.Int(a + b), nil
		},
	}
}

func TestRegisterAndLookupExactSignature(t *testing.T) {
	r := New(false)
	r.Register(intAddEntry())

	entry, ok := r.Lookup("+", []reflect.Type{value.IntType(), value.IntType()})
	if !ok {
		t.Fatalf("Lookup should find the registered (+, int, int) signature")
	}

	result, err := entry.Call([]*value.Dynamic{ptr(value.Int(2)), ptr(value.Int(3))}, token.None())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := result.AsInt(); v != 5 {
		t.Fatalf("2+3 = %d, want 5", v)
	}
}

func TestLookupMissesOnDifferentTypes(t *testing.T) {
	r := New(false)
	r.Register(intAddEntry())

	if _, ok := r.Lookup("+", []reflect.Type{value.FloatType(), value.FloatType()}); ok {
		t.Fatalf("Lookup should not find a (+, float, float) signature that was never registered")
	}
}

func TestRegisterReplacesIdenticalSignature(t *testing.T) {
	r := New(false)
	r.Register(intAddEntry())

	replaced := &Entry{
		Name:  "+",
		Types: []reflect.Type{value.IntType(), value.IntType()},
		Modes: []ParamMode{ByValue, ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			return value.Int(-1), nil
		},
	}
	r.Register(replaced)

	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 after re-registering the same signature", r.Count())
	}

	entry, _ := r.Lookup("+", []reflect.Type{value.IntType(), value.IntType()})
	result, _ := entry.Call(nil, token.None())
	if v, _ := result.AsInt(); v != -1 {
		t.Fatalf("expected the replaced entry to win, got %d", v)
	}
}

func TestHasNameAcrossOverloads(t *testing.T) {
	r := New(false)
	r.Register(intAddEntry())
	r.Register(&Entry{
		Name:  "+",
		Types: []reflect.Type{value.StrType(), value.StrType()},
		Modes: []ParamMode{ByValue, ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			a, _ := args[0].AsString()
			b, _ := args[1].AsString()
			return value.Str(a + b), nil
		},
	})

	if !r.HasName("+") {
		t.Fatalf("HasName(+) should be true, two overloads are registered")
	}
	if r.HasName("-") {
		t.Fatalf("HasName(-) should be false, nothing registered under that name")
	}
	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
}

func TestSyncModeGuardsConcurrentAccess(t *testing.T) {
	r := New(true)
	r.Register(intAddEntry())

	entry, ok := r.Lookup("+", []reflect.Type{value.IntType(), value.IntType()})
	if !ok {
		t.Fatalf("Lookup under syncMode should still find the registered entry")
	}
	result, _ := entry.Call([]*value.Dynamic{ptr(value.Int(1)), ptr(value.Int(1))}, token.None())
	if v, _ := result.AsInt(); v != 2 {
		t.Fatalf("1+1 = %d, want 2", v)
	}
}

func ptr(d value.Dynamic) *value.Dynamic { return &d }
