// Package value implements the type-erased Dynamic value carrier (spec.md
// §3 "Dynamic value") and the evaluator's Scope (§3 "Scope"). Dynamic
// preserves run-time type identity via reflect.Type so the function
// registry (internal/registry) can dispatch on exact argument-type
// signatures, and values are always cloned when passed by value.
package value

import (
	"fmt"
	"reflect"
)

// Unit is the value of the "no useful result" type — what a statement or
// an if-with-no-else-taken produces.
type Unit struct{}

func (Unit) String() string { return "()" }

// Char is the primitive character type, a single Unicode code point.
type Char rune

func (c Char) String() string { return string(rune(c)) }

// Dynamic is a type-erased value. The zero Dynamic carries no payload:
// Type and String report it as Unit, while IsUnit reports false for it.
type Dynamic struct {
	v any
}

// New wraps an arbitrary Go value (including a host-registered type) as a
// Dynamic.
func New(v any) Dynamic {
	if v == nil {
		return Dynamic{v: Unit{}}
	}
	return Dynamic{v: v}
}

// Nil is the Unit dynamic value.
func Nil() Dynamic { return Dynamic{v: Unit{}} }

// Raw returns the wrapped Go value.
func (d Dynamic) Raw() any { return d.v }

// Type returns the run-time type identity used for registry dispatch.
func (d Dynamic) Type() reflect.Type {
	if d.v == nil {
		return reflect.TypeOf(Unit{})
	}
	return reflect.TypeOf(d.v)
}

// TypeName renders a short, script-facing type name for diagnostics.
func (d Dynamic) TypeName() string {
	switch d.v.(type) {
	case Unit:
		return "()"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case Char:
		return "char"
	case *Array:
		return "array"
	case *Map:
		return "map"
	default:
		return d.Type().String()
	}
}

func (d Dynamic) String() string {
	switch v := d.v.(type) {
	case nil:
		return "()"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Clone returns a value clone following the registered type's clone
// semantics: primitives copy trivially, Array/Map clone recursively, and
// any other host type is cloned via its own Clone() method if it
// implements Cloner, or copied by value otherwise (the Go assignment
// already being a value copy for non-pointer host types).
func (d Dynamic) Clone() Dynamic {
	switch v := d.v.(type) {
	case *Array:
		return Dynamic{v: v.Clone()}
	case *Map:
		return Dynamic{v: v.Clone()}
	case Cloner:
		return Dynamic{v: v.Clone()}
	default:
		return Dynamic{v: v}
	}
}

// Cloner is implemented by host-registered types that need custom clone
// semantics (e.g. reference types that must deep-copy on by-value pass).
type Cloner interface {
	Clone() any
}

// Bool, Int, Float, Str, Ch construct primitive Dynamics.
func Bool(b bool) Dynamic       { return Dynamic{v: b} }
func Int(i int64) Dynamic       { return Dynamic{v: i} }
func Float(f float64) Dynamic   { return Dynamic{v: f} }
func Str(s string) Dynamic      { return Dynamic{v: s} }
func Ch(c rune) Dynamic         { return Dynamic{v: Char(c)} }

// AsBool, AsInt, AsFloat, AsString, AsChar extract the primitive payload.
func (d Dynamic) AsBool() (bool, bool)     { b, ok := d.v.(bool); return b, ok }
func (d Dynamic) AsInt() (int64, bool)     { i, ok := d.v.(int64); return i, ok }
func (d Dynamic) AsFloat() (float64, bool) { f, ok := d.v.(float64); return f, ok }
func (d Dynamic) AsString() (string, bool) { s, ok := d.v.(string); return s, ok }
func (d Dynamic) AsChar() (rune, bool) {
	c, ok := d.v.(Char)
	return rune(c), ok
}
func (d Dynamic) AsArray() (*Array, bool) { a, ok := d.v.(*Array); return a, ok }
func (d Dynamic) AsMap() (*Map, bool)     { m, ok := d.v.(*Map); return m, ok }
func (d Dynamic) IsUnit() bool            { _, ok := d.v.(Unit); return ok }

var (
	boolType  = reflect.TypeOf(false)
	intType   = reflect.TypeOf(int64(0))
	floatType = reflect.TypeOf(float64(0))
	strType   = reflect.TypeOf("")
	charType  = reflect.TypeOf(Char(0))
	unitType  = reflect.TypeOf(Unit{})
	arrayType = reflect.TypeOf(&Array{})
	mapType   = reflect.TypeOf(&Map{})
)

// BoolType, IntType, etc. expose the canonical reflect.Type for each
// built-in primitive, for registries and host signatures to key off of.
func BoolType() reflect.Type  { return boolType }
func IntType() reflect.Type   { return intType }
func FloatType() reflect.Type { return floatType }
func StrType() reflect.Type   { return strType }
func CharType() reflect.Type  { return charType }
func UnitType() reflect.Type  { return unitType }
func ArrayType() reflect.Type { return arrayType }
func MapType() reflect.Type   { return mapType }
