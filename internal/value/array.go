package value

import "strings"

// Array is the aliasable backing store for an array Dynamic. It is
// always referenced through a *Array so that indexing into an array
// bound in scope produces a mutable slot the assignment chain can write
// through (§3 Scope / §4.4 Assignment).
type Array struct {
	Elements []Dynamic
}

func NewArray(elems []Dynamic) *Array {
	return &Array{Elements: elems}
}

// Clone deep-clones every element, per Dynamic.Clone's by-value contract.
func (a *Array) Clone() any {
	out := make([]Dynamic, len(a.Elements))
	for i, e := range a.Elements {
		out[i] = e.Clone()
	}
	return &Array{Elements: out}
}

func (a *Array) Len() int { return len(a.Elements) }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
