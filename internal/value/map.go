package value

import "strings"

// Map is the aliasable backing store for a map Dynamic. Property order is
// preserved from the literal (or insertion order for programmatically
// built maps), matching spec.md's "ordered list of (property-name,
// expression)" data model. Values are stored behind pointers (rather than
// map[string]Dynamic) so the evaluator's lvalue chain resolver
// (internal/eval's resolveChain) can hand back a live, writable slot for
// `obj.prop = ...` the same way Scope.Slot does for a plain binding.
type Map struct {
	keys   []string
	values map[string]*Dynamic
}

func NewMap() *Map {
	return &Map{values: make(map[string]*Dynamic)}
}

func (m *Map) Get(key string) (Dynamic, bool) {
	v, ok := m.values[key]
	if !ok {
		return Dynamic{}, false
	}
	return *v, true
}

// Slot returns a pointer to the live value slot for key, for in-place
// mutation through an assignment chain.
func (m *Map) Slot(key string) (*Dynamic, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts or overwrites key, preserving first-insertion order.
func (m *Map) Set(key string, v Dynamic) {
	if existing, exists := m.values[key]; exists {
		*existing = v
		return
	}
	m.keys = append(m.keys, key)
	stored := v
	m.values[key] = &stored
}

func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *Map) Len() int { return len(m.keys) }

func (m *Map) Clone() any {
	out := NewMap()
	for _, k := range m.keys {
		v, _ := m.Get(k)
		out.Set(k, v.Clone())
	}
	return out
}

func (m *Map) String() string {
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		v, _ := m.Get(k)
		parts = append(parts, k+": "+v.String())
	}
	return "#{" + strings.Join(parts, ", ") + "}"
}
