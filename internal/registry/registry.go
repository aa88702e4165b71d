// Package registry implements the function registry and the host
// registration facade (spec.md §3 "Function registry", §4.3). A native
// callable is looked up by an exact (name, ordered argument-type-list)
// signature key — no implicit conversions, no subtyping, no variadic
// entries (§3 invariant).
package registry

import (
	"reflect"
	"sync"

	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/token"
)

// ParamMode is the per-slot passing mode a registered entry was built
// with. Only the first parameter may ever be ByMutRef (spec.md §4.3,
// §9 "By-reference first parameter").
type ParamMode int

const (
	ByValue ParamMode = iota
	ByMutRef
)

// Native is the uniform shape every registered callable is adapted to: an
// ordered slice of mutable references to the call's argument Dynamics
// (slot 0 may be the live caller storage in ByMutRef mode; the rest point
// at the evaluated argument values, which AdaptFunc-built entries clone
// before use) plus the call-site position for error attribution.
type Native func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error)

// Entry is one registered signature.
type Entry struct {
	Name  string
	Types []reflect.Type // the signature's argument-type list, in order
	Modes []ParamMode
	Call  Native
}

// key is the exact-match dispatch key: name plus the ordered type list,
// folded into a single string so map lookup stays O(1) without a custom
// Equal/Hash pair.
type key string

func makeKey(name string, types []reflect.Type) key {
	s := name
	for _, t := range types {
		s += "\x00" + t.String()
	}
	return key(s)
}

// Registry maps (name, argument-type-list) to a registered Entry. It is
// read-only during evaluation; mutation (registration) must not race with
// evaluation on the same engine (spec.md §5). When syncMode is enabled a
// RWMutex guards both paths — the Go equivalent of Rhai's `Send + Sync`
// trait bound on registered callables, which Go cannot express as a
// static constraint.
type Registry struct {
	mu       sync.RWMutex
	syncMode bool
	entries  map[key]*Entry
	byName   map[string][]*Entry
}

func New(syncMode bool) *Registry {
	return &Registry{
		syncMode: syncMode,
		entries:  make(map[key]*Entry),
		byName:   make(map[string][]*Entry),
	}
}

// Register installs e, replacing any existing entry with the same
// signature key (§3 invariant: re-registration replaces).
func (r *Registry) Register(e *Entry) {
	if r.syncMode {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	k := makeKey(e.Name, e.Types)
	if old, exists := r.entries[k]; exists {
		r.removeFromNameIndex(old)
	}
	r.entries[k] = e
	r.byName[e.Name] = append(r.byName[e.Name], e)
}

func (r *Registry) removeFromNameIndex(e *Entry) {
	list := r.byName[e.Name]
	for i, cand := range list {
		if cand == e {
			r.byName[e.Name] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Lookup finds the unique entry whose type list equals argTypes exactly.
func (r *Registry) Lookup(name string, argTypes []reflect.Type) (*Entry, bool) {
	if r.syncMode {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	e, ok := r.entries[makeKey(name, argTypes)]
	return e, ok
}

// HasName reports whether any signature is registered under name,
// whatever its argument types.
func (r *Registry) HasName(name string) bool {
	if r.syncMode {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	return len(r.byName[name]) > 0
}

// Count returns the number of registered signatures, for diagnostics and
// tests.
func (r *Registry) Count() int {
	if r.syncMode {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}
	return len(r.entries)
}
