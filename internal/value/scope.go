package value

// entry is one scope binding: a name, its current value, and whether it
// is const. Constness is a static property fixed at creation (§3 Scope
// invariant: a const entry is never mutated after creation).
type entry struct {
	name    string
	value   Dynamic
	isConst bool
}

// Scope is an ordered stack of bindings (§3 "Scope"). Lookup scans from
// most-recently-pushed to oldest, which is how shadowing works: a `let x`
// inside a block hides an outer `x` until the block's mark is popped.
//
// Scope is a single flat slice with integer marks rather than a chain of
// per-block maps: an ordered stack of named bindings, where a block's
// entries are just a contiguous suffix of one slice, truncated on exit.
// This is cheaper to push/pop than a tree of nested environments and
// matches the "mark"/"truncate" vocabulary the rest of this package uses.
type Scope struct {
	entries []entry
}

// NewScope creates an empty top-level scope.
func NewScope() *Scope {
	return &Scope{}
}

// Mark returns a truncation point capturing the current scope depth; pass
// it to Truncate on block exit.
func (s *Scope) Mark() int { return len(s.entries) }

// Truncate drops every binding pushed since mark, implementing block
// exit.
func (s *Scope) Truncate(mark int) {
	s.entries = s.entries[:mark]
}

// Declare pushes a new binding, shadowing any existing one of the same
// name. Used for `let`/`const` and for binding function parameters.
func (s *Scope) Declare(name string, v Dynamic, isConst bool) {
	s.entries = append(s.entries, entry{name: name, value: v, isConst: isConst})
}

// Lookup scans from most-recent to oldest and returns the binding's
// current value.
func (s *Scope) Lookup(name string) (Dynamic, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			return s.entries[i].value, true
		}
	}
	return Dynamic{}, false
}

// IsConst reports whether the nearest binding of name is const. Used by
// the evaluator to reject assignment at the lvalue chain's root (§4.4).
func (s *Scope) IsConst(name string) (isConst bool, found bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			return s.entries[i].isConst, true
		}
	}
	return false, false
}

// Set overwrites the nearest binding of name. The caller is responsible
// for having already rejected const roots; Set itself does not re-check constness, so array/map element
// mutation — which writes through the Dynamic's aliased *Array/*Map
// rather than through Set — never pays for a redundant check.
func (s *Scope) Set(name string, v Dynamic) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			s.entries[i].value = v
			return true
		}
	}
	return false
}

// EachConst invokes fn for every const binding currently in scope, oldest
// first. Used by the evaluator to seed a user-defined function's fresh
// scope with the global consts it is allowed to see (spec.md §9 "No
// closures": functions see only their parameters and global consts).
func (s *Scope) EachConst(fn func(name string, v Dynamic)) {
	for _, e := range s.entries {
		if e.isConst {
			fn(e.name, e.value)
		}
	}
}

// Slot returns a pointer to the live binding slot for name, so callers
// can mutate it in place (e.g. after resolving an index/member chain
// rooted at this binding). Returns nil if name is not bound.
func (s *Scope) Slot(name string) *Dynamic {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			return &s.entries[i].value
		}
	}
	return nil
}
