package value

import "testing"

func TestMapSetPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("b", Int(2))
	m.Set("a", Int(1))
	m.Set("c", Int(3))

	keys := m.Keys()
	want := []string{"b", "a", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys()[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestMapSetOverwriteKeepsOriginalPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(99))

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("overwriting a key should not move it: got %v", keys)
	}
	v, _ := m.Get("a")
	if v.Raw() != int64(99) {
		t.Fatalf("overwrite did not take, got %v", v.Raw())
	}
}

func TestMapHasAndGet(t *testing.T) {
	m := NewMap()
	m.Set("x", Str("hi"))

	if !m.Has("x") {
		t.Fatalf("Has(x) should be true")
	}
	if m.Has("y") {
		t.Fatalf("Has(y) should be false")
	}
	if _, ok := m.Get("y"); ok {
		t.Fatalf("Get(y) should fail")
	}
}

func TestMapSlotMutatesInPlace(t *testing.T) {
	m := NewMap()
	m.Set("count", Int(1))

	slot, ok := m.Slot("count")
	if !ok {
		t.Fatalf("Slot(count) should succeed")
	}
	*slot = Int(2)

	v, _ := m.Get("count")
	if v.Raw() != int64(2) {
		t.Fatalf("mutation through Slot did not persist: got %v", v.Raw())
	}
}

func TestMapCloneIsDeepAndIndependent(t *testing.T) {
	inner := NewArray([]Dynamic{Int(1)})
	m := NewMap()
	m.Set("items", New(inner))

	cloned := m.Clone().(*Map)
	clonedItems, _ := func() (*Array, bool) {
		v, _ := cloned.Get("items")
		return v.AsArray()
	}()

	if clonedItems == inner {
		t.Fatalf("Clone() aliased the original array, expected a deep copy")
	}

	clonedItems.Elements[0] = Int(42)
	if inner.Elements[0].Raw() != int64(1) {
		t.Fatalf("mutating the clone affected the original: got %v", inner.Elements[0].Raw())
	}
}
