package puzzlesim

import (
	"reflect"
	"testing"
)

func TestOrderedMap(t *testing.T) {
	om := NewOrderedMap[string, int]()
	om.Set("c", 3)
	om.Set("a", 1)
	om.Set("b", 2)
	om.Set("a", 10)

	if om.Len() != 3 {
		t.Fatalf("Expected 3 entries, got %d", om.Len())
	}
	if keys := om.Keys(); !reflect.DeepEqual(keys, []string{"c", "a", "b"}) {
		t.Errorf("Keys() = %v, want insertion order", keys)
	}
	if v, ok := om.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}

	if _, ok := om.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}

	var visited []string
	om.Iterate(func(k string, v int) {
		visited = append(visited, k)
	})
	if !reflect.DeepEqual(visited, []string{"c", "a", "b"}) {
		t.Errorf("Iterate visited %v", visited)
	}

	keys := om.Keys()
	keys[0] = "mutated"
	if om.Keys()[0] != "c" {
		t.Error("Keys() should return a copy")
	}
}
