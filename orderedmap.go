package puzzlesim

// OrderedMap is a map that remembers the order in which keys were first
// inserted.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		values: make(map[K]V),
	}
}

// Set adds a key-value pair to the map. Updating an existing key keeps its
// original position.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

// Get retrieves a value from the map by key.
func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, exists := om.values[key]
	return val, exists
}

// Keys returns a copy of the keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	return append([]K(nil), om.keys...)
}

// Iterate calls f for each key-value pair in insertion order.
func (om *OrderedMap[K, V]) Iterate(f func(key K, value V)) {
	for _, k := range om.keys {
		f(k, om.values[k])
	}
}

// Len returns the number of elements in the map.
func (om *OrderedMap[K, V]) Len() int {
	return len(om.keys)
}
