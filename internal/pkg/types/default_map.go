package types

// DefaultMap wraps a map and creates missing entries on first access with a
// user supplied constructor.
//
//	m := NewDefaultMap[string, []string](func() []string { return nil })
//	m.Set("k", append(m.Get("k"), "v"))
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap using defaultFunc for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value for key, storing and returning a default if absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Len returns the number of stored keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap exposes the underlying map.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
