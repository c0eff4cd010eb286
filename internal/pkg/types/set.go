package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a hash set for comparable types. It is mutable: Add and Delete
// modify the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes values from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is in the set. A nil set has no members.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// ToIter returns an iterator over the set members in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the set members in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the members of an ordered set in ascending order.
func Sorted[T interface {
	comparable
	~string | ~int | ~int64 | ~uint64
}](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
