package jsonstruct

import (
	"iter"
	"slices"

	json "github.com/goccy/go-json"
)

// Set is a collection of unique values that remembers insertion order.
// It encodes to and from a JSON array. The zero value is an empty set.
// A Set is not safe for concurrent mutation.
type Set[T comparable] struct {
	index  map[T]int
	values []T
}

// NewSet returns a set holding values in first-seen order. Later
// duplicates are dropped.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.values)
	s.values = append(s.values, v)
	return true
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.values = slices.Delete(s.values, i, i+1)
	for j := i; j < len(s.values); j++ {
		s.index[s.values[j]] = j
	}
	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

// Len returns the number of values.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Values returns a copy of the values in insertion order.
func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.values)
}

// All iterates over the values in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// MarshalJSON encodes the set as an array.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	if s.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.values)
}

// UnmarshalJSON replaces the contents with the decoded array, dropping
// duplicates.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = Set[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return nil
}
