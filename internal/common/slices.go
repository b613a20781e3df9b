package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// OrderedSet keeps unique values in first-insertion order.
// The zero value is ready to use.
type OrderedSet[T comparable] struct {
	seen   map[T]struct{}
	values []T
}

// Add inserts v and reports whether it was new. Duplicates keep their original position.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.seen == nil {
		s.seen = make(map[T]struct{})
	}

	if _, ok := s.seen[v]; ok {
		return false
	}

	s.seen[v] = struct{}{}
	s.values = append(s.values, v)

	return true
}

// Len returns the number of unique values.
func (s *OrderedSet[T]) Len() int {
	return len(s.values)
}

// Values returns a copy of the values in insertion order.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)

	return out
}
