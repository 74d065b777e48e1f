package entries

import "iter"

// Entry is one selectable item: display text plus an opaque payload.
type Entry[T any] struct {
	// String is displayed in the picker and matched against the query.
	String string
	// Data is handed back to the host when the entry is selected.
	Data T
}

// Store is an append-only, ordered collection of entries.
// Callers that need to refresh the set Clear it and append again.
type Store[T any] struct {
	entries    []Entry[T]
	generation uint64
}

// NewStore creates an empty store
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Append adds entries at the end, preserving their order
func (s *Store[T]) Append(entries ...Entry[T]) {
	if len(entries) == 0 {
		return
	}
	s.entries = append(s.entries, entries...)
	s.generation++
}

// Extend appends every entry yielded by seq
func (s *Store[T]) Extend(seq iter.Seq[Entry[T]]) int {
	added := 0
	for entry := range seq {
		s.entries = append(s.entries, entry)
		added++
	}
	if added > 0 {
		s.generation++
	}
	return added
}

// Clear drops all entries. Slices returned by All before the call keep
// their contents.
func (s *Store[T]) Clear() {
	s.entries = nil
	s.generation++
}

// Len returns the number of entries
func (s *Store[T]) Len() int {
	return len(s.entries)
}

// At returns the entry at index i. It panics if i is out of range.
func (s *Store[T]) At(i int) Entry[T] {
	return s.entries[i]
}

// Text returns the display string of entry i
func (s *Store[T]) Text(i int) string {
	return s.entries[i].String
}

// All returns the entries in insertion order. The slice must not be modified.
func (s *Store[T]) All() []Entry[T] {
	return s.entries
}

// Entries iterates over (index, entry) pairs in insertion order
func (s *Store[T]) Entries() iter.Seq2[int, Entry[T]] {
	return func(yield func(int, Entry[T]) bool) {
		for i, entry := range s.entries {
			if !yield(i, entry) {
				return
			}
		}
	}
}

// Generation changes every time the contents change.
// Anything derived from the entries is stale once it differs.
func (s *Store[T]) Generation() uint64 {
	return s.generation
}
