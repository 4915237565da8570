package keyed

import "fmt"

// entry is a single SparseList position; a cleared entry is a tombstone.
type entry[T any] struct {
	value   T
	present bool
}

// SparseList is an append/remove sequence that never reuses or reorders
// positions: removal leaves a tombstone so that the surviving elements keep
// their original order and keys. This matters when index order encodes
// semantic order (e.g. instruction sequences); the price is that allocated
// length only shrinks through Pop. Insertion in the middle is not supported
// as it would shift the positions of later elements.
//
// The zero value is ready for use. Not safe for concurrent use. If removal
// is not needed, KeyedVec works similarly without the tombstone overhead.
type SparseList[K Key, T any] struct {
	entries []entry[T]
	used    int
}

// Push appends a value at the next position and returns its key.
func (l *SparseList[K, T]) Push(value T) K {
	l.entries = append(l.entries, entry[T]{value: value, present: true})
	l.used++
	return K(len(l.entries) - 1)
}

// Remove clears the position under key, leaving a tombstone, and returns the
// value if the position held one. It panics if the key is out of range.
func (l *SparseList[K, T]) Remove(key K) (T, bool) {
	e := l.ptr(key)
	value, ok := e.value, e.present
	*e = entry[T]{}
	if ok {
		l.used--
	}
	return value, ok
}

// Pop removes the trailing position outright, shrinking the allocated
// length, and returns the value if that position held one. Popping an empty
// list reports absence.
func (l *SparseList[K, T]) Pop() (T, bool) {
	if len(l.entries) == 0 {
		var zero T
		return zero, false
	}

	e := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	if e.present {
		l.used--
	}
	return e.value, e.present
}

// Extend appends a batch of values as new occupied positions.
func (l *SparseList[K, T]) Extend(values ...T) {
	for _, value := range values {
		l.entries = append(l.entries, entry[T]{value: value, present: true})
	}
	l.used += len(values)
}

// Get returns the value at key, or false if the position is a tombstone. It
// panics if the key is out of range.
func (l *SparseList[K, T]) Get(key K) (T, bool) {
	e := l.ptr(key)
	return e.value, e.present
}

// Ptr returns a pointer to the value at key for in-place mutation, or false
// if the position is a tombstone. It panics if the key is out of range. The
// pointer remains valid until the list grows.
func (l *SparseList[K, T]) Ptr(key K) (*T, bool) {
	e := l.ptr(key)
	if !e.present {
		return nil, false
	}
	return &e.value, true
}

// Len returns the number of positions currently holding a value.
func (l *SparseList[K, T]) Len() int {
	return l.used
}

// NumSlots returns the allocated length, tombstones included.
func (l *SparseList[K, T]) NumSlots() int {
	return len(l.entries)
}

// Iter returns an iterator over the occupied positions in original insertion
// order, skipping tombstones. The list must not be modified while iterating;
// obtain a fresh iterator to restart.
func (l *SparseList[K, T]) Iter() *ListIter[K, T] {
	return &ListIter[K, T]{list: l, pos: -1}
}

func (l *SparseList[K, T]) ptr(key K) *entry[T] {
	id := int(key)
	if id < 0 || id >= len(l.entries) {
		panic(fmt.Sprintf("keyed: key %d out of range [0, %d)", id, len(l.entries)))
	}
	return &l.entries[id]
}

// --------------------------------------------------------------------

// ListIter iterates over the occupied positions of a SparseList.
type ListIter[K Key, T any] struct {
	list *SparseList[K, T]
	pos  int
}

// Next advances the cursor to the next occupied position and returns true if
// successful.
func (i *ListIter[K, T]) Next() bool {
	for i.pos+1 < len(i.list.entries) {
		i.pos++
		if i.list.entries[i.pos].present {
			return true
		}
	}

	i.pos = len(i.list.entries)
	return false
}

// Key returns the key of the current entry.
func (i *ListIter[K, T]) Key() K { return K(i.pos) }

// Value returns the value of the current entry.
func (i *ListIter[K, T]) Value() T { return i.list.entries[i.pos].value }

// Ptr returns a pointer to the value of the current entry, allowing in-place
// mutation.
func (i *ListIter[K, T]) Ptr() *T { return &i.list.entries[i.pos].value }
