package keyed

import "fmt"

// KeyedVec is an append-only sequence of values addressed by a nominal key
// type instead of a raw int. Values can never be removed, so an issued key
// stays valid for the lifetime of the vector and its length only grows.
//
// The zero value is ready for use. Out-of-range access is a programming
// error and panics; use SlotMap when keys can outlive their values.
type KeyedVec[K Key, T any] struct {
	items []T
}

// Insert appends a value and returns its key. It never fails.
func (v *KeyedVec[K, T]) Insert(value T) K {
	key := K(len(v.items))
	v.items = append(v.items, value)
	return key
}

// Get returns the value stored under key. It panics if the key is out of
// range.
func (v *KeyedVec[K, T]) Get(key K) T {
	return *v.Ptr(key)
}

// Ptr returns a pointer to the value stored under key, allowing in-place
// mutation. It panics if the key is out of range. The pointer remains valid
// until the next Insert.
func (v *KeyedVec[K, T]) Ptr(key K) *T {
	id := int(key)
	if id < 0 || id >= len(v.items) {
		panic(fmt.Sprintf("keyed: key %d out of range [0, %d)", id, len(v.items)))
	}
	return &v.items[id]
}

// Len returns the number of stored values.
func (v *KeyedVec[K, T]) Len() int {
	return len(v.items)
}
