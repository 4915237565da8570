package keyed

// slotState is the discriminant of a slot cell.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotReserved
	slotOccupied
)

// slot is a tagged three-state cell. The value field holds the zero value
// unless state is slotOccupied, so "reserved with data" is not representable
// through the accessors below.
type slot[T any] struct {
	state slotState
	value T
}

// take empties the slot and returns its value, if it held one.
func (s *slot[T]) take() (T, bool) {
	value, ok := s.value, s.state == slotOccupied
	*s = slot[T]{}
	return value, ok
}

func (s *slot[T]) set(value T) {
	s.state = slotOccupied
	s.value = value
}

// --------------------------------------------------------------------

// SlotMap is a key/value arena that recycles the slots of removed entries,
// most recently freed first. It supports two-phase insertion: ReserveSlot
// hands out a key before the value exists, InsertReserved fills it in later.
// This is needed when a caller must know its own key (or a peer's) before
// the data is fully constructed, e.g. when building mutually-referential
// graphs.
//
// SlotMap DOES NOT solve the ABA problem: there is no generation counter, so
// a key held across a Remove and a subsequent Insert silently aliases the new
// occupant. Callers assume all responsibility for using keys properly.
//
// The zero value is ready for use. Not safe for concurrent use.
type SlotMap[K Key, T any] struct {
	slots []slot[T]
	free  []K
}

// getSlot acquires a slot in the reserved state, reusing the most recently
// freed slot before growing the backing array.
func (m *SlotMap[K, T]) getSlot() K {
	if n := len(m.free); n > 0 {
		key := m.free[n-1]
		m.free = m.free[:n-1]
		m.slots[int(key)].state = slotReserved
		return key
	}

	key := K(len(m.slots))
	m.slots = append(m.slots, slot[T]{state: slotReserved})
	return key
}

// valid reports whether the key points at a reserved or occupied slot.
func (m *SlotMap[K, T]) valid(key K) bool {
	id := int(key)
	return id >= 0 && id < len(m.slots) && m.slots[id].state != slotEmpty
}

// Insert stores a value and returns its key.
func (m *SlotMap[K, T]) Insert(value T) K {
	key := m.getSlot()
	m.slots[int(key)].set(value)
	return key
}

// ReserveSlot acquires a key whose value will be supplied later via
// InsertReserved. Until then the slot is invisible to Get.
func (m *SlotMap[K, T]) ReserveSlot() K {
	return m.getSlot()
}

// InsertReserved fills a previously reserved slot. It returns
// ErrNotReserved, leaving the caller's value untouched, if the key is
// invalid or its slot is not in the reserved state.
func (m *SlotMap[K, T]) InsertReserved(key K, value T) error {
	if !m.valid(key) || m.slots[int(key)].state != slotReserved {
		return ErrNotReserved
	}

	m.slots[int(key)].set(value)
	return nil
}

// Get returns the value stored under key. Reserved-but-unfilled slots are
// treated as absent.
func (m *SlotMap[K, T]) Get(key K) (T, bool) {
	if p, ok := m.Ptr(key); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the value stored under key, allowing in-place
// mutation. The pointer remains valid until the map grows; do not retain it
// across Insert or ReserveSlot calls.
func (m *SlotMap[K, T]) Ptr(key K) (*T, bool) {
	if !m.valid(key) {
		return nil, false
	}
	if s := &m.slots[int(key)]; s.state == slotOccupied {
		return &s.value, true
	}
	return nil, false
}

// Remove empties the slot under key and returns its value, if it held one.
// The slot, occupied or reserved, becomes eligible for reuse by the next
// Insert or ReserveSlot. Removing an invalid or already-empty key is a no-op
// reported as absence.
func (m *SlotMap[K, T]) Remove(key K) (T, bool) {
	if !m.valid(key) {
		var zero T
		return zero, false
	}

	value, ok := m.slots[int(key)].take()
	m.free = append(m.free, key)
	return value, ok
}

// LastKey returns the key of the highest-index slot regardless of its state,
// or false if no slot was ever allocated.
func (m *SlotMap[K, T]) LastKey() (K, bool) {
	if len(m.slots) == 0 {
		var zero K
		return zero, false
	}
	return K(len(m.slots) - 1), true
}

// NumSlots returns the number of allocated slots, including empty and
// reserved ones.
func (m *SlotMap[K, T]) NumSlots() int {
	return len(m.slots)
}
