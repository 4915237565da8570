package keyed

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/golang/snappy"
)

// ReadKeyedVec restores a vector from a snapshot, decoding each value with
// parse.
func ReadKeyedVec[K Key, T any](r io.Reader, parse ParseFunc[T]) (*KeyedVec[K, T], error) {
	sr, err := newSnapshotReader(r, kindKeyedVec)
	if err != nil {
		return nil, err
	}

	n, err := sr.count()
	if err != nil {
		return nil, err
	}

	v := &KeyedVec[K, T]{items: make([]T, 0, n)}
	for i := 0; i < n; i++ {
		value, err := readValue(sr, parse)
		if err != nil {
			return nil, err
		}
		v.items = append(v.items, value)
	}
	if err := sr.close(); err != nil {
		return nil, err
	}
	return v, nil
}

// ReadSlotMap restores a map from a snapshot, decoding each occupied value
// with parse. Per-slot states are reconstructed exactly as written,
// including reserved-but-unfilled slots and the free-list order.
func ReadSlotMap[K Key, T any](r io.Reader, parse ParseFunc[T]) (*SlotMap[K, T], error) {
	sr, err := newSnapshotReader(r, kindSlotMap)
	if err != nil {
		return nil, err
	}

	n, err := sr.count()
	if err != nil {
		return nil, err
	}

	m := &SlotMap[K, T]{slots: make([]slot[T], 0, n)}
	for i := 0; i < n; i++ {
		state, err := sr.readByte()
		if err != nil {
			return nil, err
		}

		switch slotState(state) {
		case slotEmpty, slotReserved:
			m.slots = append(m.slots, slot[T]{state: slotState(state)})
		case slotOccupied:
			value, err := readValue(sr, parse)
			if err != nil {
				return nil, err
			}
			m.slots = append(m.slots, slot[T]{state: slotOccupied, value: value})
		default:
			return nil, errBadSnapshot
		}
	}

	fn, err := sr.count()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, fn)
	for i := 0; i < fn; i++ {
		u, err := sr.uvarint()
		if err != nil {
			return nil, err
		}

		// free-list entries must reference distinct empty slots
		id := int(u)
		if u > uint64(math.MaxInt) || id >= len(m.slots) || m.slots[id].state != slotEmpty {
			return nil, errBadSnapshot
		}
		if _, ok := seen[id]; ok {
			return nil, errBadSnapshot
		}
		seen[id] = struct{}{}

		m.free = append(m.free, K(id))
	}
	if err := sr.close(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadSparseList restores a list from a snapshot, decoding each occupied
// value with parse. The occupancy count is derived from the restored
// entries.
func ReadSparseList[K Key, T any](r io.Reader, parse ParseFunc[T]) (*SparseList[K, T], error) {
	sr, err := newSnapshotReader(r, kindSparseList)
	if err != nil {
		return nil, err
	}

	n, err := sr.count()
	if err != nil {
		return nil, err
	}

	l := &SparseList[K, T]{entries: make([]entry[T], 0, n)}
	for i := 0; i < n; i++ {
		present, err := sr.readByte()
		if err != nil {
			return nil, err
		}

		switch present {
		case 0:
			l.entries = append(l.entries, entry[T]{})
		case 1:
			value, err := readValue(sr, parse)
			if err != nil {
				return nil, err
			}
			l.entries = append(l.entries, entry[T]{value: value, present: true})
			l.used++
		default:
			return nil, errBadSnapshot
		}
	}
	if err := sr.close(); err != nil {
		return nil, err
	}
	return l, nil
}

// ReadStack restores a stack from a snapshot, decoding each item with parse.
func ReadStack[T any](r io.Reader, parse ParseFunc[T]) (*Stack[T], error) {
	sr, err := newSnapshotReader(r, kindStack)
	if err != nil {
		return nil, err
	}

	n, err := sr.count()
	if err != nil {
		return nil, err
	}

	s := &Stack[T]{items: make([]T, 0, n)}
	for i := 0; i < n; i++ {
		item, err := readValue(sr, parse)
		if err != nil {
			return nil, err
		}
		s.items = append(s.items, item)
	}
	if err := sr.close(); err != nil {
		return nil, err
	}
	return s, nil
}

// --------------------------------------------------------------------

// snapshotReader validates the snapshot trailer and exposes a cursor over
// the decompressed payload.
type snapshotReader struct {
	payload []byte
	read    int
}

func newSnapshotReader(r io.Reader, kind byte) (*snapshotReader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) < len(magic)+2 {
		return nil, errBadSnapshot
	}

	// parse trailer
	if !bytes.Equal(raw[len(raw)-len(magic):], magic) {
		return nil, errBadMagic
	}
	raw = raw[:len(raw)-len(magic)]

	if raw[len(raw)-1] != kind {
		return nil, errBadKind
	}
	raw = raw[:len(raw)-1]

	var payload []byte
	switch cBitPos := len(raw) - 1; raw[cBitPos] {
	case blockNoCompression:
		payload = raw[:cBitPos]
	case blockSnappyCompression:
		if payload, err = snappy.Decode(nil, raw[:cBitPos]); err != nil {
			return nil, err
		}
	default:
		return nil, errBadCompression
	}

	return &snapshotReader{payload: payload}, nil
}

func (r *snapshotReader) uvarint() (uint64, error) {
	u, n := binary.Uvarint(r.payload[r.read:])
	if n <= 0 {
		return 0, errBadSnapshot
	}
	r.read += n
	return u, nil
}

// count reads a uvarint bounded by the remaining payload size, so that a
// corrupt length cannot trigger an oversized allocation.
func (r *snapshotReader) count() (int, error) {
	u, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if u > uint64(len(r.payload)-r.read) {
		return 0, errBadSnapshot
	}
	return int(u), nil
}

func (r *snapshotReader) readByte() (byte, error) {
	if r.read >= len(r.payload) {
		return 0, errBadSnapshot
	}
	b := r.payload[r.read]
	r.read++
	return b, nil
}

func (r *snapshotReader) bytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.payload)-r.read {
		return nil, errBadSnapshot
	}
	p := r.payload[r.read : r.read+n]
	r.read += n
	return p, nil
}

// close verifies that the payload was fully consumed.
func (r *snapshotReader) close() error {
	if r.read != len(r.payload) {
		return errBadSnapshot
	}
	return nil
}

func readValue[T any](r *snapshotReader, parse ParseFunc[T]) (T, error) {
	var zero T

	u, err := r.uvarint()
	if err != nil {
		return zero, err
	}
	if u > uint64(len(r.payload)-r.read) {
		return zero, errBadSnapshot
	}

	p, err := r.bytes(int(u))
	if err != nil {
		return zero, err
	}
	return parse(p)
}
