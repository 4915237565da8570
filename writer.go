package keyed

import (
	"encoding/binary"
	"io"

	"github.com/golang/snappy"
)

// SnapshotOptions define snapshot writer specific options.
type SnapshotOptions struct {
	// The compression codec to use.
	// Default: SnappyCompression.
	Compression Compression
}

func (o *SnapshotOptions) norm() *SnapshotOptions {
	var oo SnapshotOptions
	if o != nil {
		oo = *o
	}

	if !oo.Compression.isValid() {
		oo.Compression = SnappyCompression
	}

	return &oo
}

// AppendFunc encodes a value by appending its binary representation to dst.
type AppendFunc[T any] func(dst []byte, value T) ([]byte, error)

// ParseFunc decodes a value from its binary representation. The input buffer
// is only valid for the duration of the call and must be copied if retained.
type ParseFunc[T any] func(p []byte) (T, error)

// --------------------------------------------------------------------

// WriteKeyedVec writes a snapshot of the vector to w, encoding each value
// with app.
func WriteKeyedVec[K Key, T any](w io.Writer, v *KeyedVec[K, T], app AppendFunc[T], o *SnapshotOptions) error {
	sw := newSnapshotWriter()
	sw.uvarint(uint64(len(v.items)))
	for i := range v.items {
		if err := writeValue(sw, app, v.items[i]); err != nil {
			return err
		}
	}
	return sw.flush(w, kindKeyedVec, o)
}

// WriteSlotMap writes a snapshot of the map to w, encoding each occupied
// value with app. Slot states are preserved exactly: a reserved slot is
// stored as a tag with no payload and restores as reserved, and the free
// list round-trips in its original order.
func WriteSlotMap[K Key, T any](w io.Writer, m *SlotMap[K, T], app AppendFunc[T], o *SnapshotOptions) error {
	sw := newSnapshotWriter()
	sw.uvarint(uint64(len(m.slots)))
	for i := range m.slots {
		s := &m.slots[i]
		sw.writeByte(byte(s.state))
		if s.state == slotOccupied {
			if err := writeValue(sw, app, s.value); err != nil {
				return err
			}
		}
	}

	sw.uvarint(uint64(len(m.free)))
	for _, key := range m.free {
		sw.uvarint(uint64(int(key)))
	}
	return sw.flush(w, kindSlotMap, o)
}

// WriteSparseList writes a snapshot of the list to w, encoding each occupied
// value with app. Tombstones are stored as a tag with no payload; the
// occupancy count is derived again on restore.
func WriteSparseList[K Key, T any](w io.Writer, l *SparseList[K, T], app AppendFunc[T], o *SnapshotOptions) error {
	sw := newSnapshotWriter()
	sw.uvarint(uint64(len(l.entries)))
	for i := range l.entries {
		e := &l.entries[i]
		if !e.present {
			sw.writeByte(0)
			continue
		}
		sw.writeByte(1)
		if err := writeValue(sw, app, e.value); err != nil {
			return err
		}
	}
	return sw.flush(w, kindSparseList, o)
}

// WriteStack writes a snapshot of the stack to w, bottom to top, encoding
// each item with app.
func WriteStack[T any](w io.Writer, s *Stack[T], app AppendFunc[T], o *SnapshotOptions) error {
	sw := newSnapshotWriter()
	sw.uvarint(uint64(len(s.items)))
	for i := range s.items {
		if err := writeValue(sw, app, s.items[i]); err != nil {
			return err
		}
	}
	return sw.flush(w, kindStack, o)
}

// --------------------------------------------------------------------

// snapshotWriter accumulates a varint-encoded payload and flushes it as a
// single, optionally compressed, block followed by the snapshot trailer.
type snapshotWriter struct {
	buf []byte // plain buffer
	snp []byte // snappy buffer
	val []byte // value scratch buffer
	tmp []byte // varint scratch buffer
}

func newSnapshotWriter() *snapshotWriter {
	return &snapshotWriter{
		tmp: make([]byte, binary.MaxVarintLen64),
	}
}

func (w *snapshotWriter) uvarint(u uint64) {
	n := binary.PutUvarint(w.tmp, u)
	w.buf = append(w.buf, w.tmp[:n]...)
}

func (w *snapshotWriter) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

// writeValue appends a length-prefixed encoded value to the payload.
func writeValue[T any](w *snapshotWriter, app AppendFunc[T], value T) error {
	p, err := app(w.val[:0], value)
	if err != nil {
		return err
	}
	w.val = p[:0]

	w.uvarint(uint64(len(p)))
	w.buf = append(w.buf, p...)
	return nil
}

func (w *snapshotWriter) flush(dst io.Writer, kind byte, o *SnapshotOptions) error {
	oo := o.norm()

	var block []byte
	switch oo.Compression {
	case SnappyCompression:
		w.snp = snappy.Encode(w.snp[:cap(w.snp)], w.buf)
		if len(w.snp) < len(w.buf)-len(w.buf)/4 {
			block = append(w.snp, blockSnappyCompression)
		} else {
			block = append(w.buf, blockNoCompression)
		}
	default:
		block = append(w.buf, blockNoCompression)
	}
	block = append(block, kind)
	block = append(block, magic...)

	_, err := dst.Write(block)
	return err
}
