package keyed

import "errors"

var magic = []byte{73, 212, 17, 90, 183, 46, 129, 7}

const (
	blockNoCompression     = 0
	blockSnappyCompression = 1
)

// ErrNotReserved is returned by SlotMap.InsertReserved when the key does not
// point at a reserved slot.
var ErrNotReserved = errors.New("keyed: slot is not reserved")

var (
	errBadMagic       = errors.New("keyed: bad magic byte sequence")
	errBadKind        = errors.New("keyed: snapshot kind mismatch")
	errBadCompression = errors.New("keyed: bad compression codec")
	errBadSnapshot    = errors.New("keyed: malformed snapshot")
)

// Snapshot kind tags, stored in the snapshot trailer so that a blob written
// for one container type cannot be restored into another.
const (
	kindKeyedVec   = 1
	kindSlotMap    = 2
	kindSparseList = 3
	kindStack      = 4
)

// --------------------------------------------------------------------

// Compression is the compression codec used for snapshot payloads.
type Compression byte

func (c Compression) isValid() bool {
	return c >= SnappyCompression && c <= unknownCompression
}

// Supported compression codecs
const (
	SnappyCompression Compression = iota
	NoCompression
	unknownCompression
)
