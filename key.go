package keyed

import "math"

// Key is the contract implemented by the nominal index types used with the
// containers in this package. A key wraps a non-negative integer identity
// which is only meaningful relative to the container instance that issued it.
//
// Declare one distinct key type per logical container domain so that keys
// from one container cannot type-check against another:
//
//	type InstrID keyed.ID
//	type BlockID keyed.ID
//
// Converting between an identity and a key is plain type conversion: K(i)
// mints a key, int(k) recovers the identity.
type Key interface {
	~int
}

// ID is a ready-made key type for callers that only need a single domain.
type ID int

// Invalid returns the conventional "no key" sentinel for a key type. The
// containers never issue this value themselves.
func Invalid[K Key]() K {
	return K(math.MaxInt)
}

// IsInvalid reports whether k is the "no key" sentinel.
func IsInvalid[K Key](k K) bool {
	return int(k) == math.MaxInt
}
