/*
Package keyed contains arena-style, index-based containers which are
addressed by lightweight, type-distinct keys instead of raw pointers or
untyped integers.

Host systems (compilers, parsers, simulators) declare one nominal key type
per logical container domain, so that a key issued by one container family
cannot type-check against another:

	type InstrID keyed.ID
	type BlockID keyed.ID

Three container variants share the key contract. KeyedVec is append-only and
never invalidates a key. SlotMap recycles the slots of removed entries
through a LIFO free list and supports two-phase insertion via slot
reservation. SparseList removes by tombstone so that the surviving elements
keep their original order. None of the containers carry a generation
counter: a key held across a removal and a subsequent insertion silently
aliases the new occupant (the ABA problem), and avoiding that is the
caller's responsibility.

Snapshot Format Documentation

Each container serializes into a single self-describing blob.

	Snapshot layout:
	+----------------------------+----------------------+---------------+-----------------+
	| payload (maybe compressed) | compression (1-byte) | kind (1-byte) | magic (8 bytes) |
	+----------------------------+----------------------+---------------+-----------------+

The kind byte ties a blob to the container type it was written from. The
payload is varint-encoded and snappy-compressed unless compression is
disabled or would not pay off.

	KeyedVec payload:
	+----------------+--------------------+------------------+-------+
	| count (varint) | value len (varint) | value (varlen)   |  ...  |
	+----------------+--------------------+------------------+-------+

	SlotMap payload:
	+---------------------+----------------+- - - -+---------------------+------------------+- - - -+
	| slot count (varint) | slot 1         |  ...  | free count (varint) | free id (varint) |  ...  |
	+---------------------+----------------+- - - -+---------------------+------------------+- - - -+

	Slot:
	+----------------+---------------------------------------+
	| state (1-byte) | value len + value (occupied only)     |
	+----------------+---------------------------------------+

A reserved slot is stored as its state tag alone and restores as reserved,
never as empty or occupied. Free-list ids are stored bottom to top.

	SparseList payload:
	+---------------------+-------------------+-----------------------------------+-------+
	| slot count (varint) | present (1-byte)  | value len + value (present only)  |  ...  |
	+---------------------+-------------------+-----------------------------------+-------+

	Stack payload (bottom to top):
	+----------------+--------------------+------------------+-------+
	| count (varint) | value len (varint) | value (varlen)   |  ...  |
	+----------------+--------------------+------------------+-------+
*/
package keyed
