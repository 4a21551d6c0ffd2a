package ids

import (
	"strconv"

	"github.com/HolographicTripwire/ids/internal/conv"
)

// Identifier is the constraint satisfied by every identifier domain.
//
// Declare a domain type per identifier space so that identifiers of different
// trackers cannot be mixed up:
//
//	type NodeID uint16
//	type EdgeID uint32
type Identifier interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Ready-made identifier widths.
type (
	ID8  uint8
	ID16 uint16
	ID32 uint32
	ID64 uint64
)

// First returns the first identifier of domain I.
func First[I Identifier]() I {
	return 0
}

// Max returns the last identifier of domain I.
func Max[I Identifier]() I {
	return conv.MaxOf[I]()
}

// Bits returns the width of domain I.
func Bits[I Identifier]() int {
	return conv.BitsOf[I]()
}

// Next returns the successor of id. It fails with an *ExhaustedError when id
// is the last identifier of its domain; it never wraps around.
func Next[I Identifier](id I) (I, error) {
	if id == Max[I]() {
		return id, &ExhaustedError{Bits: Bits[I]()}
	}
	return id + 1, nil
}

// FromIndex converts a positional index into an identifier. It fails with a
// *RangeError when n is negative or wider than I.
func FromIndex[I Identifier](n int) (I, error) {
	id, err := conv.IntToUnsigned[I](n)
	if err != nil {
		return 0, &RangeError{Value: strconv.Itoa(n), Bits: Bits[I](), cause: err}
	}
	return id, nil
}

// ToIndex converts an identifier into a positional index. It fails with a
// *RangeError when id exceeds the int range of the platform.
func ToIndex[I Identifier](id I) (int, error) {
	n, err := conv.UnsignedToInt(id)
	if err != nil {
		return 0, &RangeError{Value: strconv.FormatUint(uint64(id), 10), Bits: strconv.IntSize - 1, cause: err}
	}
	return n, nil
}
