package conv

import (
	"fmt"
	"math"
)

// Unsigned is the set of unsigned integer types the checked casts accept.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// MaxOf returns the largest value representable by U.
func MaxOf[U Unsigned]() U {
	return ^U(0)
}

// IntToUnsigned converts int to U safely.
func IntToUnsigned[U Unsigned](v int) (U, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to unsigned (negative)", v)
	}
	if uint64(v) > uint64(MaxOf[U]()) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %d-bit unsigned (too large)", v, BitsOf[U]())
	}
	return U(v), nil
}

// UnsignedToInt converts U to int safely.
func UnsignedToInt[U Unsigned](v U) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", uint64(v))
	}
	return int(v), nil
}

// BitsOf returns the width of U in bits.
func BitsOf[U Unsigned]() int {
	n := 0
	for m := uint64(MaxOf[U]()); m != 0; m >>= 1 {
		n++
	}
	return n
}
