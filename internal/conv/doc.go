// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between Go's platform-dependent int and fixed-width unsigned
// identifier types.
//
// Use cases:
//   - Turning a positional map key into an identifier of a narrower width
//   - Turning an identifier back into a positional key on 32-bit platforms
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
