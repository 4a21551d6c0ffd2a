package ids

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a value does not fit the target integer
	// domain. It is recoverable: retry with a wider identifier or reject the
	// input.
	ErrOutOfRange = errors.New("identifier out of range")

	// ErrIdentifiersExhausted reports that an identifier domain has no
	// successor left. Next returns it; Counter and Tracker raise it as a
	// Defect.
	ErrIdentifiersExhausted = errors.New("identifiers exhausted")

	// ErrLockPoisoned is returned when a handle was left poisoned by a holder
	// that panicked or gave up while holding its lock.
	ErrLockPoisoned = errors.New("lock poisoned")

	// ErrAlreadyTracked is returned by Adopt for a handle the tracker
	// already holds.
	ErrAlreadyTracked = errors.New("handle already tracked")

	// ErrIncompleteRemap reports that an UpdatableStore received a remapping
	// lacking an identifier it holds. It is only ever raised as a Defect.
	ErrIncompleteRemap = errors.New("incomplete remap")
)

// RangeError indicates that a value cannot be represented in the target
// domain.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type RangeError struct {
	Value string // offending value
	Bits  int    // width of the target domain
	cause error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s does not fit in %d bits", ErrOutOfRange, e.Value, e.Bits)
}

func (e *RangeError) Unwrap() error { return e.cause }

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// ExhaustedError indicates that the identifier domain has been used up.
type ExhaustedError struct {
	Domain string // counter or tracker label, may be empty
	Bits   int
}

func (e *ExhaustedError) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("%v: %d-bit domain", ErrIdentifiersExhausted, e.Bits)
	}
	return fmt.Sprintf("%v: %d-bit domain %q", ErrIdentifiersExhausted, e.Bits, e.Domain)
}

// Is reports whether target is ErrIdentifiersExhausted.
func (e *ExhaustedError) Is(target error) bool { return target == ErrIdentifiersExhausted }

// PoisonedError reports which tracked object had a poisoned lock.
type PoisonedError struct {
	ID uint64
	Op string
}

func (e *PoisonedError) Error() string {
	return fmt.Sprintf("%s: %v: id %d", e.Op, ErrLockPoisoned, e.ID)
}

// Unwrap returns ErrLockPoisoned.
func (e *PoisonedError) Unwrap() error { return ErrLockPoisoned }

// IncompleteRemapError names the identifier a remapping did not cover.
type IncompleteRemapError struct {
	ID    uint64
	Store string
}

func (e *IncompleteRemapError) Error() string {
	return fmt.Sprintf("%v: %s holds id %d which the remapping does not cover", ErrIncompleteRemap, e.Store, e.ID)
}

// Unwrap returns ErrIncompleteRemap.
func (e *IncompleteRemapError) Unwrap() error { return ErrIncompleteRemap }

// Defect is the panic value raised when continuing would break an identifier
// invariant: a duplicate identifier, a dangling reference or a lock that was
// poisoned before anyone else could hold it. It is never returned as an
// ordinary error.
type Defect struct {
	Err error
}

func (d *Defect) Error() string { return "ids: defect: " + d.Err.Error() }

func (d *Defect) Unwrap() error { return d.Err }

func raise(err error) {
	panic(&Defect{Err: err})
}
