package ids_test

import (
	"errors"
	"testing"

	"github.com/HolographicTripwire/ids"
	"github.com/stretchr/testify/require"
)

// requireDefect runs fn and asserts that it panics with an *ids.Defect
// matching target. It returns the defect for further inspection.
func requireDefect(t *testing.T, target error, fn func()) (d *ids.Defect) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a defect panic")
		var ok bool
		d, ok = r.(*ids.Defect)
		require.True(t, ok, "panic value is %T, not *ids.Defect", r)
		require.True(t, errors.Is(d, target), "defect %v does not match %v", d, target)
	}()

	fn()
	return nil
}

type (
	nodeID uint16
	tagID  uint8
)
