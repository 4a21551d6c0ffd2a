package ids_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/HolographicTripwire/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMaxBits(t *testing.T) {
	assert.Equal(t, ids.ID8(0), ids.First[ids.ID8]())
	assert.Equal(t, ids.ID8(255), ids.Max[ids.ID8]())
	assert.Equal(t, ids.ID16(math.MaxUint16), ids.Max[ids.ID16]())
	assert.Equal(t, ids.ID32(math.MaxUint32), ids.Max[ids.ID32]())
	assert.Equal(t, ids.ID64(math.MaxUint64), ids.Max[ids.ID64]())

	assert.Equal(t, 8, ids.Bits[ids.ID8]())
	assert.Equal(t, 16, ids.Bits[nodeID]())
	assert.Equal(t, 32, ids.Bits[ids.ID32]())
	assert.Equal(t, 64, ids.Bits[ids.ID64]())
}

func TestNext(t *testing.T) {
	t.Run("successor", func(t *testing.T) {
		got, err := ids.Next(ids.ID8(41))
		require.NoError(t, err)
		assert.Equal(t, ids.ID8(42), got)
	})

	t.Run("8-bit exhausted at 255", func(t *testing.T) {
		_, err := ids.Next(ids.ID8(255))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ids.ErrIdentifiersExhausted))

		var ee *ids.ExhaustedError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 8, ee.Bits)
	})

	t.Run("254 still has a successor", func(t *testing.T) {
		got, err := ids.Next(ids.ID8(254))
		require.NoError(t, err)
		assert.Equal(t, ids.ID8(255), got)
	})

	t.Run("64-bit exhausted", func(t *testing.T) {
		_, err := ids.Next(ids.Max[ids.ID64]())
		assert.ErrorIs(t, err, ids.ErrIdentifiersExhausted)
	})
}

func TestFromIndex(t *testing.T) {
	t.Run("8-bit accepts 255", func(t *testing.T) {
		got, err := ids.FromIndex[ids.ID8](255)
		require.NoError(t, err)
		assert.Equal(t, ids.ID8(255), got)
	})

	t.Run("8-bit rejects 256", func(t *testing.T) {
		_, err := ids.FromIndex[ids.ID8](256)
		require.Error(t, err)
		assert.ErrorIs(t, err, ids.ErrOutOfRange)

		var re *ids.RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "256", re.Value)
		assert.Equal(t, 8, re.Bits)
		assert.NotNil(t, errors.Unwrap(re), "cause is kept")
	})

	t.Run("negative", func(t *testing.T) {
		_, err := ids.FromIndex[ids.ID32](-1)
		assert.ErrorIs(t, err, ids.ErrOutOfRange)
	})

	t.Run("named domain", func(t *testing.T) {
		got, err := ids.FromIndex[nodeID](1234)
		require.NoError(t, err)
		assert.Equal(t, nodeID(1234), got)
	})
}

func TestToIndex(t *testing.T) {
	got, err := ids.ToIndex(ids.ID8(255))
	require.NoError(t, err)
	assert.Equal(t, 255, got)

	if strconv.IntSize == 64 {
		_, err = ids.ToIndex(ids.Max[ids.ID64]())
		assert.ErrorIs(t, err, ids.ErrOutOfRange)

		got, err = ids.ToIndex(ids.ID64(math.MaxInt))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := ids.FromIndex[ids.ID8](256)
	assert.Contains(t, err.Error(), "256")
	assert.Contains(t, err.Error(), "8 bits")

	ee := &ids.ExhaustedError{Domain: "nodes", Bits: 16}
	assert.Contains(t, ee.Error(), `"nodes"`)

	pe := &ids.PoisonedError{ID: 7, Op: "flatten"}
	assert.Equal(t, "flatten: lock poisoned: id 7", pe.Error())

	d := &ids.Defect{Err: &ids.IncompleteRemapError{ID: 3, Store: "idset"}}
	assert.Contains(t, d.Error(), "idset holds id 3")
	assert.ErrorIs(t, d, ids.ErrIncompleteRemap)
}

func TestDefectsCarryTypedErrors(t *testing.T) {
	defects := []*ids.Defect{
		{Err: &ids.ExhaustedError{Bits: 8}},
		{Err: &ids.IncompleteRemapError{ID: 1, Store: "linker left side"}},
		{Err: &ids.PoisonedError{ID: 4, Op: "put"}},
	}

	var pe *ids.PoisonedError
	require.ErrorAs(t, defects[2], &pe)
	assert.Equal(t, "put", pe.Op)
	assert.Equal(t, "ids: defect: put: lock poisoned: id 4", defects[2].Error())
	assert.ErrorIs(t, defects[2], ids.ErrLockPoisoned)
	assert.ErrorIs(t, defects[0], ids.ErrIdentifiersExhausted)
	assert.ErrorIs(t, defects[1], ids.ErrIncompleteRemap)
}
