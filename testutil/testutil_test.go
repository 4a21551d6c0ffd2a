package testutil

import (
	"slices"
	"testing"

	"github.com/HolographicTripwire/ids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.Sample(50, 20)
	assert.Len(t, s, 20)

	sorted := slices.Clone(s)
	slices.Sort(sorted)
	assert.Equal(t, len(sorted), len(slices.Compact(sorted)), "values must be distinct")
	for _, v := range s {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 50)
	}

	assert.Len(t, rng.Sample(3, 10), 3)
}

func TestSampleReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Sample(100, 10)
	rng.Reset()
	assert.Equal(t, first, rng.Sample(100, 10))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFill(t *testing.T) {
	tr := ids.New[ids.ID16, *Node[ids.ID16]]()

	handles := Fill(t, tr, 4)
	require.Len(t, handles, 4)
	assert.Equal(t, 4, tr.Len())

	for i, h := range handles {
		assert.Equal(t, ids.ID16(i), IDOf(t, h))
		assert.Equal(t, "n"+string(rune('0'+i)), Label(t, h))
	}
}
