package ids_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/HolographicTripwire/ids"
	"github.com/HolographicTripwire/ids/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogger_Flatten(t *testing.T) {
	var buf bytes.Buffer
	logger := ids.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr := ids.New[nodeID, *node](ids.WithLogger(logger), ids.WithName("nodes"))
	testutil.Fill(t, tr, 3)
	tr.Remove(1)

	_, err := tr.FlattenWith()
	require.NoError(t, err)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2)

	assert.Equal(t, "flatten completed", recs[0]["msg"])
	assert.Equal(t, "nodes", recs[0]["domain"])
	assert.EqualValues(t, 2, recs[0]["live"])
	assert.EqualValues(t, 1, recs[0]["reclaimed"])

	assert.Equal(t, "stores updated", recs[1]["msg"])
	assert.EqualValues(t, 0, recs[1]["stores"])
}

func TestLogger_FlattenAborted(t *testing.T) {
	var buf bytes.Buffer
	logger := ids.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	tr := ids.New[nodeID, *node](ids.WithLogger(logger))
	h := testutil.Fill(t, tr, 2)
	g, err := h[1].Lock()
	require.NoError(t, err)
	g.Poison()
	g.Unlock()

	_, err = tr.Flatten()
	require.Error(t, err)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "flatten aborted", recs[0]["msg"])
	assert.Equal(t, "WARN", recs[0]["level"])
	assert.EqualValues(t, 1, recs[0]["id"])
	assert.Contains(t, recs[0]["error"], "lock poisoned")
	assert.NotContains(t, recs[0], "domain", "unnamed trackers carry no domain")
}

func TestLogger_AdoptRejected(t *testing.T) {
	var buf bytes.Buffer
	logger := ids.NewLogger(slog.NewJSONHandler(&buf, nil))

	tr := ids.New[nodeID, *node](ids.WithLogger(logger))
	h := ids.NewHandle(testutil.NewNode[nodeID]("x"))
	g, err := h.Lock()
	require.NoError(t, err)
	g.Poison()
	g.Unlock()

	_, err = tr.Adopt(h)
	require.ErrorIs(t, err, ids.ErrLockPoisoned)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "adopt rejected", recs[0]["msg"])
}

func TestNoopLogger(t *testing.T) {
	l := ids.NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	assert.Same(t, l, l.WithDomain(""))
}

func TestNew_Options(t *testing.T) {
	tr := ids.New[nodeID, *node](
		ids.WithCapacity(64),
		ids.WithLogLevel(slog.LevelError),
		ids.WithMetricsCollector(nil),
	)
	testutil.Fill(t, tr, 64)
	assert.Equal(t, 64, tr.Len())

	next, ok := tr.Next()
	require.True(t, ok)
	assert.Equal(t, nodeID(64), next)
}
