package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulcager/dial_counter/internal/solver"
)

var stats = solver.Stats{
	Rotations: 10,
	Clicks:    462,
	Landings:  3,
	Crossings: 6,
	Position:  32,
}

func TestCollector(t *testing.T) {
	c := NewCollector(solver.Crossings, stats, 6)
	assert.Equal(t, 6, testutil.CollectAndCount(c))

	const want = `
# HELP dial_answer Answer produced by the solver.
# TYPE dial_answer gauge
dial_answer{policy="crossings"} 6
# HELP dial_pointer_position Position of the pointer after the last rotation.
# TYPE dial_pointer_position gauge
dial_pointer_position 32
`
	err := testutil.CollectAndCompare(c, strings.NewReader(want), "dial_answer", "dial_pointer_position")
	assert.NoError(t, err)
}

func TestCollectorLandings(t *testing.T) {
	c := NewCollector(solver.Landings, solver.Stats{Rotations: 10, Landings: 3, Position: 32}, 3)
	assert.Equal(t, 5, testutil.CollectAndCount(c))
	assert.Equal(t, 0, testutil.CollectAndCount(c, "dial_crossings_total"))
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dial.prom")
	require.NoError(t, WriteTextfile(path, NewCollector(solver.Crossings, stats, 6)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `dial_answer{policy="crossings"} 6`)
	assert.Contains(t, out, "dial_clicks_total 462")
	assert.Contains(t, out, "dial_counter_build_info")
}
