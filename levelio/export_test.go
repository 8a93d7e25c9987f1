package levelio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/levelio"
)

// splitLevel has a reachable pocket on the left and an unreachable column on the right.
const splitLevel = "a3X.\nXXX."

func splitCosts(t *testing.T) (*gridgraph.Level, map[gridgraph.Cell]float64) {
	t.Helper()
	l, err := levelio.Parse(strings.NewReader(splitLevel))
	require.NoError(t, err)
	costs, err := dijkstra.ShortestPathToAll(l.Adjacency(gridgraph.DefaultOptions()), l.Waypoints["a"])
	require.NoError(t, err)
	return l, costs
}

func TestWriteCosts(t *testing.T) {
	l, costs := splitCosts(t)

	var buf bytes.Buffer
	require.NoError(t, levelio.WriteCosts(&buf, l, costs))
	require.Equal(t, "0.0000,2.0000,,inf\n,,,inf\n", buf.String())
}

func TestSaveCosts(t *testing.T) {
	l, costs := splitCosts(t)
	path := filepath.Join(t.TempDir(), "my_costs.csv")

	require.NoError(t, levelio.SaveCosts(l, costs, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0.0000,2.0000,,inf\n,,,inf\n", string(data))

	err = levelio.SaveCosts(l, costs, filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	require.Error(t, err)
}
