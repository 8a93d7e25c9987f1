package levelio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/levelio"
)

func TestRender_RoundTrip(t *testing.T) {
	l, err := levelio.Parse(strings.NewReader(smallMaze))
	require.NoError(t, err)

	got := levelio.Render(l, nil, levelio.DefaultRenderOptions())
	require.Equal(t, smallMaze, got)
}

func TestRender_PathOverlay(t *testing.T) {
	l, err := levelio.Parse(strings.NewReader(smallMaze))
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(l.Adjacency(gridgraph.DefaultOptions()), l.Waypoints["a"], l.Waypoints["d"])
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Cell{c(1, 1), c(2, 1), c(3, 2)}, res.Path)

	got := levelio.Render(l, res.Path, levelio.DefaultRenderOptions())
	want := "XXXXX\nXa*3X\nX9XdX\nXXXXX"
	require.Equal(t, want, got)

	got = levelio.Render(l, res.Path, levelio.RenderOptions{PathGlyph: 'o'})
	require.Contains(t, got, "Xao3X")
}

func TestRender_RoughAndVoid(t *testing.T) {
	spaces := map[gridgraph.Cell]float64{c(0, 0): 12, c(2, 0): 2.4}
	l, err := gridgraph.NewLevel(spaces, nil)
	require.NoError(t, err)

	require.Equal(t, "+ 2", levelio.Render(l, nil, levelio.RenderOptions{}))
}

func TestRender_FractionalCosts(t *testing.T) {
	spaces := map[gridgraph.Cell]float64{c(0, 0): 0.2, c(1, 0): 1, c(2, 0): 1.3, c(3, 0): 0.5}
	l, err := gridgraph.NewLevel(spaces, nil)
	require.NoError(t, err)

	// Cheap cells must never look like walls ('0') or plain cost-1 spaces.
	require.Equal(t, "1 11", levelio.Render(l, nil, levelio.RenderOptions{}))
}

func TestRender_Color(t *testing.T) {
	l, err := levelio.Parse(strings.NewReader(smallMaze))
	require.NoError(t, err)

	got := levelio.Render(l, []gridgraph.Cell{c(2, 1)}, levelio.RenderOptions{Color: true, PathGlyph: '*'})
	require.Len(t, strings.Split(got, "\n"), 4)
	for _, want := range []string{"a", "d", "*", "9", "3"} {
		require.Contains(t, got, want)
	}
}

func TestShow(t *testing.T) {
	l, err := levelio.Parse(strings.NewReader(smallMaze))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, levelio.Show(&buf, l, nil, levelio.DefaultRenderOptions()))
	require.Equal(t, smallMaze+"\n", buf.String())
}
