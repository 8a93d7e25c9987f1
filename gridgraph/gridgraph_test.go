package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewLevel Tests
//----------------------------------------------------------------------------//

// TestNewLevel_Errors verifies that NewLevel rejects empty or malformed inputs.
func TestNewLevel_Errors(t *testing.T) {
	a := gridgraph.Cell{X: 0, Y: 0}
	b := gridgraph.Cell{X: 1, Y: 0}
	cases := []struct {
		name      string
		spaces    map[gridgraph.Cell]float64
		waypoints map[string]gridgraph.Cell
		err       error
	}{
		{"Empty", nil, nil, gridgraph.ErrEmptyLevel},
		{"NegativeCost", map[gridgraph.Cell]float64{a: -1}, nil, gridgraph.ErrBadCost},
		{"NaNCost", map[gridgraph.Cell]float64{a: math.NaN()}, nil, gridgraph.ErrBadCost},
		{"InfCost", map[gridgraph.Cell]float64{a: math.Inf(1)}, nil, gridgraph.ErrBadCost},
		{"WaypointOnWall", map[gridgraph.Cell]float64{a: 1}, map[string]gridgraph.Cell{"a": b}, gridgraph.ErrWaypointNotSpace},
		{"NegativeCell", map[gridgraph.Cell]float64{a: 1, {X: -1, Y: 0}: 1}, nil, gridgraph.ErrNegativeCell},
		{"DuplicateWaypoint", map[gridgraph.Cell]float64{a: 1, b: 1}, map[string]gridgraph.Cell{"a": a, "b": a}, gridgraph.ErrDuplicateWaypoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewLevel(tc.spaces, tc.waypoints)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewLevel error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewLevel_NegativeWall rejects walls outside the renderable box too.
func TestNewLevel_NegativeWall(t *testing.T) {
	spaces := map[gridgraph.Cell]float64{{X: 0, Y: 0}: 1}
	_, err := gridgraph.NewLevel(spaces, nil, gridgraph.Cell{X: 0, Y: -2})
	require.ErrorIs(t, err, gridgraph.ErrNegativeCell)
}

// TestNewLevel_DeepCopy ensures later mutation of the inputs does not leak into the level.
func TestNewLevel_DeepCopy(t *testing.T) {
	spaces := map[gridgraph.Cell]float64{{X: 0, Y: 0}: 1, {X: 1, Y: 0}: 2}
	waypoints := map[string]gridgraph.Cell{"a": {X: 0, Y: 0}}
	l, err := gridgraph.NewLevel(spaces, waypoints)
	require.NoError(t, err)

	spaces[gridgraph.Cell{X: 1, Y: 0}] = 9
	delete(spaces, gridgraph.Cell{X: 0, Y: 0})
	waypoints["z"] = gridgraph.Cell{X: 1, Y: 0}

	cost, ok := l.Cost(gridgraph.Cell{X: 1, Y: 0})
	require.True(t, ok)
	require.Equal(t, 2.0, cost)
	require.True(t, l.HasSpace(gridgraph.Cell{X: 0, Y: 0}))
	require.Equal(t, []string{"a"}, l.WaypointLabels())
}

// TestNewLevel_BoundsAndWalls checks the bounding box covers spaces and walls,
// and that a wall listed on a space is ignored.
func TestNewLevel_BoundsAndWalls(t *testing.T) {
	spaces := map[gridgraph.Cell]float64{{X: 0, Y: 0}: 1, {X: 1, Y: 1}: 1}
	l, err := gridgraph.NewLevel(spaces, nil, gridgraph.Cell{X: 3, Y: 0}, gridgraph.Cell{X: 1, Y: 1})
	require.NoError(t, err)

	require.Equal(t, 4, l.Width)
	require.Equal(t, 2, l.Height)
	require.True(t, l.IsWall(gridgraph.Cell{X: 3, Y: 0}))
	require.False(t, l.IsWall(gridgraph.Cell{X: 1, Y: 1}), "space must win over wall")

	require.True(t, l.InBounds(gridgraph.Cell{X: 3, Y: 1}))
	require.False(t, l.InBounds(gridgraph.Cell{X: 4, Y: 0}))
	require.False(t, l.InBounds(gridgraph.Cell{X: 0, Y: -1}))
}

//----------------------------------------------------------------------------//
// Waypoint Tests
//----------------------------------------------------------------------------//

func TestWaypointLookup(t *testing.T) {
	c := gridgraph.Cell{X: 2, Y: 1}
	l, err := gridgraph.NewLevel(
		map[gridgraph.Cell]float64{c: 1, {X: 0, Y: 0}: 1},
		map[string]gridgraph.Cell{"d": c, "a": {X: 0, Y: 0}},
	)
	require.NoError(t, err)

	got, err := l.Waypoint("d")
	require.NoError(t, err)
	require.Equal(t, c, got)

	_, err = l.Waypoint("q")
	require.ErrorIs(t, err, gridgraph.ErrUnknownWaypoint)

	label, ok := l.WaypointAt(c)
	require.True(t, ok)
	require.Equal(t, "d", label)
	_, ok = l.WaypointAt(gridgraph.Cell{X: 5, Y: 5})
	require.False(t, ok)

	require.Equal(t, []string{"a", "d"}, l.WaypointLabels())
}

func TestCellString(t *testing.T) {
	require.Equal(t, "(3,-1)", gridgraph.Cell{X: 3, Y: -1}.String())
	require.Equal(t, "8", gridgraph.Conn8.String())
	require.Equal(t, "4", gridgraph.Conn4.String())
}
