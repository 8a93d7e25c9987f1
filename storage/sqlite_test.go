package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "nested", "lvlpath.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func record(level, source string, costs map[gridgraph.Cell]float64) storage.CostMapRecord {
	return storage.CostMapRecord{
		Level:  level,
		Source: source,
		Origin: gridgraph.Cell{X: 1, Y: 1},
		Width:  5,
		Height: 4,
		Costs:  costs,
	}
}

func TestSaveAndLoadCostMap(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	costs := map[gridgraph.Cell]float64{
		{X: 1, Y: 1}: 0,
		{X: 2, Y: 1}: 1,
		{X: 3, Y: 2}: 2.414213562373095,
	}
	id, err := s.SaveCostMap(ctx, record("maze", "a", costs))
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := s.LoadCostMap(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "maze", got.Level)
	require.Equal(t, "a", got.Source)
	require.Equal(t, gridgraph.Cell{X: 1, Y: 1}, got.Origin)
	require.Equal(t, 5, got.Width)
	require.Equal(t, 4, got.Height)
	require.Equal(t, costs, got.Costs)
}

func TestLoadCostMap_NotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.LoadCostMap(context.Background(), 42)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListCostMaps(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	one := map[gridgraph.Cell]float64{{X: 0, Y: 0}: 0}
	two := map[gridgraph.Cell]float64{{X: 0, Y: 0}: 0, {X: 1, Y: 0}: 1}

	first, err := s.SaveCostMap(ctx, record("maze", "a", one))
	require.NoError(t, err)
	second, err := s.SaveCostMap(ctx, record("maze", "d", two))
	require.NoError(t, err)
	_, err = s.SaveCostMap(ctx, record("open", "a", one))
	require.NoError(t, err)

	maps, err := s.ListCostMaps(ctx, "maze")
	require.NoError(t, err)
	require.Len(t, maps, 2)
	require.Equal(t, second, maps[0].ID, "newest first")
	require.Equal(t, "d", maps[0].Source)
	require.Equal(t, 2, maps[0].Reachable)
	require.Equal(t, first, maps[1].ID)
	require.Equal(t, 1, maps[1].Reachable)

	all, err := s.ListCostMaps(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := s.ListCostMaps(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlpath.db")
	ctx := context.Background()

	s, err := storage.Open(path)
	require.NoError(t, err)
	id, err := s.SaveCostMap(ctx, record("maze", "a", map[gridgraph.Cell]float64{{X: 1, Y: 1}: 0}))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = storage.Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.LoadCostMap(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Costs, 1)
}
