package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/levelio"
	"github.com/katalvlaran/lvlpath/storage"
)

var (
	flagCostsOut string
	flagCostsDB  bool
)

var costsCmd = &cobra.Command{
	Use:   "costs <level_file> <src>",
	Short: "Compute the cost from a waypoint to every reachable cell",
	Long: `Compute the minimum cost from a waypoint to every reachable cell and
write it as a CSV grid. Unreachable spaces are written as "inf", walls are
left blank.

With --db the map is also stored in the SQLite database from the config
(storage.db_path) and can be listed later with 'lvlpath maps'.

Examples:
  lvlpath costs test_maze.txt a
  lvlpath costs test_maze.txt a --out costs.csv --db`,
	Args: cobra.ExactArgs(2),
	RunE: runCosts,
}

func init() {
	costsCmd.Flags().StringVar(&flagCostsOut, "out", "", "CSV output file (default: output from config)")
	costsCmd.Flags().BoolVar(&flagCostsDB, "db", false, "Also store the cost map in the database")
}

func runCosts(cmd *cobra.Command, args []string) error {
	levelPath, src := args[0], args[1]
	outPath := flagCostsOut
	if outPath == "" {
		outPath = cfg.Output
	}

	p, err := openPlanner(levelPath)
	if err != nil {
		return err
	}
	costs, err := p.ExportCosts(src, outPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d of %d spaces reachable from %s, saved to %s\n", len(costs), len(p.Level().Spaces), src, outPath)

	if !flagCostsDB {
		return nil
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	origin, err := p.Resolve(src)
	if err != nil {
		return err
	}
	id, err := store.SaveCostMap(cmd.Context(), storage.CostMapRecord{
		Level:  levelio.Name(levelPath),
		Source: src,
		Origin: origin,
		Width:  p.Level().Width,
		Height: p.Level().Height,
		Costs:  costs,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Stored as cost map #%d\n", id)
	return nil
}
