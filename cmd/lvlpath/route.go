package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/levelio"
)

var routeCmd = &cobra.Command{
	Use:   "route <level_file> <src> <dst>",
	Short: "Find the minimum-cost route between two waypoints",
	Long: `Find the minimum-cost route between two waypoints and print it
over the level, followed by its total cost.

Examples:
  lvlpath route test_maze.txt a d
  lvlpath route --conn 4 --no-corner-cutting test_maze.txt a d`,
	Args: cobra.ExactArgs(3),
	RunE: runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	levelPath, src, dst := args[0], args[1], args[2]

	p, err := openPlanner(levelPath)
	if err != nil {
		return err
	}
	res, err := p.Route(src, dst)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(out, "No path possible!")
		return nil
	}
	if err := levelio.Show(out, p.Level(), res.Path, cfg.RenderOptions()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cost from %s to %s: %.4f (%d cells)\n", src, dst, res.Cost, len(res.Path))
	return nil
}
