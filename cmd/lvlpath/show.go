package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/levelio"
)

var flagShowRegions bool

var showCmd = &cobra.Command{
	Use:   "show <level_file>",
	Short: "Render a level",
	Long: `Render a level and list its waypoints.

With --regions, also report the connected regions of spaces under the
current connectivity settings; waypoints in different regions cannot reach
each other. Every region after the first is followed by the fewest cells
that would have to be opened to join it to the first one.

Examples:
  lvlpath show test_maze.txt
  lvlpath show --regions --conn 4 test_maze.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowRegions, "regions", false, "Report connected regions")
}

func runShow(cmd *cobra.Command, args []string) error {
	l, err := levelio.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := levelio.Show(out, l, nil, cfg.RenderOptions()); err != nil {
		return err
	}
	fmt.Fprintf(out, "%dx%d, %d spaces\n", l.Width, l.Height, len(l.Spaces))
	for _, label := range l.WaypointLabels() {
		fmt.Fprintf(out, "  %s %v\n", label, l.Waypoints[label])
	}

	if !flagShowRegions {
		return nil
	}
	opts := cfg.GridOptions()
	regions := l.Regions(opts)
	fmt.Fprintf(out, "%d region(s)\n", len(regions))
	for i, region := range regions {
		var labels []string
		for _, c := range region {
			if label, ok := l.WaypointAt(c); ok {
				labels = append(labels, label)
			}
		}
		fmt.Fprintf(out, "  #%d: %d cells, waypoints %v\n", i+1, len(region), labels)
		if i == 0 {
			continue
		}
		path, cost, err := l.Bridge(opts, regions[0][0], region[0])
		if err != nil {
			logger.Warn("no bridge", "region", i+1, "err", err)
			continue
		}
		walls := make([]gridgraph.Cell, 0, cost)
		for _, c := range path {
			if !l.HasSpace(c) {
				walls = append(walls, c)
			}
		}
		fmt.Fprintf(out, "      open %d cell(s) to join #1: %v\n", cost, walls)
	}
	return nil
}
