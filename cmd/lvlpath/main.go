// lvlpath finds minimum-cost paths through weighted grid levels.
//
// Usage:
//
//	lvlpath <level> <src> <dst>     - Show the level, route src to dst, save costs from src
//	lvlpath route <level> <src> <dst> - Route between two waypoints
//	lvlpath costs <level> <src>     - Cost from src to every reachable cell
//	lvlpath show <level>            - Render a level
//	lvlpath maps [level]            - List stored cost maps
//	lvlpath serve <level|dir>...    - Serve levels over HTTP
//
// Global flags:
//
//	--config <path>        - Config file (default: ~/.lvlpath/config.yaml)
//	--log-level <level>    - debug, info, warn, error
//	--no-color             - Plain output
//	--conn <4|8>           - Neighbor connectivity
//	--no-corner-cutting    - Forbid diagonal steps past walls
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/config"
	"github.com/katalvlaran/lvlpath/levelio"
	"github.com/katalvlaran/lvlpath/navigate"
)

var (
	// Global flags
	flagConfig          string
	flagLogLevel        string
	flagNoColor         bool
	flagConn            int
	flagNoCornerCutting bool

	// Set up by loadSettings before any command runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lvlpath <level_file> <src> <dst>",
	Short: "Minimum-cost paths through weighted grid levels",
	Long: `lvlpath loads a text level and finds minimum-cost paths between its
waypoints.

Run with a level and two waypoint letters, it shows the level, prints the
route from src to dst, and writes the cost from src to every reachable cell
to the configured CSV file (my_costs.csv by default).

Level format:
  A-Z, 0     wall
  1-9        space with that cost
  a-z        waypoint (cost 1)
  space, .   space (cost 1)

Examples:
  lvlpath test_maze.txt a d
  lvlpath route --conn 4 test_maze.txt a d
  lvlpath costs test_maze.txt a --out costs.csv
  lvlpath serve ./levels`,
	Args:              cobra.ExactArgs(3),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runDefault,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVar(&flagConn, "conn", 8, "Neighbor connectivity (4 or 8)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCornerCutting, "no-corner-cutting", false, "Forbid diagonal steps that pass a wall corner")

	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(costsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings reads the config file and applies flag overrides on top.
func loadSettings(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = flagLogLevel
	}
	if flags.Changed("conn") {
		loaded.Search.Connectivity = flagConn
	}
	if flagNoColor {
		loaded.Render.Color = false
	}
	if flagNoCornerCutting {
		loaded.Search.CornerCutting = false
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lvlpath",
		Level:           cfg.Level(),
	})
	return nil
}

// openPlanner loads the level at path and wraps it with the configured search options.
func openPlanner(path string) (*navigate.Planner, error) {
	l, err := levelio.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("level loaded", "path", path, "width", l.Width, "height", l.Height, "waypoints", len(l.Waypoints))

	return navigate.NewPlanner(l,
		navigate.WithSearchOptions(cfg.GridOptions()),
		navigate.WithMaxCost(cfg.Search.MaxCost),
		navigate.WithLogger(logger),
	)
}

func runDefault(cmd *cobra.Command, args []string) error {
	levelPath, src, dst := args[0], args[1], args[2]

	p, err := openPlanner(levelPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if _, err := p.ShowRoute(out, src, dst, cfg.RenderOptions()); err != nil {
		return err
	}

	if err := levelio.Show(out, p.Level(), nil, cfg.RenderOptions()); err != nil {
		return err
	}
	if _, err := p.ExportCosts(src, cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(out, "Costs from %s saved to %s\n", src, cfg.Output)
	return nil
}
