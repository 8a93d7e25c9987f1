package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/storage"
)

var mapsCmd = &cobra.Command{
	Use:   "maps [level]",
	Short: "List cost maps stored with 'costs --db'",
	Long: `List the cost maps stored in the database, newest first.
Pass a level name (the file name without extension) to filter.

Examples:
  lvlpath maps
  lvlpath maps test_maze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaps,
}

func runMaps(cmd *cobra.Command, args []string) error {
	var level string
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	maps, err := store.ListCostMaps(cmd.Context(), level)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(maps) == 0 {
		fmt.Fprintln(out, "No cost maps stored yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %-9s  %s\n", "ID", "Level", "From", "Reachable", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %-9s  %s\n", "--", "-----", "----", "---------", "----")
	for _, m := range maps {
		fmt.Fprintf(out, "  %-4d  %-16s  %-6s  %-9d  %s\n",
			m.ID, m.Level, m.Source, m.Reachable, m.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
