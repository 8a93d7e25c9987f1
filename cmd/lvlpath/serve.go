package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/levelio"
	"github.com/katalvlaran/lvlpath/navigate"
	"github.com/katalvlaran/lvlpath/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <level_file|dir>...",
	Short: "Serve levels over HTTP",
	Long: `Start an HTTP server answering route and cost queries for the given
levels. Directories are scanned for .txt and .lvl files; each level is named
after its file.

Endpoints:
  GET /levels
  GET /levels/{name}
  GET /levels/{name}/route?from=a&to=d
  GET /levels/{name}/costs?from=a

Examples:
  lvlpath serve ./levels
  lvlpath serve --addr :9090 test_maze.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default: server.addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	levels, err := levelio.LoadAll(args...)
	if err != nil {
		return err
	}
	addr := flagServeAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	srv, err := server.New(server.Config{Addr: addr, ReadTimeout: cfg.Server.ReadTimeout}, levels, logger,
		navigate.WithSearchOptions(cfg.GridOptions()),
		navigate.WithMaxCost(cfg.Search.MaxCost),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
