package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_CustomPathOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
output: costs.csv
search:
  connectivity: 4
server:
  read_timeout: 2s
`)
	cfg, err := load(path)
	require.NoError(t, err)

	require.Equal(t, "costs.csv", cfg.Output)
	require.Equal(t, 4, cfg.Search.Connectivity)
	require.True(t, cfg.Search.CornerCutting, "untouched keys keep defaults")
	require.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.yaml", "search: [unclosed")
	_, err = load(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_SearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "output: user.csv\n")
	local := writeFile(t, dir, "local.yaml", "output: local.csv\n")
	missing := filepath.Join(dir, "missing.yaml")

	cfg, err := load("", user, local)
	require.NoError(t, err)
	require.Equal(t, "user.csv", cfg.Output)

	cfg, err = load("", missing, local)
	require.NoError(t, err)
	require.Equal(t, "local.csv", cfg.Output)

	cfg, err = load("", missing, "")
	require.NoError(t, err)
	require.Equal(t, "my_costs.csv", cfg.Output)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"LogLevel", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"Output", func(c *Config) { c.Output = "" }, "output"},
		{"PathGlyph", func(c *Config) { c.Render.PathGlyph = "**" }, "render.path_glyph"},
		{"Connectivity", func(c *Config) { c.Search.Connectivity = 6 }, "search.connectivity"},
		{"MaxCost", func(c *Config) { c.Search.MaxCost = -1 }, "search.max_cost"},
		{"ReadTimeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, "server.read_timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tc.key)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestConversions(t *testing.T) {
	cfg := Default()
	require.Equal(t, gridgraph.DefaultOptions(), cfg.GridOptions())
	require.Equal(t, log.InfoLevel, cfg.Level())

	cfg.Search.Connectivity = 4
	cfg.Search.CornerCutting = false
	cfg.Render.Color = true
	cfg.Render.PathGlyph = "o"
	cfg.LogLevel = "debug"

	require.Equal(t, gridgraph.Options{Conn: gridgraph.Conn4}, cfg.GridOptions())
	ro := cfg.RenderOptions()
	require.True(t, ro.Color)
	require.Equal(t, 'o', ro.PathGlyph)
	require.Equal(t, log.DebugLevel, cfg.Level())
}
