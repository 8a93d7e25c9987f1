// Package config loads lvlpath settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlpath/gridgraph"
	"github.com/katalvlaran/lvlpath/levelio"
)

//go:embed defaults/lvlpath.yaml
var defaultYAML []byte

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config contains every lvlpath setting.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Output   string        `yaml:"output"`
	Render   RenderConfig  `yaml:"render"`
	Search   SearchConfig  `yaml:"search"`
	Server   ServerConfig  `yaml:"server"`
	Storage  StorageConfig `yaml:"storage"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	Color     bool   `yaml:"color"`
	PathGlyph string `yaml:"path_glyph"`
}

// SearchConfig controls adjacency generation and search bounds.
type SearchConfig struct {
	Connectivity  int     `yaml:"connectivity"`
	CornerCutting bool    `yaml:"corner_cutting"`
	MaxCost       float64 `yaml:"max_cost"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// StorageConfig locates the cost map database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   "my_costs.csv",
		Render:   RenderConfig{PathGlyph: "*"},
		Search:   SearchConfig{Connectivity: 8, CornerCutting: true},
		Server:   ServerConfig{Addr: ":8080", ReadTimeout: 10 * time.Second},
		Storage:  StorageConfig{DBPath: "~/.lvlpath/costs.db"},
	}
}

// Load reads the configuration.
// Search order: customPath -> ~/.lvlpath/config.yaml -> ./configs/lvlpath.yaml -> embedded default.
// A file only needs the keys it overrides; the rest keep their defaults.
func Load(customPath string) (Config, error) {
	return load(customPath, userConfigPath(), filepath.Join("configs", "lvlpath.yaml"))
}

func load(customPath string, candidates ...string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default()
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		break
	}

	return cfg, cfg.Validate()
}

// userConfigPath returns ~/.lvlpath/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lvlpath", "config.yaml")
}

// Validate checks every value and reports the first offending key.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is empty", ErrInvalidConfig)
	}
	if utf8.RuneCountInString(c.Render.PathGlyph) != 1 {
		return fmt.Errorf("%w: render.path_glyph %q must be a single character", ErrInvalidConfig, c.Render.PathGlyph)
	}
	if c.Search.Connectivity != 4 && c.Search.Connectivity != 8 {
		return fmt.Errorf("%w: search.connectivity %d must be 4 or 8", ErrInvalidConfig, c.Search.Connectivity)
	}
	if c.Search.MaxCost < 0 || math.IsNaN(c.Search.MaxCost) {
		return fmt.Errorf("%w: search.max_cost %v", ErrInvalidConfig, c.Search.MaxCost)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("%w: server.read_timeout %v", ErrInvalidConfig, c.Server.ReadTimeout)
	}
	return nil
}

// GridOptions converts the search section into adjacency options.
func (c Config) GridOptions() gridgraph.Options {
	opts := gridgraph.Options{Conn: gridgraph.Conn8, CornerCutting: c.Search.CornerCutting}
	if c.Search.Connectivity == 4 {
		opts.Conn = gridgraph.Conn4
	}
	return opts
}

// RenderOptions converts the render section into levelio options.
func (c Config) RenderOptions() levelio.RenderOptions {
	ro := levelio.DefaultRenderOptions()
	ro.Color = c.Render.Color
	if r, _ := utf8.DecodeRuneInString(c.Render.PathGlyph); r != utf8.RuneError {
		ro.PathGlyph = r
	}
	return ro
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
