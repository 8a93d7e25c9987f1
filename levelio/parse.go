package levelio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

var (
	// ErrBadGlyph indicates a rune outside the level alphabet.
	ErrBadGlyph = errors.New("levelio: unsupported glyph")
	// ErrDuplicateLabel indicates a waypoint letter used more than once.
	ErrDuplicateLabel = errors.New("levelio: waypoint label used twice")
)

// Extensions recognized by LoadAll.
var levelExtensions = map[string]bool{".txt": true, ".lvl": true}

// Parse reads a level in text form from r.
// Errors carry the 1-based line and column of the offending rune.
func Parse(r io.Reader) (*gridgraph.Level, error) {
	spaces := make(map[gridgraph.Cell]float64)
	waypoints := make(map[string]gridgraph.Cell)
	var walls []gridgraph.Cell

	// 1) Scan line by line; the row index is the Y coordinate.
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		// 2) Classify every rune; X counts runes, not bytes.
		for x, ch := range []rune(line) {
			c := gridgraph.Cell{X: x, Y: y}
			switch {
			case ch == ' ' || ch == '.':
				spaces[c] = 1
			case ch == '0':
				walls = append(walls, c)
			case ch >= '1' && ch <= '9':
				spaces[c] = float64(ch - '0')
			case ch >= 'a' && ch <= 'z':
				label := string(ch)
				if _, dup := waypoints[label]; dup {
					return nil, fmt.Errorf("%w: %q at line %d col %d", ErrDuplicateLabel, label, y+1, x+1)
				}
				waypoints[label] = c
				spaces[c] = 1
			case ch >= 'A' && ch <= 'Z':
				walls = append(walls, c)
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrBadGlyph, printable(ch), y+1, x+1)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levelio: reading level: %w", err)
	}

	// 3) NewLevel derives the bounding box and checks waypoints.
	return gridgraph.NewLevel(spaces, waypoints, walls...)
}

func printable(ch rune) string {
	if unicode.IsPrint(ch) {
		return string(ch)
	}
	return fmt.Sprintf("%U", ch)
}

// Load reads and parses the level file at path.
func Load(path string) (*gridgraph.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levelio: opening %s: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("levelio: parsing %s: %w", path, err)
	}
	return l, nil
}

// Name derives a level name from its file path: the base name without extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Named pairs a loaded level with its name.
type Named struct {
	Name  string
	Path  string
	Level *gridgraph.Level
}

// LoadAll loads every path given. A directory is scanned recursively for
// .txt and .lvl files. Results are sorted by name; a name seen twice is an error.
func LoadAll(paths ...string) ([]Named, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("levelio: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && levelExtensions[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("levelio: walking directory %s: %w", p, err)
		}
	}

	levels := make([]Named, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, path := range files {
		name := Name(path)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("levelio: level name %q used by %s and %s", name, prev, path)
		}
		seen[name] = path
		l, err := Load(path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, Named{Name: name, Path: path, Level: l})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}
