package levelio

import (
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

// RenderOptions controls how a level is drawn.
type RenderOptions struct {
	// Color styles glyphs with ANSI colors via lipgloss.
	Color bool
	// PathGlyph marks path cells that are not waypoints.
	PathGlyph rune
}

// DefaultRenderOptions returns plain output with '*' as the path glyph.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{PathGlyph: '*'}
}

// glyphKind classifies a cell for styling.
type glyphKind int

const (
	kindVoid glyphKind = iota
	kindWall
	kindSpace
	kindRough
	kindWaypoint
	kindPath
)

var kindStyles = map[glyphKind]lipgloss.Style{
	kindVoid:     lipgloss.NewStyle(),
	kindWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	kindSpace:    lipgloss.NewStyle(),
	kindRough:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	kindWaypoint: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	kindPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// Render draws l row by row with path overlaid.
// Walls are 'X', cost-1 spaces ' ', other spaces their rounded cost digit
// ('+' above 9, never below '1'), waypoints their label, and path cells opts.PathGlyph.
// Every row is Width runes wide; rows are joined by '\n'.
func Render(l *gridgraph.Level, path []gridgraph.Cell, opts RenderOptions) string {
	if opts.PathGlyph == 0 {
		opts.PathGlyph = '*'
	}
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	labels := make(map[gridgraph.Cell]string, len(l.Waypoints))
	for label, c := range l.Waypoints {
		labels[c] = label
	}

	var sb strings.Builder
	sb.Grow((l.Width + 1) * l.Height)
	for y := 0; y < l.Height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells of the same kind to keep escape sequences short.
		var run strings.Builder
		runKind := kindVoid
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if opts.Color {
				sb.WriteString(kindStyles[runKind].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < l.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			g, kind := glyph(l, c, labels, onPath, opts.PathGlyph)
			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteRune(g)
		}
		flush()
	}
	return sb.String()
}

func glyph(l *gridgraph.Level, c gridgraph.Cell, labels map[gridgraph.Cell]string, onPath map[gridgraph.Cell]bool, pathGlyph rune) (rune, glyphKind) {
	if label, ok := labels[c]; ok && label != "" {
		r, _ := utf8.DecodeRuneInString(label)
		return r, kindWaypoint
	}
	cost, ok := l.Cost(c)
	if !ok {
		if l.IsWall(c) {
			return 'X', kindWall
		}
		return ' ', kindVoid
	}
	if onPath[c] {
		return pathGlyph, kindPath
	}
	if cost == 1 {
		return ' ', kindSpace
	}
	// '0' is reserved for walls in the level format, and ' ' for an exact cost of 1.
	switch r := math.Round(cost); {
	case r > 9:
		return '+', kindRough
	case r < 1:
		return '1', kindRough
	default:
		return rune('0' + int(r)), kindRough
	}
}

// Show writes Render's output to w followed by a newline.
func Show(w io.Writer, l *gridgraph.Level, path []gridgraph.Cell, opts RenderOptions) error {
	_, err := io.WriteString(w, Render(l, path, opts)+"\n")
	return err
}
