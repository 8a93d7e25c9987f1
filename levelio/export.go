package levelio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlpath/gridgraph"
)

// Unreachable is written for spaces absent from the cost map.
const Unreachable = "inf"

// WriteCosts writes costs as a Height×Width CSV grid.
// A reachable space holds its cost with four decimals, an unreachable space
// holds Unreachable, and walls or empty cells are left blank.
func WriteCosts(w io.Writer, l *gridgraph.Level, costs map[gridgraph.Cell]float64) error {
	cw := csv.NewWriter(w)
	record := make([]string, l.Width)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			switch d, reached := costs[c]; {
			case !l.HasSpace(c):
				record[x] = ""
			case !reached:
				record[x] = Unreachable
			default:
				record[x] = strconv.FormatFloat(d, 'f', 4, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("levelio: writing row %d: %w", y, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCosts writes costs to the CSV file at path, replacing any existing file.
func SaveCosts(l *gridgraph.Level, costs map[gridgraph.Cell]float64, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levelio: creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("levelio: closing %s: %w", path, cerr)
		}
	}()

	return WriteCosts(f, l, costs)
}
