// Package storage persists exported cost maps in SQLite.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is needed.
//
// Stored maps are export records: the search engine never reads them back.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/katalvlaran/lvlpath/gridgraph"
)

// ErrNotFound is returned by LoadCostMap for an unknown id.
var ErrNotFound = errors.New("storage: cost map not found")

// Store manages the SQLite connection used for cost map exports.
type Store struct {
	db *sql.DB
}

// CostMapRecord is one exported cost map.
// Costs holds only reachable cells; every other cell of the level is implied unreachable.
type CostMapRecord struct {
	ID        int64
	Level     string
	Source    string
	Origin    gridgraph.Cell
	Width     int
	Height    int
	Costs     map[gridgraph.Cell]float64
	CreatedAt time.Time
}

// CostMapSummary describes a stored cost map without its cells.
type CostMapSummary struct {
	ID        int64
	Level     string
	Source    string
	Reachable int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// A leading '~' expands to the home directory; parent directories are created.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cost_maps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			source TEXT NOT NULL,
			origin_x INTEGER NOT NULL,
			origin_y INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_cost_maps_level ON cost_maps(level);

		CREATE TABLE IF NOT EXISTS cost_cells (
			map_id INTEGER NOT NULL REFERENCES cost_maps(id) ON DELETE CASCADE,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			cost REAL NOT NULL,
			PRIMARY KEY (map_id, x, y)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCostMap stores rec in a single transaction and returns the new id.
// rec.ID and rec.CreatedAt are ignored.
func (s *Store) SaveCostMap(ctx context.Context, rec CostMapRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO cost_maps (level, source, origin_x, origin_y, width, height)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Level, rec.Source, rec.Origin.X, rec.Origin.Y, rec.Width, rec.Height,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save cost map: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO cost_cells (map_id, x, y, cost) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for c, cost := range rec.Costs {
		if _, err := stmt.ExecContext(ctx, id, c.X, c.Y, cost); err != nil {
			return 0, fmt.Errorf("storage: cannot save cell %v: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit cost map: %w", err)
	}
	return id, nil
}

// LoadCostMap reads back the cost map stored under id.
func (s *Store) LoadCostMap(ctx context.Context, id int64) (CostMapRecord, error) {
	rec := CostMapRecord{ID: id}
	var createdAt any
	err := s.db.QueryRowContext(ctx,
		`SELECT level, source, origin_x, origin_y, width, height, created_at
		 FROM cost_maps WHERE id = ?`,
		id,
	).Scan(&rec.Level, &rec.Source, &rec.Origin.X, &rec.Origin.Y, &rec.Width, &rec.Height, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CostMapRecord{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return CostMapRecord{}, fmt.Errorf("storage: cannot query cost map: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)

	rows, err := s.db.QueryContext(ctx, "SELECT x, y, cost FROM cost_cells WHERE map_id = ?", id)
	if err != nil {
		return CostMapRecord{}, fmt.Errorf("storage: cannot query cells: %w", err)
	}
	defer rows.Close()

	rec.Costs = make(map[gridgraph.Cell]float64)
	for rows.Next() {
		var c gridgraph.Cell
		var cost float64
		if err := rows.Scan(&c.X, &c.Y, &cost); err != nil {
			return CostMapRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Costs[c] = cost
	}
	if err := rows.Err(); err != nil {
		return CostMapRecord{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// ListCostMaps returns summaries of the maps stored for level, newest first.
// An empty level lists every map.
func (s *Store) ListCostMaps(ctx context.Context, level string) ([]CostMapSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.id, m.level, m.source, m.created_at, COUNT(c.map_id)
		 FROM cost_maps m
		 LEFT JOIN cost_cells c ON c.map_id = m.id
		 WHERE ? = '' OR m.level = ?
		 GROUP BY m.id
		 ORDER BY m.id DESC`,
		level, level,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cost maps: %w", err)
	}
	defer rows.Close()

	var summaries []CostMapSummary
	for rows.Next() {
		var sum CostMapSummary
		var createdAt any
		if err := rows.Scan(&sum.ID, &sum.Level, &sum.Source, &createdAt, &sum.Reachable); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.CreatedAt = parseTime(createdAt)
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
