// Package storage persists generated charts as self-describing JSON blobs
// in a single SQLite table, using a pure-Go modernc.org/sqlite driver
// behind database/sql.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"

	_ "modernc.org/sqlite"
)

// chartBlob is the persisted-state layout: self-describing top-level keys,
// body keys lowercase enumeration names (already satisfied by
// domain.BodyState's JSON tags).
type chartBlob struct {
	PlanetPositions []domain.BodyState `json:"planet_positions"`
	Houses          []domain.House     `json:"houses"`
	Aspects         []domain.Aspect    `json:"aspects"`
	LunarPhase      domain.LunarPhase  `json:"lunar_phase"`
	Chart           *domain.Chart      `json:"chart"`
}

// ChartStore is a single shared *sql.DB connection pool over the single
// charts(id, created_at, blob) table.
type ChartStore struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewChartStore opens (creating if necessary) the SQLite database at path
// and ensures the charts table exists.
func NewChartStore(path string, logger *logging.Logger) (*ChartStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart store: %w", err)
	}

	store := &ChartStore{db: db, logger: logger}
	if err := store.initialize(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *ChartStore) initialize() error {
	const createTableSQL = `
		CREATE TABLE IF NOT EXISTS charts (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			blob TEXT NOT NULL
		);
	`
	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create charts table: %w", err)
	}
	s.logger.Info().Str("table", "charts").Msg("chart store initialized")
	return nil
}

// Save serializes a chart into the persisted-state layout and upserts it.
func (s *ChartStore) Save(chart *domain.Chart) error {
	blob := chartBlob{
		PlanetPositions: chart.Bodies,
		Houses:          chart.Houses,
		Aspects:         chart.Aspects,
		LunarPhase:      chart.LunarPhase,
		Chart:           chart,
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("failed to marshal chart blob: %w", err)
	}

	const upsertSQL = `
		INSERT INTO charts (id, created_at, blob) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at, blob = excluded.blob;
	`
	if _, err := s.db.Exec(upsertSQL, chart.ID, time.Now().UTC(), string(data)); err != nil {
		return fmt.Errorf("failed to persist chart %s: %w", chart.ID, err)
	}
	return nil
}

// Load retrieves a chart by its opaque identity.
func (s *ChartStore) Load(id string) (*domain.Chart, error) {
	var blobText string
	row := s.db.QueryRow(`SELECT blob FROM charts WHERE id = ?`, id)
	if err := row.Scan(&blobText); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chart %s not found", id)
		}
		return nil, fmt.Errorf("failed to load chart %s: %w", id, err)
	}

	var blob chartBlob
	if err := json.Unmarshal([]byte(blobText), &blob); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart %s: %w", id, err)
	}
	return blob.Chart, nil
}

// Delete removes a chart by identity.
func (s *ChartStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM charts WHERE id = ?`, id)
	return err
}

// Close releases the underlying connection pool.
func (s *ChartStore) Close() error {
	return s.db.Close()
}
