// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package leadstore archives harvested leads in SQLite or PostgreSQL so
// earlier runs can be listed, filtered, and re-exported.
package leadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/lead-harvester/pkg/types"
)

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "postgres"
)

// ErrRunNotFound is returned when a run ID is not in the store.
var ErrRunNotFound = errors.New("run not found")

// Store manages the lead archive database.
type Store struct {
	db         *sql.DB
	driver     string
	maxResults int
}

// Run describes one archived harvest.
type Run struct {
	ID        int64     `json:"id" yaml:"id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Pages     int       `json:"pages" yaml:"pages"`
	Output    string    `json:"output" yaml:"output"`
	LeadCount int       `json:"lead_count" yaml:"lead_count"`
}

// Open connects to the archive named by cfg.DSN and creates the schema if
// needed. A DSN starting with postgres:// or postgresql:// selects
// PostgreSQL; anything else is a SQLite file path.
func Open(ctx context.Context, cfg types.StoreConfig) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("no store DSN configured")
	}

	driver, source, err := dataSource(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{db: db, driver: driver, maxResults: 50}
	if err := s.createSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// dataSource maps a DSN to a driver name and driver-specific source string.
func dataSource(dsn string) (driver, source string, err error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return driverPostgres, dsn, nil
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("creating database directory: %w", err)
		}
	}
	return driverSQLite, path + "?_journal_mode=WAL&_foreign_keys=on", nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema(ctx context.Context) error {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == driverPostgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			` + idColumn + `,
			started_at TEXT NOT NULL,
			pages INTEGER NOT NULL,
			output TEXT NOT NULL,
			lead_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			linkedin_url TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_title ON leads(title)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_company ON leads(company)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != driverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RecordRun stores a finished harvest and its leads in one transaction and
// returns the new run ID. Lead positions follow slice order.
func (s *Store) RecordRun(ctx context.Context, run Run, leads []types.Lead) (int64, error) {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRowContext(ctx,
		s.rebind(`INSERT INTO runs (started_at, pages, output, lead_count) VALUES (?, ?, ?, ?) RETURNING id`),
		run.StartedAt.UTC().Format(time.RFC3339Nano), run.Pages, run.Output, len(leads),
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind(
		`INSERT INTO leads (run_id, position, name, email, title, company, linkedin_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range leads {
		if _, err := stmt.ExecContext(ctx, runID, i, l.Name, l.Email, l.Title, l.Company, l.LinkedInURL); err != nil {
			return 0, fmt.Errorf("inserting lead %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs returns every archived run, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, pages, output, lead_count FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Pages, &r.Output, &r.LeadCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, started); parseErr == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRunID returns the ID of the most recent run.
func (s *Store) LatestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRunNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("querying latest run: %w", err)
	}
	return id, nil
}
