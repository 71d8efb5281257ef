// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history archives sent digests in a local SQLite database so past
// runs can be listed and inspected. The archive is additive bookkeeping: it
// never feeds back into search or deduplication.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the digest archive database.
type Store struct {
	db *sql.DB
}

// Run is one archived digest run.
type Run struct {
	ID          int64
	RanAt       time.Time
	WindowFrom  string
	WindowTo    string
	TotalPapers int
	Subject     string
}

// RunPaper is one paper a run mailed, in report order.
type RunPaper struct {
	Position   int
	Identifier string
	Title      string
	Term       string
	URL        string
}

// Open opens or creates the archive database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ran_at TEXT NOT NULL,
			window_from TEXT,
			window_to TEXT,
			total_papers INTEGER,
			subject TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS run_papers (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			identifier TEXT NOT NULL,
			title TEXT,
			term TEXT,
			url TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_papers_run_id ON run_papers(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record archives one run and its papers in a single transaction and
// returns the run's ID.
func (s *Store) Record(ctx context.Context, run Run, papers []RunPaper) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (ran_at, window_from, window_to, total_papers, subject) VALUES (?, ?, ?, ?, ?)`,
		run.RanAt.UTC().Format(time.RFC3339), run.WindowFrom, run.WindowTo, run.TotalPapers, run.Subject)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, p := range papers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_papers (run_id, position, identifier, title, term, url) VALUES (?, ?, ?, ?, ?, ?)`,
			runID, p.Position, p.Identifier, p.Title, p.Term, p.URL); err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", p.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs lists the most recent archived runs, newest first. A limit of 0
// means 20.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ran_at, window_from, window_to, total_papers, subject
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ranAt string
		if err := rows.Scan(&r.ID, &ranAt, &r.WindowFrom, &r.WindowTo, &r.TotalPapers, &r.Subject); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, ranAt); parseErr == nil {
			r.RanAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Papers lists one run's papers in report order.
func (s *Store) Papers(ctx context.Context, runID int64) ([]RunPaper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, identifier, title, term, url
		 FROM run_papers WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run papers: %w", err)
	}
	defer rows.Close()

	var papers []RunPaper
	for rows.Next() {
		var p RunPaper
		if err := rows.Scan(&p.Position, &p.Identifier, &p.Title, &p.Term, &p.URL); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
