// Package jobstore persists submitted search_range requests so a
// search's outcome and matches can be polled by id after the request
// that ran it. It stores a search job's request and match list; it never
// stores core RNG or mechanic state. Jobs are not resumed: an interrupted
// job keeps only the matches recorded before it stopped.
package jobstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps a sqlite-backed search_jobs/search_job_matches schema.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to a sqlite database at path in WAL mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("jobstore: open: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("jobstore: enable WAL: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the search_jobs and search_job_matches tables.
func (s *Store) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS search_jobs (
			id TEXT PRIMARY KEY,
			filter_json TEXT NOT NULL,
			seed_lo INTEGER NOT NULL,
			seed_hi INTEGER NOT NULL,
			max_results INTEGER NOT NULL,
			version TEXT NOT NULL,
			state TEXT NOT NULL DEFAULT 'ready',
			checked INTEGER NOT NULL DEFAULT 0,
			found INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS search_job_matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			FOREIGN KEY (job_id) REFERENCES search_jobs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_job_matches_job_id ON search_job_matches(job_id)`,
	}
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("jobstore: migration failed: %w", err)
		}
	}
	return nil
}

// Job is one persisted search_range request.
type Job struct {
	ID         string
	FilterJSON json.RawMessage
	SeedLo     int32
	SeedHi     int32
	MaxResults int
	Version    string
	State      string
	Checked    uint64
	Found      uint64
	CreatedAt  time.Time
}

// CreateJob inserts a new job in the "ready" state and returns its id.
func (s *Store) CreateJob(filterJSON json.RawMessage, seedLo, seedHi int32, maxResults int, version string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO search_jobs (id, filter_json, seed_lo, seed_hi, max_results, version, state) VALUES (?, ?, ?, ?, ?, ?, 'ready')`,
		id, string(filterJSON), seedLo, seedHi, maxResults, version,
	)
	if err != nil {
		return "", fmt.Errorf("jobstore: create job: %w", err)
	}
	return id, nil
}

// UpdateProgress records the job's running counters and state.
func (s *Store) UpdateProgress(id string, state string, checked, found uint64) error {
	_, err := s.db.Exec(
		`UPDATE search_jobs SET state = ?, checked = ?, found = ? WHERE id = ?`,
		state, checked, found, id,
	)
	return err
}

// Complete marks a job finished, stamping its completion time.
func (s *Store) Complete(id string, state string, checked, found uint64) error {
	_, err := s.db.Exec(
		`UPDATE search_jobs SET state = ?, checked = ?, found = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?`,
		state, checked, found, id,
	)
	return err
}

// AppendMatch records one matching seed for a job.
func (s *Store) AppendMatch(jobID string, seed int32) error {
	_, err := s.db.Exec(`INSERT INTO search_job_matches (job_id, seed) VALUES (?, ?)`, jobID, seed)
	return err
}

// GetJob fetches a job's current state.
func (s *Store) GetJob(id string) (*Job, error) {
	row := s.db.QueryRow(
		`SELECT id, filter_json, seed_lo, seed_hi, max_results, version, state, checked, found, created_at FROM search_jobs WHERE id = ?`, id,
	)
	var j Job
	var filterJSON string
	if err := row.Scan(&j.ID, &filterJSON, &j.SeedLo, &j.SeedHi, &j.MaxResults, &j.Version, &j.State, &j.Checked, &j.Found, &j.CreatedAt); err != nil {
		return nil, fmt.Errorf("jobstore: get job %s: %w", id, err)
	}
	j.FilterJSON = json.RawMessage(filterJSON)
	return &j, nil
}

// ListMatches returns every matching seed recorded for a job, in
// insertion order.
func (s *Store) ListMatches(jobID string) ([]int32, error) {
	rows, err := s.db.Query(`SELECT seed FROM search_job_matches WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("jobstore: list matches for %s: %w", jobID, err)
	}
	defer rows.Close()

	var seeds []int32
	for rows.Next() {
		var seed int32
		if err := rows.Scan(&seed); err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, rows.Err()
}
