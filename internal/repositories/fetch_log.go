package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/bandsite/internal/models"
	"github.com/desertthunder/bandsite/internal/shared"
)

const fetchLogColumns = "id, sequence, source_url, status_code, show_count, error, duration_ms, created_at"

// FetchLogRepository implements [models.Repository] for [models.FetchLog] persistence.
type FetchLogRepository struct {
	db *sql.DB
}

// NewFetchLogRepository creates a new [FetchLogRepository] with the given database connection
func NewFetchLogRepository(db *sql.DB) *FetchLogRepository {
	return &FetchLogRepository{db: db}
}

var _ models.Repository[*models.FetchLog] = (*FetchLogRepository)(nil)

// Create inserts a fetch log with a generated ID and sequence
func (r *FetchLogRepository) Create(entry *models.FetchLog) error {
	entry.SetID(shared.GenerateID())
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "fetch_logs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	entry.SetSequence(sequence)

	query := `INSERT INTO fetch_logs (` + fetchLogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query,
		entry.ID(), sequence, entry.SourceURL, entry.StatusCode, entry.ShowCount,
		entry.Error, entry.Duration.Milliseconds(), entry.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fetch log: %w", err)
	}

	return nil
}

// Get retrieves a fetch log by ID
func (r *FetchLogRepository) Get(id string) (*models.FetchLog, error) {
	row := r.db.QueryRow(`SELECT `+fetchLogColumns+` FROM fetch_logs WHERE id = ?`, id)

	entry, err := scanFetchLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: fetch log %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fetch log: %w", err)
	}

	return entry, nil
}

// List returns up to limit fetch logs, newest first. A non-positive limit returns all of them.
func (r *FetchLogRepository) List(limit int) ([]*models.FetchLog, error) {
	query := `SELECT ` + fetchLogColumns + ` FROM fetch_logs ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fetch logs: %w", err)
	}
	defer rows.Close()

	entries := []*models.FetchLog{}
	for rows.Next() {
		entry, err := scanFetchLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fetch log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fetch logs: %w", err)
	}

	return entries, nil
}

// Latest returns the most recent fetch log
func (r *FetchLogRepository) Latest() (*models.FetchLog, error) {
	entries, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no fetch logs", shared.ErrNotFound)
	}
	return entries[0], nil
}

// Prune deletes all but the newest keep entries and returns how many were removed.
func (r *FetchLogRepository) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := r.db.Exec(`
		DELETE FROM fetch_logs
		WHERE id NOT IN (SELECT id FROM fetch_logs ORDER BY sequence DESC LIMIT ?)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune fetch logs: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFetchLog(s scanner) (*models.FetchLog, error) {
	var (
		id         string
		sequence   int
		sourceURL  string
		statusCode int
		showCount  int
		errText    string
		durationMS int64
		createdAt  time.Time
	)

	if err := s.Scan(&id, &sequence, &sourceURL, &statusCode, &showCount, &errText, &durationMS, &createdAt); err != nil {
		return nil, err
	}

	entry := models.NewFetchLog(sourceURL, statusCode, showCount, time.Duration(durationMS)*time.Millisecond, nil)
	entry.Error = errText
	entry.SetID(id)
	entry.SetSequence(sequence)
	entry.SetCreatedAt(createdAt)
	return entry, nil
}

// FetchLogRecorder adapts [FetchLogRepository] to services.FetchRecorder.
type FetchLogRecorder struct {
	repo *FetchLogRepository
}

// NewFetchLogRecorder creates a new [FetchLogRecorder] with the given repository
func NewFetchLogRecorder(repo *FetchLogRepository) *FetchLogRecorder {
	return &FetchLogRecorder{repo: repo}
}

// RecordFetch persists entry.
func (a *FetchLogRecorder) RecordFetch(entry *models.FetchLog) error {
	if err := a.repo.Create(entry); err != nil {
		return fmt.Errorf("failed to record fetch: %w", err)
	}
	return nil
}
