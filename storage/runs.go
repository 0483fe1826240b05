package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"kalibot/model"
)

// Run is one recorded tool execution. Command is stored post-redaction.
type Run struct {
	ID        string
	UserID    int64
	Tool      string
	Command   string
	Success   bool
	ExitCode  int
	Duration  time.Duration
	StartedAt time.Time
}

// RunStorage persists tool run history in SQLite.
type RunStorage struct {
	db *sql.DB
}

// NewRunStorage opens (creating if needed) the run history database under
// dataDir.
func NewRunStorage(dataDir string) (*RunStorage, error) {
	dbPath := filepath.Join(dataDir, "runs.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	storage := &RunStorage{db: db}

	if err := storage.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return storage, nil
}

func (rs *RunStorage) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		tool TEXT NOT NULL,
		command TEXT NOT NULL,
		success INTEGER NOT NULL,
		exit_code INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		started_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_user ON runs(user_id);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := rs.db.Exec(schema)
	return err
}

// Record implements assistant.RunRecorder.
func (rs *RunStorage) Record(ctx context.Context, userID int64, tool string, res model.ExecutionResult) error {
	_, err := rs.db.ExecContext(ctx,
		`INSERT INTO runs (id, user_id, tool, command, success, exit_code, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		userID,
		tool,
		res.Command,
		res.Success,
		res.ExitCode,
		res.Duration.Milliseconds(),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the newest runs for a user, most recent first.
func (rs *RunStorage) Recent(ctx context.Context, userID int64, limit int) ([]Run, error) {
	rows, err := rs.db.QueryContext(ctx,
		`SELECT id, user_id, tool, command, success, exit_code, duration_ms, started_at
		 FROM runs WHERE user_id = ? ORDER BY started_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durMs int64
		if err := rows.Scan(&r.ID, &r.UserID, &r.Tool, &r.Command, &r.Success, &r.ExitCode, &durMs, &r.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durMs) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountForUser reports how many runs a user has recorded.
func (rs *RunStorage) CountForUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := rs.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM runs WHERE user_id = ?`, userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (rs *RunStorage) Close() error {
	return rs.db.Close()
}
