package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// sqliteStore implements Store on a SQLite database
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite decision store with WAL enabled.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS decisions (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	workflow TEXT NOT NULL,
	severity REAL NOT NULL,
	flags TEXT NOT NULL,
	decision_json TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_workflow ON decisions(workflow);
CREATE INDEX IF NOT EXISTS idx_decisions_created_at ON decisions(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Save stores one decision record
func (s *sqliteStore) Save(ctx context.Context, source string, decision model.Decision) (model.Record, error) {
	record := model.Record{
		ID:        newRecordID(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Decision:  decision,
	}

	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return model.Record{}, fmt.Errorf("marshal decision: %w", err)
	}
	flagsJSON, err := json.Marshal(decision.Flags)
	if err != nil {
		return model.Record{}, fmt.Errorf("marshal flags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO decisions (id, source, workflow, severity, flags, decision_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Source,
		string(decision.Workflow),
		decision.Severity,
		string(flagsJSON),
		string(decisionJSON),
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.Record{}, fmt.Errorf("insert decision: %w", err)
	}

	return record, nil
}

// Get returns one record by ID
func (s *sqliteStore) Get(ctx context.Context, id string) (model.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, source, decision_json, created_at FROM decisions WHERE id = ?`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return model.Record{}, ErrNotFound
	}
	return record, err
}

// List returns records newest first
func (s *sqliteStore) List(ctx context.Context, limit int) ([]model.Record, error) {
	query := `SELECT id, source, decision_json, created_at FROM decisions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (model.Record, error) {
	var (
		record       model.Record
		decisionJSON string
		createdAt    string
	)
	if err := row.Scan(&record.ID, &record.Source, &decisionJSON, &createdAt); err != nil {
		return model.Record{}, err
	}

	if err := json.Unmarshal([]byte(decisionJSON), &record.Decision); err != nil {
		return model.Record{}, fmt.Errorf("unmarshal decision %s: %w", record.ID, err)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Record{}, fmt.Errorf("parse created_at %s: %w", record.ID, err)
	}
	record.CreatedAt = t

	return record, nil
}
