package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/sis-intake-server/internal/domain"
)

// PostgresStore implements the Store interface using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL session store over an existing
// connection and ensures the schema exists.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		client_name TEXT DEFAULT '',
		client_json JSONB NOT NULL,
		selections_json JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL creates a new PostgreSQL session store from a
// connection URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Save stores or replaces a session snapshot.
func (s *PostgresStore) Save(ctx context.Context, snap Snapshot) error {
	clientJSON, err := json.Marshal(snap.Client)
	if err != nil {
		return fmt.Errorf("failed to encode client: %w", err)
	}
	selectionsJSON, err := json.Marshal(snap.Selections)
	if err != nil {
		return fmt.Errorf("failed to encode selections: %w", err)
	}

	query := `
		INSERT INTO sessions (id, client_name, client_json, selections_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			client_json = EXCLUDED.client_json,
			selections_json = EXCLUDED.selections_json,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		snap.ID, snap.Client.Name, clientJSON, selectionsJSON, snap.CreatedAt, snap.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load retrieves a session snapshot by identifier.
func (s *PostgresStore) Load(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	var clientJSON, selectionsJSON []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT id, client_json, selections_json, created_at, updated_at
		FROM sessions WHERE id = $1
	`, id).Scan(&snap.ID, &clientJSON, &selectionsJSON, &snap.CreatedAt, &snap.UpdatedAt)
	if err == sql.ErrNoRows {
		return Snapshot{}, domain.ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load session: %w", err)
	}

	if err := json.Unmarshal(clientJSON, &snap.Client); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode client: %w", err)
	}
	if err := json.Unmarshal(selectionsJSON, &snap.Selections); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode selections: %w", err)
	}
	return snap, nil
}

// List returns all stored sessions, most recently updated first.
func (s *PostgresStore) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, updated_at
		FROM sessions
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var result []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.ID, &info.ClientName, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, info)
	}
	return result, rows.Err()
}

// Delete removes a session by identifier.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", id)
	return err
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
