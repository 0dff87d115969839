package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sis-intake-server/internal/domain"
)

// SQLiteStore implements the Store interface using SQLite. Client profile and
// selection state are stored as JSON documents; the listing columns are
// denormalized for cheap queries.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite session store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		client_name TEXT DEFAULT '',
		client_json TEXT NOT NULL,
		selections_json TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Save stores or replaces a session snapshot.
func (s *SQLiteStore) Save(ctx context.Context, snap Snapshot) error {
	clientJSON, err := json.Marshal(snap.Client)
	if err != nil {
		return fmt.Errorf("failed to encode client: %w", err)
	}
	selectionsJSON, err := json.Marshal(snap.Selections)
	if err != nil {
		return fmt.Errorf("failed to encode selections: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, client_name, client_json, selections_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			client_name = excluded.client_name,
			client_json = excluded.client_json,
			selections_json = excluded.selections_json,
			updated_at = excluded.updated_at
	`, snap.ID, snap.Client.Name, string(clientJSON), string(selectionsJSON), snap.CreatedAt, snap.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load retrieves a session snapshot by identifier.
func (s *SQLiteStore) Load(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	var clientJSON, selectionsJSON string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, client_json, selections_json, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&snap.ID, &clientJSON, &selectionsJSON, &snap.CreatedAt, &snap.UpdatedAt)
	if err == sql.ErrNoRows {
		return Snapshot{}, domain.ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load session: %w", err)
	}

	if err := json.Unmarshal([]byte(clientJSON), &snap.Client); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode client: %w", err)
	}
	if err := json.Unmarshal([]byte(selectionsJSON), &snap.Selections); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode selections: %w", err)
	}
	return snap, nil
}

// List returns all stored sessions, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]Info, error) {
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
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	return err
}

// SessionExport is the JSON envelope for exported sessions.
type SessionExport struct {
	Version    string     `json:"version"`
	ExportedAt time.Time  `json:"exported_at"`
	Count      int        `json:"count"`
	Sessions   []Snapshot `json:"sessions"`
}

// ExportJSON exports all sessions to a JSON writer.
func (s *SQLiteStore) ExportJSON(ctx context.Context, writer io.Writer) error {
	infos, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	export := &SessionExport{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Count:      len(infos),
	}
	for _, info := range infos {
		snap, err := s.Load(ctx, info.ID)
		if err != nil {
			return fmt.Errorf("failed to load session %s: %w", info.ID, err)
		}
		export.Sessions = append(export.Sessions, snap)
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// ImportJSON imports sessions from a JSON reader. Sessions that already exist
// are skipped.
func (s *SQLiteStore) ImportJSON(ctx context.Context, reader io.Reader) (imported int, skipped int, err error) {
	var export SessionExport
	if err := json.NewDecoder(reader).Decode(&export); err != nil {
		return 0, 0, fmt.Errorf("failed to decode JSON: %w", err)
	}

	for _, snap := range export.Sessions {
		_, err := s.Load(ctx, snap.ID)
		if err == nil {
			skipped++
			continue
		}
		if err != domain.ErrNotFound {
			return imported, skipped, fmt.Errorf("failed to check existing: %w", err)
		}

		if err := s.Save(ctx, snap); err != nil {
			return imported, skipped, fmt.Errorf("failed to save: %w", err)
		}
		imported++
	}

	return imported, skipped, nil
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
