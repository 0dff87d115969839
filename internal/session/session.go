// Package session holds the unit of intake work: one client profile together
// with its selection state, plus the persistence stores that snapshot and
// restore sessions across restarts.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sis-intake-server/internal/domain"
)

// Session is the live, in-memory intake state for one client. All mutation
// goes through the intake service; the session itself is plain state.
type Session struct {
	ID         string
	Client     domain.ClientProfile
	Selections *domain.SelectionStore
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New creates an empty session with a fresh identifier.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.New().String(),
		Client:     domain.NewClientProfile(),
		Selections: domain.NewSelectionStore(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Touch bumps the modification timestamp.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// Snapshot is the serializable form of a session.
type Snapshot struct {
	ID         string                            `json:"id"`
	Client     domain.ClientProfile              `json:"client"`
	Selections map[string]domain.SelectionRecord `json:"selections"`
	CreatedAt  time.Time                         `json:"createdAt"`
	UpdatedAt  time.Time                         `json:"updatedAt"`
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:         s.ID,
		Client:     s.Client,
		Selections: s.Selections.Snapshot(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromSnapshot rebuilds a live session from a persisted snapshot.
func FromSnapshot(snap Snapshot) *Session {
	sess := &Session{
		ID:         snap.ID,
		Client:     snap.Client,
		Selections: domain.NewSelectionStore(),
		CreatedAt:  snap.CreatedAt,
		UpdatedAt:  snap.UpdatedAt,
	}
	sess.Selections.RestoreSnapshot(snap.Selections)
	return sess
}

// Info is the listing view of a stored session.
type Info struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Store persists session snapshots.
type Store interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context, id string) (Snapshot, error)
	List(ctx context.Context) ([]Info, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
