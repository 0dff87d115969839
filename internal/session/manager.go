package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager keeps live sessions in memory and writes them through to the
// persistence store. Mutation of a session is serialized by the manager lock;
// the domain state itself is lock-free.
type Manager struct {
	mu     sync.Mutex
	store  Store
	live   map[string]*Session
	logger *logrus.Logger
}

// NewManager creates a session manager over a store.
func NewManager(store Store, logger *logrus.Logger) *Manager {
	return &Manager{
		store:  store,
		live:   make(map[string]*Session),
		logger: logger,
	}
}

// Create starts a new empty session and persists it.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	sess := New()
	if err := m.store.Save(ctx, sess.Snapshot()); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.live[sess.ID] = sess
	m.mu.Unlock()

	m.logger.WithField("session_id", sess.ID).Info("Session created")
	return sess, nil
}

// With runs fn against the session under the manager lock and persists the
// session afterwards. The store write happens only when fn succeeds.
func (m *Manager) With(ctx context.Context, id string, fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.loadLocked(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(sess); err != nil {
		return err
	}
	return m.store.Save(ctx, sess.Snapshot())
}

// View runs fn against the session under the manager lock without persisting.
func (m *Manager) View(ctx context.Context, id string, fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.loadLocked(ctx, id)
	if err != nil {
		return err
	}
	return fn(sess)
}

// loadLocked returns the live session, falling back to the store.
func (m *Manager) loadLocked(ctx context.Context, id string) (*Session, error) {
	if sess, ok := m.live[id]; ok {
		return sess, nil
	}
	snap, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	sess := FromSnapshot(snap)
	m.live[id] = sess
	return sess, nil
}

// List returns the stored session listing.
func (m *Manager) List(ctx context.Context) ([]Info, error) {
	return m.store.List(ctx)
}

// Delete removes a session from memory and from the store.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.live, id)
	m.mu.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	m.logger.WithField("session_id", id).Info("Session deleted")
	return nil
}
