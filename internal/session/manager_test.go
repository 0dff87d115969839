package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-intake-server/internal/domain"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewManager(store, logger)
}

func TestManager_CreatePersistsImmediately(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	sess, err := m.Create(ctx)
	require.NoError(t, err)

	infos, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, sess.ID, infos[0].ID)
}

func TestManager_WithPersistsOnSuccess(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	sess, err := m.Create(ctx)
	require.NoError(t, err)

	err = m.With(ctx, sess.ID, func(s *Session) error {
		s.Client.Name = "Erika Mustermann"
		return nil
	})
	require.NoError(t, err)

	// Drop the live copy so the next access reads from the store.
	m.mu.Lock()
	delete(m.live, sess.ID)
	m.mu.Unlock()

	err = m.View(ctx, sess.ID, func(s *Session) error {
		assert.Equal(t, "Erika Mustermann", s.Client.Name)
		return nil
	})
	require.NoError(t, err)
}

func TestManager_WithSkipsSaveOnError(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	sess, err := m.Create(ctx)
	require.NoError(t, err)

	opErr := errors.New("operation failed")
	err = m.With(ctx, sess.ID, func(s *Session) error {
		s.Client.Name = "Should not persist"
		return opErr
	})
	assert.ErrorIs(t, err, opErr)

	m.mu.Lock()
	delete(m.live, sess.ID)
	m.mu.Unlock()

	err = m.View(ctx, sess.ID, func(s *Session) error {
		assert.Empty(t, s.Client.Name)
		return nil
	})
	require.NoError(t, err)
}

func TestManager_UnknownSession(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	err := m.With(ctx, "no-such-id", func(*Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = m.View(ctx, "no-such-id", func(*Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManager_Delete(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	sess, err := m.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, sess.ID))

	err = m.View(ctx, sess.ID, func(*Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
