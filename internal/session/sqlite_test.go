package session

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-intake-server/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSnapshot(name string) Snapshot {
	sess := New()
	sess.Client.Name = name
	sess.Client.Diagnoses = []string{"COPD"}

	id, _ := domain.ParseItemID("tf2_g0_risk_0")
	checked := true
	tags := []string{"unsicherer Gang"}
	sess.Selections.Update(id, domain.SelectionUpdate{Checked: &checked, SubTags: &tags})
	return sess.Snapshot()
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot("Erika Mustermann")
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, loaded.ID)
	assert.Equal(t, "Erika Mustermann", loaded.Client.Name)
	assert.Equal(t, []string{"COPD"}, loaded.Client.Diagnoses)

	rec, ok := loaded.Selections["tf2_g0_risk_0"]
	require.True(t, ok)
	assert.True(t, rec.Checked)
	assert.Equal(t, []string{"unsicherer Gang"}, rec.SubTags)
}

func TestSQLiteStore_SaveUpdatesInPlace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot("Erika Mustermann")
	require.NoError(t, store.Save(ctx, snap))

	snap.Client.Name = "Max Mustermann"
	snap.UpdatedAt = snap.UpdatedAt.Add(time.Minute)
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Max Mustermann", loaded.Client.Name)

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Max Mustermann", infos[0].ClientName)
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteStore_ListOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := sampleSnapshot("Older")
	older.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	newer := sampleSnapshot("Newer")
	require.NoError(t, store.Save(ctx, older))
	require.NoError(t, store.Save(ctx, newer))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Newer", infos[0].ClientName)
	assert.Equal(t, "Older", infos[1].ClientName)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot("Erika Mustermann")
	require.NoError(t, store.Save(ctx, snap))
	require.NoError(t, store.Delete(ctx, snap.ID))

	_, err := store.Load(ctx, snap.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a missing session is not an error.
	assert.NoError(t, store.Delete(ctx, "no-such-id"))
}

func TestSQLiteStore_ExportImport(t *testing.T) {
	src := newTestStore(t)
	ctx := context.Background()

	first := sampleSnapshot("Erika Mustermann")
	second := sampleSnapshot("Max Mustermann")
	require.NoError(t, src.Save(ctx, first))
	require.NoError(t, src.Save(ctx, second))

	var buf bytes.Buffer
	require.NoError(t, src.ExportJSON(ctx, &buf))

	dst := newTestStore(t)
	require.NoError(t, dst.Save(ctx, first)) // pre-existing, must be skipped

	imported, skipped, err := dst.ImportJSON(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, skipped)

	infos, err := dst.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestSQLiteStore_ImportBadJSON(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.ImportJSON(context.Background(), bytes.NewReader([]byte("not json")))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := sampleSnapshot("Erika Mustermann")
	sess := FromSnapshot(snap)
	assert.Equal(t, snap.ID, sess.ID)
	assert.Equal(t, snap, sess.Snapshot())
}
