package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool         { return &b }
func strPtr(s string) *string      { return &s }
func tagsPtr(t []string) *[]string { return &t }

func TestSelectionStore_UpdateMergesPerField(t *testing.T) {
	store := NewSelectionStore()
	id, _ := ParseItemID("tf2_g0_risk_0")

	store.Update(id, SelectionUpdate{Checked: boolPtr(true)})
	store.Update(id, SelectionUpdate{SubTags: tagsPtr([]string{"Balancestörungen"})})
	store.Update(id, SelectionUpdate{DetailVal: strPtr("2 PK")})

	rec, ok := store.Get(id)
	require.True(t, ok)
	assert.True(t, rec.Checked, "earlier checked flag must survive later partial updates")
	assert.Equal(t, []string{"Balancestörungen"}, rec.SubTags)
	assert.Equal(t, "2 PK", rec.DetailVal)
}

func TestSelectionStore_ZeroRecordIsRemoved(t *testing.T) {
	store := NewSelectionStore()
	id, _ := ParseItemID("tf1_g0_stat_0")

	store.Update(id, SelectionUpdate{Checked: boolPtr(true)})
	require.Equal(t, 1, store.Len())

	store.Update(id, SelectionUpdate{Checked: boolPtr(false)})
	assert.Equal(t, 0, store.Len(), "a record reset to defaults must disappear")
	_, ok := store.Get(id)
	assert.False(t, ok)
}

func TestSelectionStore_ToggleSubTag(t *testing.T) {
	store := NewSelectionStore()
	id, _ := ParseItemID("tf1_g0_risk_0")

	store.ToggleSubTag(id, "Zeitlich desorientiert")
	store.ToggleSubTag(id, "Örtlich desorientiert")
	rec, _ := store.Get(id)
	assert.Equal(t, []string{"Zeitlich desorientiert", "Örtlich desorientiert"}, rec.SubTags)

	store.ToggleSubTag(id, "Zeitlich desorientiert")
	rec, _ = store.Get(id)
	assert.Equal(t, []string{"Örtlich desorientiert"}, rec.SubTags)
}

func TestSelectionStore_RemoveOriginPreservesUserState(t *testing.T) {
	store := NewSelectionStore()
	id, _ := ParseItemID("tf2_g0_stat_0")

	store.Update(id, SelectionUpdate{
		Checked: boolPtr(true),
		SubTags: tagsPtr([]string{"Hemiparese"}),
	})
	store.AddOrigin(id, "Apoplex (Schlaganfall)")

	store.RemoveOrigin("Apoplex (Schlaganfall)")

	rec, ok := store.Get(id)
	require.True(t, ok)
	assert.Empty(t, rec.OriginVals)
	assert.True(t, rec.Checked, "checked state is independent of provenance")
	assert.Equal(t, []string{"Hemiparese"}, rec.SubTags, "qualifier tags survive provenance removal")
}

func TestSelectionStore_RemoveOriginDropsOrphanedRecords(t *testing.T) {
	store := NewSelectionStore()
	id, _ := ParseItemID("tf3_g0_stat_1")

	// Record whose only content is the diagnosis justification.
	store.AddOrigin(id, "COPD")
	require.Equal(t, 1, store.Len())

	store.RemoveOrigin("COPD")
	assert.Equal(t, 0, store.Len())
}

func TestSelectionStore_SnapshotRoundTrip(t *testing.T) {
	store := NewSelectionStore()
	id1, _ := ParseItemID("tf4_g0_risk_1")
	id2, _ := ParseItemID("tf6_g1_gateway")

	store.Update(id1, SelectionUpdate{Checked: boolPtr(true), SubTags: tagsPtr([]string{"BMI niedrig"})})
	store.Update(id2, SelectionUpdate{GatewayVal: boolPtr(true)})

	snap := store.Snapshot()
	require.Len(t, snap, 2)

	restored := NewSelectionStore()
	restored.RestoreSnapshot(snap)
	assert.Equal(t, store.Len(), restored.Len())

	rec, ok := restored.Get(id1)
	require.True(t, ok)
	assert.Equal(t, []string{"BMI niedrig"}, rec.SubTags)
}

func TestSelectionStore_RestoreSkipsMalformedKeys(t *testing.T) {
	restored := NewSelectionStore()
	restored.RestoreSnapshot(map[string]SelectionRecord{
		"tf1_g0_risk_0": {Checked: true},
		"not_an_id":     {Checked: true},
	})
	assert.Equal(t, 1, restored.Len())
}

func TestSelectionStore_RangeIsDeterministic(t *testing.T) {
	store := NewSelectionStore()
	for _, raw := range []string{"tf5_g0_stat_1", "tf1_g0_risk_0", "tf2_g0_aid_3"} {
		id, _ := ParseItemID(raw)
		store.Update(id, SelectionUpdate{Checked: boolPtr(true)})
	}

	var first, second []string
	store.Range(func(id ItemID, _ SelectionRecord) bool {
		first = append(first, id.String())
		return true
	})
	store.Range(func(id ItemID, _ SelectionRecord) bool {
		second = append(second, id.String())
		return true
	})
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"tf1_g0_risk_0", "tf2_g0_aid_3", "tf5_g0_stat_1"}, first)
}
