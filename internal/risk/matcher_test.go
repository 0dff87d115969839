package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/domain"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	return NewMatcher(catalog.Default())
}

func check(store *domain.SelectionStore, raw string) {
	id, _ := domain.ParseItemID(raw)
	checked := true
	store.Update(id, domain.SelectionUpdate{Checked: &checked})
}

func checkWithTags(store *domain.SelectionStore, raw string, tags ...string) {
	id, _ := domain.ParseItemID(raw)
	checked := true
	store.Update(id, domain.SelectionUpdate{Checked: &checked, SubTags: &tags})
}

func TestEvidenceFor_DiagnosisSource(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()

	ev := m.EvidenceFor("Sturz", []string{"Apoplex (Schlaganfall)"}, store)
	assert.Equal(t, []string{"Apoplex (Schlaganfall)"}, ev.Diagnoses)
	assert.Empty(t, ev.TopicAreas)
	assert.True(t, ev.HasAny())

	// Unknown and unrelated diagnoses contribute nothing.
	ev = m.EvidenceFor("Sturz", []string{"Erfundene Diagnose", "COPD"}, store)
	assert.Empty(t, ev.Diagnoses)
	assert.False(t, ev.HasAny())
}

func TestEvidenceFor_DuplicateDiagnosisListedOnce(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()

	ev := m.EvidenceFor("Sturz", []string{"Apoplex (Schlaganfall)", "Apoplex (Schlaganfall)"}, store)
	assert.Equal(t, []string{"Apoplex (Schlaganfall)"}, ev.Diagnoses)
}

func TestEvidenceFor_TagPattern(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()
	checkWithTags(store, "tf4_g0_risk_0", "Harninkontinenz")

	ev := m.EvidenceFor("Harninkontinenz", nil, store)
	require.Len(t, ev.TopicAreas, 1)
	assert.Equal(t, domain.AreaSelfCare.Label(), ev.TopicAreas[0])

	// Matching is case-insensitive.
	store2 := domain.NewSelectionStore()
	checkWithTags(store2, "tf4_g0_risk_0", "VORLAGEN nachts")
	ev = m.EvidenceFor("Harninkontinenz", nil, store2)
	assert.Len(t, ev.TopicAreas, 1)
}

func TestEvidenceFor_UncheckedSelectionIgnored(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()
	id, _ := domain.ParseItemID("tf4_g0_risk_0")
	tags := []string{"Harninkontinenz"}
	store.Update(id, domain.SelectionUpdate{SubTags: &tags})

	ev := m.EvidenceFor("Harninkontinenz", nil, store)
	assert.Empty(t, ev.TopicAreas)
}

func TestEvidenceFor_FallsAnyMobilityItem(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()

	// A checked mobility item without any tags is already fall evidence.
	check(store, "tf2_g0_stat_1")
	ev := m.EvidenceFor("Sturz", nil, store)
	require.Len(t, ev.TopicAreas, 1)
	assert.Equal(t, domain.AreaMobility.Label(), ev.TopicAreas[0])

	// Outside mobility the keyword is still required.
	store2 := domain.NewSelectionStore()
	check(store2, "tf1_g0_risk_0")
	ev = m.EvidenceFor("Sturz", nil, store2)
	assert.Empty(t, ev.TopicAreas)

	// A fall-related tag is evidence no matter which topic field carries it.
	store3 := domain.NewSelectionStore()
	checkWithTags(store3, "tf1_g0_risk_0", "schwankender Gang")
	ev = m.EvidenceFor("Sturz", nil, store3)
	require.Len(t, ev.TopicAreas, 1)
	assert.Equal(t, domain.AreaCognition.Label(), ev.TopicAreas[0])
}

func TestEvidenceFor_AreaRestrictedRules(t *testing.T) {
	m := newTestMatcher(t)

	// Social withdrawal only reads from the social topic field.
	store := domain.NewSelectionStore()
	checkWithTags(store, "tf1_g0_stat_0", "Rückzug")
	ev := m.EvidenceFor("Soziale Isolation", nil, store)
	assert.Empty(t, ev.TopicAreas)

	store2 := domain.NewSelectionStore()
	checkWithTags(store2, "tf5_g0_stat_0", "Rückzug")
	ev = m.EvidenceFor("Soziale Isolation", nil, store2)
	assert.Len(t, ev.TopicAreas, 1)

	// Pain only reads from the illness topic field.
	store3 := domain.NewSelectionStore()
	checkWithTags(store3, "tf2_g0_stat_0", "Schmerzen beim Gehen")
	ev = m.EvidenceFor("Schmerz", nil, store3)
	assert.Empty(t, ev.TopicAreas)

	store4 := domain.NewSelectionStore()
	checkWithTags(store4, "tf3_g0_stat_0", "Schmerzen")
	ev = m.EvidenceFor("Schmerz", nil, store4)
	assert.Len(t, ev.TopicAreas, 1)
}

func TestEvidenceFor_MatrixSelectionsNeverCount(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()
	checkWithTags(store, "matrix_g0_risk_1", "Sturz")

	ev := m.EvidenceFor("Sturz", nil, store)
	assert.Empty(t, ev.TopicAreas)
}

func TestEvidenceFor_AreaListedOnce(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()
	check(store, "tf2_g0_stat_0")
	check(store, "tf2_g0_aid_1")

	ev := m.EvidenceFor("Sturz", nil, store)
	assert.Len(t, ev.TopicAreas, 1)
}

func TestAssess(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()
	check(store, "tf2_g0_stat_0")

	out := m.Assess([]string{"Apoplex (Schlaganfall)"}, store)
	require.Len(t, out, 19)

	byName := map[string]Assessment{}
	for _, a := range out {
		byName[a.Risk] = a
	}

	sturz := byName["Sturz"]
	assert.Equal(t, "matrix_g0_risk_1", sturz.ID)
	assert.False(t, sturz.Confirmed)
	assert.Contains(t, sturz.Evidence.Diagnoses, "Apoplex (Schlaganfall)")
	assert.Contains(t, sturz.Evidence.TopicAreas, domain.AreaMobility.Label())

	// Risks without any rule or diagnosis link come back evidence-free.
	assert.False(t, byName["Infektionsrisiko"].Evidence.HasAny())
}

func TestAssess_ConfirmationIndependentOfEvidence(t *testing.T) {
	m := newTestMatcher(t)
	store := domain.NewSelectionStore()

	// Confirm falls on the matrix with no evidence at all.
	check(store, "matrix_g0_risk_1")

	out := m.Assess(nil, store)
	for _, a := range out {
		if a.Risk == "Sturz" {
			assert.True(t, a.Confirmed)
			assert.False(t, a.Evidence.HasAny())
			return
		}
	}
	t.Fatal("Sturz missing from assessment")
}

func TestRisksFor(t *testing.T) {
	m := newTestMatcher(t)

	risks := m.RisksFor("Apoplex (Schlaganfall)")
	assert.Contains(t, risks, "Sturz")

	// Risk names a diagnosis carries but the matrix does not know are dropped.
	risks = m.RisksFor("Chronische Niereninsuffizienz (CNI)")
	assert.NotContains(t, risks, "Hautdefekt")

	assert.Nil(t, m.RisksFor("Erfundene Diagnose"))
}
