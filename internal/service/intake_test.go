package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/domain"
	"github.com/sis-intake-server/internal/session"
)

func newTestService(t *testing.T) *IntakeService {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewIntakeService(logger, catalog.Default())
}

func checkItem(t *testing.T, svc *IntakeService, sess *session.Session, rawID string) {
	t.Helper()
	checked := true
	require.NoError(t, svc.UpdateSelection(sess, rawID, domain.SelectionUpdate{Checked: &checked}))
}

func TestUpdateSelection(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	checkItem(t, svc, sess, "tf2_g0_risk_0")
	id, _ := domain.ParseItemID("tf2_g0_risk_0")
	rec, ok := sess.Selections.Get(id)
	require.True(t, ok)
	assert.True(t, rec.Checked)

	// A well-formed identifier outside the catalog is accepted.
	assert.NoError(t, svc.UpdateSelection(sess, "tf2_g7_risk_42", domain.SelectionUpdate{Checked: boolPtr(true)}))

	// A malformed identifier is not.
	err := svc.UpdateSelection(sess, "not-an-id", domain.SelectionUpdate{Checked: boolPtr(true)})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSetFrequency(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	// Wundversorgung carries the general frequency options.
	require.NoError(t, svc.SetFrequency(sess, "tf3_g0_act_1", "Wöchentlich"))
	id, _ := domain.ParseItemID("tf3_g0_act_1")
	rec, _ := sess.Selections.Get(id)
	assert.Equal(t, "Wöchentlich", rec.TimeVal)
	assert.Equal(t, 7, rec.TimeDays)

	// On-demand frequency resets the interval.
	require.NoError(t, svc.SetFrequency(sess, "tf3_g0_act_1", "Bei Bedarf"))
	rec, _ = sess.Selections.Get(id)
	assert.Equal(t, 0, rec.TimeDays)
}

func TestNextDueDate(t *testing.T) {
	svc := newTestService(t)

	due, ok := svc.NextDueDate(domain.SelectionRecord{LastChangeDate: "2026-08-28", TimeDays: 7})
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), due)

	_, ok = svc.NextDueDate(domain.SelectionRecord{LastChangeDate: "2026-08-28"})
	assert.False(t, ok)
	_, ok = svc.NextDueDate(domain.SelectionRecord{TimeDays: 7})
	assert.False(t, ok)
	_, ok = svc.NextDueDate(domain.SelectionRecord{LastChangeDate: "28.08.2026", TimeDays: 7})
	assert.False(t, ok)
}

func TestToggleDiagnosisItem_CanonicalSymptom(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()
	svc.AddDiagnosis(sess, "Demenz (Alzheimer/Vaskulär)")

	// Confirming the symptom checks the canonical catalog item and records
	// the diagnosis as origin.
	require.NoError(t, svc.ToggleDiagnosisItem(sess, "Demenz (Alzheimer/Vaskulär)", "Desorientierung", KindSymptom))
	id, _ := domain.ParseItemID("tf1_g0_risk_0")
	rec, ok := sess.Selections.Get(id)
	require.True(t, ok)
	assert.True(t, rec.Checked)
	assert.True(t, rec.HasOrigin("Demenz (Alzheimer/Vaskulär)"))
	assert.Contains(t, sess.Client.ConfirmedSymptoms("Demenz (Alzheimer/Vaskulär)"), "Desorientierung")

	// Toggling again unchecks and withdraws the origin.
	require.NoError(t, svc.ToggleDiagnosisItem(sess, "Demenz (Alzheimer/Vaskulär)", "Desorientierung", KindSymptom))
	_, ok = sess.Selections.Get(id)
	assert.False(t, ok)
	assert.Empty(t, sess.Client.ConfirmedSymptoms("Demenz (Alzheimer/Vaskulär)"))
}

func TestToggleDiagnosisItem_NonCanonicalSymptom(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()
	svc.AddDiagnosis(sess, "Apoplex (Schlaganfall)")

	// "Hemiparese / Lähmung" has no canonical counterpart; only the
	// per-diagnosis list changes.
	require.NoError(t, svc.ToggleDiagnosisItem(sess, "Apoplex (Schlaganfall)", "Hemiparese / Lähmung", KindSymptom))
	assert.Equal(t, 0, sess.Selections.Len())
	assert.Contains(t, sess.Client.ConfirmedSymptoms("Apoplex (Schlaganfall)"), "Hemiparese / Lähmung")
}

func TestToggleDiagnosisItem_Guards(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	err := svc.ToggleDiagnosisItem(sess, "Apoplex (Schlaganfall)", "Hemiparese / Lähmung", KindSymptom)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	svc.AddDiagnosis(sess, "Apoplex (Schlaganfall)")
	err = svc.ToggleDiagnosisItem(sess, "Apoplex (Schlaganfall)", "Bobath-Lagerung", DiagnosisItemKind("bogus"))
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRemoveDiagnosis_PreservesUserCheckedState(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()
	svc.AddDiagnosis(sess, "Demenz (Alzheimer/Vaskulär)")

	// Symptom confirmed via the diagnosis, item also carries user data.
	require.NoError(t, svc.ToggleDiagnosisItem(sess, "Demenz (Alzheimer/Vaskulär)", "Desorientierung", KindSymptom))
	id, _ := domain.ParseItemID("tf1_g0_risk_0")
	tags := []string{"Zeitlich"}
	sess.Selections.Update(id, domain.SelectionUpdate{SubTags: &tags})

	svc.RemoveDiagnosis(sess, "Demenz (Alzheimer/Vaskulär)")
	assert.False(t, sess.Client.HasDiagnosis("Demenz (Alzheimer/Vaskulär)"))

	rec, ok := sess.Selections.Get(id)
	require.True(t, ok)
	assert.True(t, rec.Checked)
	assert.Empty(t, rec.OriginVals)
	assert.Equal(t, []string{"Zeitlich"}, rec.SubTags)
}

func TestDeficitCount_TwoSourcesAdditive(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	checkItem(t, svc, sess, "tf1_g0_stat_0")
	svc.AddDiagnosis(sess, "Demenz (Alzheimer/Vaskulär)")
	require.NoError(t, svc.ToggleDiagnosisItem(sess, "Demenz (Alzheimer/Vaskulär)", "Desorientierung", KindSymptom))

	// One directly checked item, the canonical symptom item, and the
	// confirmed symptom itself: the symptom counts on top of its item.
	assert.Equal(t, 3, svc.DeficitCount(sess, domain.AreaCognition))
	assert.Equal(t, 0, svc.DeficitCount(sess, domain.AreaMobility))

	counts := svc.DeficitCounts(sess)
	assert.Len(t, counts, 6)
	assert.Equal(t, 3, counts[domain.AreaCognition])
	_, hasMatrix := counts[domain.AreaMatrix]
	assert.False(t, hasMatrix)
}

func TestDeficitCount_GatewaysExcluded(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	checkItem(t, svc, sess, "tf2_g0_stat_0")
	checkItem(t, svc, sess, "tf2_g0_gateway")

	assert.Equal(t, 1, svc.DeficitCount(sess, domain.AreaMobility))
}

func TestGroupConspicuous(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	assert.False(t, svc.GroupConspicuous(sess, domain.AreaMobility, 0))

	// A checked resource does not raise the flag.
	checkItem(t, svc, sess, "tf2_g0_res_0")
	assert.False(t, svc.GroupConspicuous(sess, domain.AreaMobility, 0))

	// A checked finding does.
	checkItem(t, svc, sess, "tf2_g0_stat_0")
	assert.True(t, svc.GroupConspicuous(sess, domain.AreaMobility, 0))
}

func TestGroupConspicuous_Gateway(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	gw := true
	require.NoError(t, svc.UpdateSelection(sess, "tf2_g0_gateway", domain.SelectionUpdate{GatewayVal: &gw}))
	assert.True(t, svc.GroupConspicuous(sess, domain.AreaMobility, 0))

	gw = false
	require.NoError(t, svc.UpdateSelection(sess, "tf2_g0_gateway", domain.SelectionUpdate{GatewayVal: &gw}))
	assert.False(t, svc.GroupConspicuous(sess, domain.AreaMobility, 0))
}

func TestConfirmRisk(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	require.NoError(t, svc.ConfirmRisk(sess, 1))
	assessments := svc.RiskAssessments(sess)
	require.True(t, len(assessments) > 1)
	assert.Equal(t, "Sturz", assessments[1].Risk)
	assert.True(t, assessments[1].Confirmed)

	// Second confirm withdraws it again.
	require.NoError(t, svc.ConfirmRisk(sess, 1))
	assessments = svc.RiskAssessments(sess)
	assert.False(t, assessments[1].Confirmed)

	var verr *domain.ValidationError
	assert.ErrorAs(t, svc.ConfirmRisk(sess, -1), &verr)
	assert.ErrorAs(t, svc.ConfirmRisk(sess, 19), &verr)
}

func TestApplyAssessmentPatch(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	result := svc.ApplyAssessmentPatch(sess, domain.ModuleAnswersPatch{
		M4: []int{1, 1, 1, 1, 1, 1, 1, 1},
	})
	assert.Equal(t, 8, result.RawM4)
	assert.Equal(t, 20.0, result.WeightedM4)
	require.NotNil(t, sess.Client.Assessment)

	// A later patch leaves the untouched module in place.
	m5 := 2
	result = svc.ApplyAssessmentPatch(sess, domain.ModuleAnswersPatch{M5: &m5})
	assert.Equal(t, 8, result.RawM4)
	assert.Equal(t, 5.0, result.WeightedM5)
	assert.Equal(t, result, svc.GradeResult(sess))
}

func TestGradeResult_UntouchedAssessment(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	result := svc.GradeResult(sess)
	assert.Equal(t, 0.0, result.Total)
	assert.Nil(t, sess.Client.Assessment)
}

func TestBenefits(t *testing.T) {
	svc := newTestService(t)
	sess := session.New()

	sess.Client.CareGradeLabel = "PG 3"
	schedule := svc.Benefits(sess)
	assert.Equal(t, 545, schedule.CareAllowance)
	assert.Equal(t, 1298, schedule.CareInKind)

	sess.Client.CareGradeLabel = "PG 0"
	schedule = svc.Benefits(sess)
	assert.Equal(t, 0, schedule.CareAllowance)
}

func boolPtr(b bool) *bool { return &b }
