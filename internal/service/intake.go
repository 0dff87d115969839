// Package service implements the intake operations: selection updates,
// diagnosis-driven toggling, deficit counting, risk evidence, grading and
// document assembly. All operations mutate or read a single session; the
// services themselves are stateless.
package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/domain"
	"github.com/sis-intake-server/internal/grading"
	"github.com/sis-intake-server/internal/risk"
	"github.com/sis-intake-server/internal/session"
)

// IntakeService carries the selection, diagnosis and grading operations.
type IntakeService struct {
	logger  *logrus.Logger
	catalog *catalog.Catalog
	matcher *risk.Matcher
}

// NewIntakeService creates an intake service over the given catalog.
func NewIntakeService(logger *logrus.Logger, cat *catalog.Catalog) *IntakeService {
	return &IntakeService{
		logger:  logger,
		catalog: cat,
		matcher: risk.NewMatcher(cat),
	}
}

// Catalog exposes the reference data for read-only handlers.
func (s *IntakeService) Catalog() *catalog.Catalog {
	return s.catalog
}

// UpdateSelection merges a partial selection change into a session. The
// identifier must parse; identifiers pointing outside the catalog are
// accepted (the record simply never renders), matching the tolerance of the
// rest of the pipeline.
func (s *IntakeService) UpdateSelection(sess *session.Session, rawID string, upd domain.SelectionUpdate) error {
	id, ok := domain.ParseItemID(rawID)
	if !ok {
		return domain.NewValidationError("id", "malformed item identifier", rawID)
	}
	sess.Selections.Update(id, upd)
	sess.Touch()

	s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"item_id":    rawID,
	}).Debug("Selection updated")
	return nil
}

// ToggleSubTag flips one qualifier tag on a selection record.
func (s *IntakeService) ToggleSubTag(sess *session.Session, rawID, tag string) error {
	id, ok := domain.ParseItemID(rawID)
	if !ok {
		return domain.NewValidationError("id", "malformed item identifier", rawID)
	}
	sess.Selections.ToggleSubTag(id, tag)
	sess.Touch()
	return nil
}

// SetFrequency selects a frequency option on a time-relevant item, recording
// the option's day interval alongside the label.
func (s *IntakeService) SetFrequency(sess *session.Session, rawID, label string) error {
	id, ok := domain.ParseItemID(rawID)
	if !ok {
		return domain.NewValidationError("id", "malformed item identifier", rawID)
	}
	days := 0
	if item, found := s.catalog.Resolve(id); found {
		for _, opt := range item.FrequencyOptions {
			if opt.Label == label {
				days = opt.Days
				break
			}
		}
	}
	sess.Selections.Update(id, domain.SelectionUpdate{TimeVal: &label, TimeDays: &days})
	sess.Touch()
	return nil
}

// NextDueDate derives the next due date of a dated, frequency-bound item from
// its last change date and frequency interval. On-demand items and items
// without a recorded date have no due date.
func (s *IntakeService) NextDueDate(rec domain.SelectionRecord) (time.Time, bool) {
	if rec.LastChangeDate == "" || rec.TimeDays <= 0 {
		return time.Time{}, false
	}
	last, err := time.Parse("2006-01-02", rec.LastChangeDate)
	if err != nil {
		return time.Time{}, false
	}
	return last.AddDate(0, 0, rec.TimeDays), true
}

// AddDiagnosis adds a diagnosis to the client profile. Unknown diagnoses are
// allowed as free-text entries; they simply carry no catalog links.
func (s *IntakeService) AddDiagnosis(sess *session.Session, name string) {
	sess.Client.AddDiagnosis(name)
	sess.Touch()
	s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"diagnosis":  name,
	}).Info("Diagnosis added")
}

// RemoveDiagnosis removes a diagnosis from the profile and withdraws its
// justification from every selection record it contributed to. Selections the
// user checked independently keep their state.
func (s *IntakeService) RemoveDiagnosis(sess *session.Session, name string) {
	sess.Client.RemoveDiagnosis(name)
	sess.Selections.RemoveOrigin(name)
	sess.Touch()
	s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"diagnosis":  name,
	}).Info("Diagnosis removed")
}

// DiagnosisItemKind names the three per-diagnosis toggle lists.
type DiagnosisItemKind string

const (
	KindSymptom DiagnosisItemKind = "symptom"
	KindMeasure DiagnosisItemKind = "measure"
	KindConcept DiagnosisItemKind = "concept"
)

// ToggleDiagnosisItem flips a diagnosis-specific entry. Symptoms that match a
// canonical catalog item additionally flip that item's checked state and
// record or withdraw the diagnosis as its origin, so the topic field view and
// the diagnosis view stay in step.
func (s *IntakeService) ToggleDiagnosisItem(sess *session.Session, diagnosis, text string, kind DiagnosisItemKind) error {
	if !sess.Client.HasDiagnosis(diagnosis) {
		return fmt.Errorf("diagnosis %q: %w", diagnosis, domain.ErrNotFound)
	}

	if kind == KindSymptom {
		if canonicalID, found := s.catalog.FindCanonicalID(text); found {
			rec, _ := sess.Selections.Get(canonicalID)
			nowChecked := !rec.Checked
			checked := nowChecked
			sess.Selections.Update(canonicalID, domain.SelectionUpdate{Checked: &checked})
			if nowChecked {
				sess.Selections.AddOrigin(canonicalID, diagnosis)
			} else {
				origins := make([]string, 0, len(rec.OriginVals))
				for _, o := range rec.OriginVals {
					if o != diagnosis {
						origins = append(origins, o)
					}
				}
				sess.Selections.Update(canonicalID, domain.SelectionUpdate{OriginVals: &origins})
			}
		}
	}

	switch kind {
	case KindSymptom:
		sess.Client.ToggleSymptom(diagnosis, text)
	case KindMeasure:
		sess.Client.ToggleMeasure(diagnosis, text)
	case KindConcept:
		sess.Client.ToggleConcept(diagnosis, text)
	default:
		return domain.NewValidationError("kind", "unknown diagnosis item kind", string(kind))
	}
	sess.Touch()
	return nil
}

// DeficitCount returns the per-topic-area deficit tally: every checked
// selection under the area plus every confirmed diagnosis-specific symptom
// anchored there. Gateway records are structural and never tally. The two
// sources are additive even when a symptom's canonical item is also checked.
func (s *IntakeService) DeficitCount(sess *session.Session, area domain.TopicArea) int {
	count := 0
	sess.Selections.Range(func(id domain.ItemID, rec domain.SelectionRecord) bool {
		if id.Area == area && rec.Checked && !id.Gateway {
			count++
		}
		return true
	})

	for _, diag := range sess.Client.Diagnoses {
		entry, ok := s.catalog.Diagnosis(diag)
		if !ok {
			continue
		}
		confirmed := sess.Client.ConfirmedSymptoms(diag)
		for _, sym := range entry.Symptoms {
			if sym.Area != area {
				continue
			}
			for _, c := range confirmed {
				if c == sym.Text {
					count++
					break
				}
			}
		}
	}
	return count
}

// DeficitCounts tallies all six topic areas.
func (s *IntakeService) DeficitCounts(sess *session.Session) map[domain.TopicArea]int {
	out := make(map[domain.TopicArea]int, 6)
	for _, area := range s.catalog.TopicAreas() {
		if area == domain.AreaMatrix {
			continue
		}
		out[area] = s.DeficitCount(sess, area)
	}
	return out
}

// GroupConspicuous reports whether an assessment group needs attention:
// either its gateway was answered in the conspicuous direction, or any
// non-resource item in the group is checked. Resources and the gateway record
// itself never make a group conspicuous.
func (s *IntakeService) GroupConspicuous(sess *session.Session, area domain.TopicArea, group int) bool {
	gw, _ := sess.Selections.Get(domain.GatewayID(area, group))
	if gw.GatewayVal {
		return true
	}
	conspicuous := false
	sess.Selections.Range(func(id domain.ItemID, rec domain.SelectionRecord) bool {
		if id.Area != area || id.Group != group || id.Gateway {
			return true
		}
		if id.Category == domain.CategoryResource {
			return true
		}
		if rec.Checked {
			conspicuous = true
			return false
		}
		return true
	})
	return conspicuous
}

// RiskAssessments evaluates the full risk matrix for a session.
func (s *IntakeService) RiskAssessments(sess *session.Session) []risk.Assessment {
	return s.matcher.Assess(sess.Client.Diagnoses, sess.Selections)
}

// ConfirmRisk flips confirmation of a matrix risk by its grid index.
func (s *IntakeService) ConfirmRisk(sess *session.Session, index int) error {
	names := s.catalog.RiskNames()
	if index < 0 || index >= len(names) {
		return domain.NewValidationError("index", "risk index out of range", index)
	}
	id := domain.ItemID{Area: domain.AreaMatrix, Category: domain.CategoryRisk, Index: index}
	rec, _ := sess.Selections.Get(id)
	checked := !rec.Checked
	sess.Selections.Update(id, domain.SelectionUpdate{Checked: &checked})
	sess.Touch()

	s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"risk":       names[index],
		"confirmed":  checked,
	}).Info("Risk confirmation toggled")
	return nil
}

// ApplyAssessmentPatch merges a partial answer update into the NBA
// questionnaire and returns the recomputed grading result.
func (s *IntakeService) ApplyAssessmentPatch(sess *session.Session, patch domain.ModuleAnswersPatch) grading.Result {
	answers := sess.Client.EnsureAssessment()
	answers.Apply(patch)
	sess.Touch()

	result := grading.Grade(*answers)
	s.logger.WithFields(result.LogFields()).WithField("session_id", sess.ID).Info("Assessment graded")
	return result
}

// GradeResult computes the grading result for the current answers. An
// untouched assessment grades as an empty one.
func (s *IntakeService) GradeResult(sess *session.Session) grading.Result {
	if sess.Client.Assessment == nil {
		return grading.Grade(domain.NewModuleAnswers())
	}
	return grading.Grade(*sess.Client.Assessment)
}

// Benefits returns the entitlement schedule for the client's granted grade.
func (s *IntakeService) Benefits(sess *session.Session) catalog.BenefitSchedule {
	return catalog.Benefits(sess.Client.CurrentGrade())
}
