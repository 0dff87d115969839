package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/domain"
	"github.com/sis-intake-server/internal/grading"
	"github.com/sis-intake-server/internal/risk"
	"github.com/sis-intake-server/internal/service"
	"github.com/sis-intake-server/internal/session"
	"github.com/sis-intake-server/pkg/textgen"
)

// respondError maps service errors onto API error responses.
func (s *Server) respondError(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	reqID, _ := requestID.(string)

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, domain.NewAPIError(domain.ErrCodeInvalidInput, vErr.Message, vErr.Field, reqID))
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.NewAPIError(domain.ErrCodeNotFound, err.Error(), "", reqID))
	case errors.Is(err, textgen.ErrStale):
		c.JSON(http.StatusConflict, domain.NewAPIError(domain.ErrCodeStaleResponse, "response superseded by a newer request", "", reqID))
	case errors.Is(err, textgen.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, domain.NewAPIError(domain.ErrCodeTextService, err.Error(), "", reqID))
	default:
		s.logger.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(domain.ErrCodeInternal, err.Error(), "", reqID))
	}
}

func (s *Server) handleCatalog(c *gin.Context) {
	cat := s.intake.Catalog()
	fields := make(map[string]catalog.TopicField)
	for _, area := range cat.TopicAreas() {
		if tf, ok := cat.TopicField(area); ok {
			fields[string(area)] = tf
		}
	}
	c.JSON(http.StatusOK, gin.H{"fields": fields, "risks": cat.RiskNames()})
}

func (s *Server) handleCatalogArea(c *gin.Context) {
	area := domain.TopicArea(c.Param("area"))
	if !area.IsValid() {
		s.respondError(c, domain.NewValidationError("area", "unknown topic area", c.Param("area")))
		return
	}
	tf, ok := s.intake.Catalog().TopicField(area)
	if !ok {
		s.respondError(c, domain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, tf)
}

func (s *Server) handleDiagnosisList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diagnoses": s.intake.Catalog().DiagnosisNames()})
}

func (s *Server) handleDiagnosisEntry(c *gin.Context) {
	entry, ok := s.intake.Catalog().Diagnosis(c.Param("name"))
	if !ok {
		s.respondError(c, domain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleConcepts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"concepts": catalog.NursingConcepts})
}

func (s *Server) handleAssessmentQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": grading.Modules, "m5Max": domain.M5Max})
}

func (s *Server) handleBenefitsByGrade(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("grade"))
	if err != nil || !domain.CareGrade(n).IsValid() {
		s.respondError(c, domain.NewValidationError("grade", "care grade must be 0-5", c.Param("grade")))
		return
	}
	c.JSON(http.StatusOK, catalog.Benefits(domain.CareGrade(n)))
}

func (s *Server) handleSessionCreate(c *gin.Context) {
	sess, err := s.sessions.Create(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleSessionList(c *gin.Context) {
	infos, err := s.sessions.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": infos})
}

func (s *Server) handleSessionGet(c *gin.Context) {
	var snap session.Snapshot
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleSessionDelete(c *gin.Context) {
	if err := s.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleClientUpdate(c *gin.Context) {
	var profile domain.ClientProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		s.respondError(c, domain.NewValidationError("body", "invalid client profile", err.Error()))
		return
	}
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		// Assessment state is owned by the assessment endpoints; a client
		// update without one keeps the existing answers.
		if profile.Assessment == nil {
			profile.Assessment = sess.Client.Assessment
		}
		sess.Client = profile
		sess.Touch()
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSelectionUpdate(c *gin.Context) {
	var upd domain.SelectionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		s.respondError(c, domain.NewValidationError("body", "invalid selection update", err.Error()))
		return
	}
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		return s.intake.UpdateSelection(sess, c.Param("item"), upd)
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSubTagToggle(c *gin.Context) {
	var req struct {
		Tag string `json:"tag" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewValidationError("tag", "tag is required", nil))
		return
	}
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		return s.intake.ToggleSubTag(sess, c.Param("item"), req.Tag)
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleFrequencySet(c *gin.Context) {
	var req struct {
		Label string `json:"label"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewValidationError("label", "invalid frequency body", err.Error()))
		return
	}
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		return s.intake.SetFrequency(sess, c.Param("item"), req.Label)
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeficits(c *gin.Context) {
	var counts map[domain.TopicArea]int
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		counts = s.intake.DeficitCounts(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deficits": counts})
}

// groupStatus is the per-group attention state within a topic area.
type groupStatus struct {
	Group       int    `json:"group"`
	Title       string `json:"title"`
	Conspicuous bool   `json:"conspicuous"`
}

func (s *Server) handleAreaStatus(c *gin.Context) {
	area := domain.TopicArea(c.Param("area"))
	if !area.IsValid() {
		s.respondError(c, domain.NewValidationError("area", "unknown topic area", c.Param("area")))
		return
	}
	tf, ok := s.intake.Catalog().TopicField(area)
	if !ok {
		s.respondError(c, domain.ErrNotFound)
		return
	}

	var groups []groupStatus
	var deficits int
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		for gIdx, group := range tf.Groups {
			groups = append(groups, groupStatus{
				Group:       gIdx,
				Title:       group.Title,
				Conspicuous: s.intake.GroupConspicuous(sess, area, gIdx),
			})
		}
		deficits = s.intake.DeficitCount(sess, area)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area, "deficits": deficits, "groups": groups})
}

func (s *Server) handleDiagnosisAdd(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewValidationError("name", "diagnosis name is required", nil))
		return
	}
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		s.intake.AddDiagnosis(sess, req.Name)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDiagnosisRemove(c *gin.Context) {
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		s.intake.RemoveDiagnosis(sess, c.Param("name"))
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDiagnosisItemToggle(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
		Kind string `json:"kind" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, domain.NewValidationError("body", "text and kind are required", nil))
		return
	}
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		return s.intake.ToggleDiagnosisItem(sess, c.Param("name"), req.Text, service.DiagnosisItemKind(req.Kind))
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleRisks(c *gin.Context) {
	var assessments []risk.Assessment
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		assessments = s.intake.RiskAssessments(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"risks": assessments})
}

func (s *Server) handleRiskConfirm(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.respondError(c, domain.NewValidationError("index", "risk index must be numeric", c.Param("index")))
		return
	}
	err = s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		return s.intake.ConfirmRisk(sess, index)
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGrade(c *gin.Context) {
	var result grading.Result
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		result = s.intake.GradeResult(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAssessmentPatch(c *gin.Context) {
	var patch domain.ModuleAnswersPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.respondError(c, domain.NewValidationError("body", "invalid assessment patch", err.Error()))
		return
	}
	var result grading.Result
	err := s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		result = s.intake.ApplyAssessmentPatch(sess, patch)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleSessionBenefits(c *gin.Context) {
	var schedule catalog.BenefitSchedule
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		schedule = s.intake.Benefits(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (s *Server) handleRawDocuments(c *gin.Context) {
	var docs service.RawDocuments
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		docs = s.docs.BuildRaw(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Generation handlers assemble their prompt under the session lock and call
// the external service with the lock released, so a slow round trip never
// blocks unrelated sessions.
func (s *Server) handleEnhance(c *gin.Context) {
	started := time.Now()
	var prompt, sessionID string
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		sessionID = sess.ID
		prompt = s.docs.EnhancePrompt(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	generated, err := s.docs.GenerateEnhanced(c.Request.Context(), sessionID, prompt)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.logger.WithField("duration", time.Since(started).String()).Info("Document enhancement completed")
	c.JSON(http.StatusOK, generated)
}

func (s *Server) handleAssessmentFill(c *gin.Context) {
	var prompt string
	err := s.sessions.View(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		prompt = s.docs.FillPrompt(sess)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	patch, err := s.docs.GenerateAssessment(c.Request.Context(), prompt)
	if err != nil {
		s.respondError(c, err)
		return
	}

	var result grading.Result
	err = s.sessions.With(c.Request.Context(), c.Param("id"), func(sess *session.Session) error {
		result = s.intake.ApplyAssessmentPatch(sess, patch)
		return nil
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patch": patch, "result": result})
}
