// Package api exposes the intake operations over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sis-intake-server/internal/domain"
	"github.com/sis-intake-server/internal/service"
	"github.com/sis-intake-server/internal/session"
)

// Server represents the HTTP server.
type Server struct {
	config   *domain.Config
	logger   *logrus.Logger
	router   *gin.Engine
	server   *http.Server
	sessions *session.Manager
	intake   *service.IntakeService
	docs     *service.DocumentService
}

// NewServer creates a new HTTP server instance.
func NewServer(cfg *domain.Config, logger *logrus.Logger, sessions *session.Manager, intake *service.IntakeService, docs *service.DocumentService) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	s := &Server{
		config:   cfg,
		logger:   logger,
		router:   router,
		sessions: sessions,
		intake:   intake,
		docs:     docs,
	}
	s.setupRoutes()
	return s
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.config.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/catalog", s.handleCatalog)
		v1.GET("/catalog/:area", s.handleCatalogArea)
		v1.GET("/diagnoses", s.handleDiagnosisList)
		v1.GET("/diagnoses/:name", s.handleDiagnosisEntry)
		v1.GET("/concepts", s.handleConcepts)
		v1.GET("/assessment/questions", s.handleAssessmentQuestions)
		v1.GET("/benefits/:grade", s.handleBenefitsByGrade)

		v1.POST("/sessions", s.handleSessionCreate)
		v1.GET("/sessions", s.handleSessionList)
		v1.GET("/sessions/:id", s.handleSessionGet)
		v1.DELETE("/sessions/:id", s.handleSessionDelete)
		v1.PUT("/sessions/:id/client", s.handleClientUpdate)

		v1.PATCH("/sessions/:id/selections/:item", s.handleSelectionUpdate)
		v1.POST("/sessions/:id/selections/:item/subtags", s.handleSubTagToggle)
		v1.POST("/sessions/:id/selections/:item/frequency", s.handleFrequencySet)

		v1.GET("/sessions/:id/deficits", s.handleDeficits)
		v1.GET("/sessions/:id/areas/:area/status", s.handleAreaStatus)

		v1.POST("/sessions/:id/diagnoses", s.handleDiagnosisAdd)
		v1.DELETE("/sessions/:id/diagnoses/:name", s.handleDiagnosisRemove)
		v1.POST("/sessions/:id/diagnoses/:name/items", s.handleDiagnosisItemToggle)

		v1.GET("/sessions/:id/risks", s.handleRisks)
		v1.POST("/sessions/:id/risks/:index/confirm", s.handleRiskConfirm)

		v1.GET("/sessions/:id/grade", s.handleGrade)
		v1.PATCH("/sessions/:id/assessment", s.handleAssessmentPatch)
		v1.GET("/sessions/:id/benefits", s.handleSessionBenefits)

		v1.GET("/sessions/:id/documents/raw", s.handleRawDocuments)
		v1.POST("/sessions/:id/documents/enhance", s.handleEnhance)
		v1.POST("/sessions/:id/assessment/fill", s.handleAssessmentFill)
	}
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   "1.0.0",
	})
}

// corsMiddleware adds CORS headers to responses.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-API-Key")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware adds a unique request ID to each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
