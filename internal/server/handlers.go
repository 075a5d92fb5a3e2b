package server

import (
	"net/http"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// snapshotRequest carries the full questionnaire snapshot. An empty or absent
// snapshot is valid (the questionnaire is partial-by-design); unknown step
// keys are kept in the map and ignored downstream, and malformed step payloads
// decode to nothing rather than failing the request.
type snapshotRequest struct {
	Answers domain.RawAnswers `json:"answers"`
}

type historyRequest struct {
	Answers domain.RawAnswers          `json:"answers"`
	History []domain.HistoricalProfile `json:"history"`
}

func (s *Server) handleProfile(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile := s.profiles.ComputeProfile(c.Request.Context(), c.Param("id"), req.Answers)
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleInsights(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report := s.profiles.InsightsReport(c.Request.Context(), c.Param("id"), req.Answers)
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleReliability(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, s.profiles.ComparisonReliability(req.Answers))
}

func (s *Server) handleHistory(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	insights := s.profiles.CompareHistory(c.Request.Context(), c.Param("id"), req.Answers, req.History)
	c.JSON(http.StatusOK, insights)
}

// handleComplete folds the finished project into its industry aggregate.
// Aggregate maintenance is best-effort; the endpoint acknowledges regardless,
// completion must never fail on it.
func (s *Server) handleComplete(c *gin.Context) {
	var req snapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.profiles.CompleteProject(c.Request.Context(), c.Param("id"), req.Answers)
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (s *Server) handleIndustryDefaults(c *gin.Context) {
	defaults, suggestions := s.profiles.IndustrySuggestions(c.Request.Context(), c.Param("industry"))
	c.JSON(http.StatusOK, gin.H{
		"defaults":    defaults,
		"suggestions": suggestions,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	status := http.StatusOK
	health := gin.H{"status": "ok"}

	if s.postgres != nil {
		if err := s.postgres.Ping(c.Request.Context()); err != nil {
			s.logger.Warn("Health check: postgres unreachable", zap.Error(err))
			health["postgres"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			health["postgres"] = "up"
		}
	}
	if s.cache != nil {
		if s.cache.IsConnected(c.Request.Context()) {
			health["redis"] = "up"
		} else {
			health["redis"] = "down"
		}
	}

	if status != http.StatusOK {
		health["status"] = "degraded"
	}
	c.JSON(status, health)
}
