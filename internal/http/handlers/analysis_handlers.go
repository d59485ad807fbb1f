package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/tradeops/domain"
	"github.com/you/tradeops/internal/http/middleware"
)

// AnalysisHandlers handles sector analysis HTTP requests
type AnalysisHandlers struct {
	analysisSvc domain.AnalysisService
}

// NewAnalysisHandlers creates new analysis handlers
func NewAnalysisHandlers(analysisSvc domain.AnalysisService) *AnalysisHandlers {
	return &AnalysisHandlers{analysisSvc: analysisSvc}
}

// Analyze produces a markdown market report for the sector in the path.
// Rate-limit rejections carry a Retry-After header; downstream outages are
// 502, never a 200 with an error baked into the report.
func (h *AnalysisHandlers) Analyze(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing bearer token"})
		return
	}

	sector := c.Param("sector")

	report, err := h.analysisSvc.Analyze(c.Request.Context(), user.Email, sector)
	if err != nil {
		var rateErr *domain.RateLimitedError
		switch {
		case errors.As(err, &rateErr):
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(rateErr)))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
		case errors.Is(err, domain.ErrNewsUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "News search is currently unavailable"})
		case errors.Is(err, domain.ErrAnalysisFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis generation is currently unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze sector"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sector":    report.Sector,
		"report_md": report.ReportMD,
	})
}

// retryAfterSeconds rounds up so the client never retries early.
func retryAfterSeconds(e *domain.RateLimitedError) int {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
