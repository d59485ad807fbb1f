package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/tradeops/domain"
	"github.com/you/tradeops/internal/http/middleware"
	"github.com/you/tradeops/internal/mocks"
)

func analysisRouter(analysisSvc domain.AnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAnalysisHandlers(analysisSvc)
	r := gin.New()
	v := r.Group("/", middleware.AuthMiddleware(mocks.NewMockAuthService()))
	v.GET("/analyze/:sector", h.Analyze)
	return r
}

func TestAnalysisHandlers_Analyze(t *testing.T) {
	analysisSvc := mocks.NewMockAnalysisService()
	var gotPrincipal, gotSector string
	analysisSvc.AnalyzeFunc = func(ctx context.Context, principal, sector string) (*domain.SectorReport, error) {
		gotPrincipal = principal
		gotSector = sector
		return &domain.SectorReport{Sector: sector, ReportMD: "# Steel\n\nStable."}, nil
	}
	r := analysisRouter(analysisSvc)

	w := performAuthed(t, r, http.MethodGet, "/analyze/steel", "token_a@x.com", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotPrincipal != "a@x.com" {
		t.Errorf("principal = %q, want the authenticated email", gotPrincipal)
	}
	if gotSector != "steel" {
		t.Errorf("sector = %q", gotSector)
	}
	body := decodeBody(t, w)
	if body["sector"] != "steel" {
		t.Errorf("sector field = %v", body["sector"])
	}
	if body["report_md"] != "# Steel\n\nStable." {
		t.Errorf("report_md = %v", body["report_md"])
	}
}

func TestAnalysisHandlers_RateLimited(t *testing.T) {
	analysisSvc := mocks.NewMockAnalysisService()
	analysisSvc.AnalyzeFunc = func(ctx context.Context, principal, sector string) (*domain.SectorReport, error) {
		return nil, &domain.RateLimitedError{RetryAfter: 42*time.Second + 300*time.Millisecond}
	}
	r := analysisRouter(analysisSvc)

	w := performAuthed(t, r, http.MethodGet, "/analyze/steel", "token_a@x.com", nil)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	// Rounded up so the client never retries early.
	if got := w.Header().Get("Retry-After"); got != "43" {
		t.Errorf("Retry-After = %q, want \"43\"", got)
	}
}

func TestAnalysisHandlers_DownstreamFailuresAreBadGateway(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "news unavailable", err: domain.ErrNewsUnavailable},
		{name: "generation failed", err: domain.ErrAnalysisFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysisSvc := mocks.NewMockAnalysisService()
			analysisSvc.AnalyzeFunc = func(ctx context.Context, principal, sector string) (*domain.SectorReport, error) {
				return nil, tt.err
			}
			r := analysisRouter(analysisSvc)

			w := performAuthed(t, r, http.MethodGet, "/analyze/steel", "token_a@x.com", nil)

			if w.Code != http.StatusBadGateway {
				t.Errorf("status = %d, want 502", w.Code)
			}
		})
	}
}

func TestAnalysisHandlers_Unauthenticated(t *testing.T) {
	r := analysisRouter(mocks.NewMockAnalysisService())

	w := performAuthed(t, r, http.MethodGet, "/analyze/steel", "", nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
