package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/you/tradeops/domain"
)

// AnalysisServiceImpl implements domain.AnalysisService: admit through the
// rate limiter, gather sector news, then hand a markdown analyst prompt to
// the text generator. The limiter is consulted before any downstream I/O
// and holds no lock while that I/O runs.
type AnalysisServiceImpl struct {
	limiter     domain.RateLimiter
	newsFetcher domain.NewsFetcher
	generator   domain.TextGenerator
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(limiter domain.RateLimiter, newsFetcher domain.NewsFetcher, generator domain.TextGenerator) domain.AnalysisService {
	return &AnalysisServiceImpl{
		limiter:     limiter,
		newsFetcher: newsFetcher,
		generator:   generator,
	}
}

// Analyze implements domain.AnalysisService
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, principal, sector string) (*domain.SectorReport, error) {
	decision := s.limiter.Admit(principal, time.Now())
	if !decision.Allowed {
		return nil, &domain.RateLimitedError{RetryAfter: decision.RetryAfter}
	}

	articles, err := s.newsFetcher.FetchSectorNews(ctx, sector)
	if err != nil {
		log.Printf("NEWS_FETCH_FAILED: sector=%s error=%v", sector, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNewsUnavailable, err)
	}

	report, err := s.generator.Generate(ctx, buildAnalysisPrompt(sector, articles))
	if err != nil {
		log.Printf("GENERATION_FAILED: sector=%s error=%v", sector, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	return &domain.SectorReport{
		Sector:      sector,
		ReportMD:    report,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// buildAnalysisPrompt formats the fetched articles into the analyst prompt
func buildAnalysisPrompt(sector string, articles []domain.NewsArticle) string {
	var news strings.Builder
	if len(articles) == 0 {
		fmt.Fprintf(&news, "No news found for %s sector.\n", sector)
	}
	for _, a := range articles {
		fmt.Fprintf(&news, "**%s**\n%s\nSource: %s\nPublished: %s\nLink: %s\n\n",
			a.Title, a.Description, a.Source, a.PublishedAt.Format("2006-01-02"), a.URL)
	}

	return fmt.Sprintf(`You are a financial market analyst specializing in India's %[1]s sector.
Analyze the following recent news and synthesize key insights:

--- NEWS START ---
%[2]s--- NEWS END ---

Your task: create a concise, well-structured Markdown report covering:

1. **Sector Overview** - Brief context of the %[1]s sector in India.
2. **Key Trends** - Identify emerging patterns or changes supported by the news.
3. **Risks & Opportunities** - Highlight potential challenges and growth drivers.
4. **Market Outlook** - Provide a short-term (3-6 months) and medium-term (1-2 years) outlook.
5. **Investor Insight (optional)** - If relevant, note implications for investors or businesses.

Formatting guidelines:
- Use Markdown headers and bullet points for clarity.
- Keep the analysis concise, factual, and neutral in tone.
- Avoid repeating information verbatim from the news; synthesize insights instead.`, sector, news.String())
}
