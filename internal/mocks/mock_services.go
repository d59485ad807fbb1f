package mocks

import (
	"context"
	"time"

	"github.com/you/tradeops/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: deterministic fake hash
	return "hashed_" + password, nil
}

// Verify checks a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: match the fake hash scheme
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc  func(subject string) (string, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue creates a signed token
func (m *MockTokenService) Issue(subject string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(subject)
	}
	// Default behavior: deterministic fake token
	return "token_" + subject, nil
}

// Verify validates a token
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: invert the fake token scheme
	if len(token) > 6 && token[:6] == "token_" {
		return &domain.TokenClaims{Subject: token[6:]}, nil
	}
	return nil, domain.ErrTokenInvalid
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	SentSMS    []string
	SentEmails []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records the message
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.SentSMS = append(m.SentSMS, message)
	return nil
}

// SendEmail records the message
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.SentEmails = append(m.SentEmails, body)
	return nil
}

// MockRateLimiter implements domain.RateLimiter interface for testing
type MockRateLimiter struct {
	AdmitFunc func(principal string, now time.Time) domain.RateDecision
}

// NewMockRateLimiter creates a new MockRateLimiter with default behaviors
func NewMockRateLimiter() *MockRateLimiter {
	return &MockRateLimiter{}
}

// Admit decides on a request
func (m *MockRateLimiter) Admit(principal string, now time.Time) domain.RateDecision {
	if m.AdmitFunc != nil {
		return m.AdmitFunc(principal, now)
	}
	// Default behavior: admit
	return domain.RateDecision{Allowed: true}
}

// MockNewsFetcher implements domain.NewsFetcher interface for testing
type MockNewsFetcher struct {
	FetchSectorNewsFunc func(ctx context.Context, sector string) ([]domain.NewsArticle, error)
}

// NewMockNewsFetcher creates a new MockNewsFetcher with default behaviors
func NewMockNewsFetcher() *MockNewsFetcher {
	return &MockNewsFetcher{}
}

// FetchSectorNews returns search results
func (m *MockNewsFetcher) FetchSectorNews(ctx context.Context, sector string) ([]domain.NewsArticle, error) {
	if m.FetchSectorNewsFunc != nil {
		return m.FetchSectorNewsFunc(ctx, sector)
	}
	// Default behavior: one placeholder article
	return []domain.NewsArticle{{Title: sector + " update", Description: "placeholder"}}, nil
}

// MockTextGenerator implements domain.TextGenerator interface for testing
type MockTextGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

// NewMockTextGenerator creates a new MockTextGenerator with default behaviors
func NewMockTextGenerator() *MockTextGenerator {
	return &MockTextGenerator{}
}

// Generate produces text for a prompt
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	// Default behavior: canned report
	return "# Report\n\nGenerated.", nil
}
