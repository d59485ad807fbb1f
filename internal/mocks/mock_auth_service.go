package mocks

import (
	"context"

	"github.com/you/tradeops/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, email, password string) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, email, code, newPassword string) error
	AuthenticateFunc   func(ctx context.Context, token string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a user
func (m *MockAuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	// Default behavior: success
	return &domain.User{ID: 1, Email: email}, nil
}

// Login authenticates credentials
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: success with fake token
	return &domain.AuthResult{
		User:        &domain.User{ID: 1, Email: email},
		AccessToken: "token_" + email,
		ExpiresIn:   3600,
	}, nil
}

// ForgotPassword starts a reset flow
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// ResetPassword completes a reset flow
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	// Default behavior: success
	return nil
}

// Authenticate resolves a bearer token
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	// Default behavior: invert the fake token scheme
	if len(token) > 6 && token[:6] == "token_" {
		return &domain.User{ID: 1, Email: token[6:]}, nil
	}
	return nil, domain.ErrTokenInvalid
}

// MockAnalysisService implements domain.AnalysisService interface for testing
type MockAnalysisService struct {
	AnalyzeFunc func(ctx context.Context, principal, sector string) (*domain.SectorReport, error)
}

// NewMockAnalysisService creates a new MockAnalysisService with default behaviors
func NewMockAnalysisService() *MockAnalysisService {
	return &MockAnalysisService{}
}

// Analyze produces a sector report
func (m *MockAnalysisService) Analyze(ctx context.Context, principal, sector string) (*domain.SectorReport, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, principal, sector)
	}
	// Default behavior: canned report
	return &domain.SectorReport{Sector: sector, ReportMD: "# Report"}, nil
}
