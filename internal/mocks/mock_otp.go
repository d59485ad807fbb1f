package mocks

import (
	"context"
	"time"

	"github.com/you/tradeops/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing
type MockOTPRepository struct {
	StoreFunc  func(ctx context.Context, userID uint, code string, ttl time.Duration) (*domain.OTP, error)
	FindFunc   func(ctx context.Context, userID uint, code string) (*domain.OTP, error)
	DeleteFunc func(ctx context.Context, userID uint) error
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// Store stores a new code for the user
func (m *MockOTPRepository) Store(ctx context.Context, userID uint, code string, ttl time.Duration) (*domain.OTP, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, userID, code, ttl)
	}
	// Default behavior: success
	return &domain.OTP{UserID: userID, Code: code, ExpiresAt: time.Now().Add(ttl)}, nil
}

// Find looks up an outstanding code
func (m *MockOTPRepository) Find(ctx context.Context, userID uint, code string) (*domain.OTP, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, userID, code)
	}
	// Default behavior: not found
	return nil, domain.ErrOTPNotFound
}

// Delete removes the user's outstanding code
func (m *MockOTPRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc   func(ctx context.Context, user *domain.User) (*domain.OTP, error)
	VerifyFunc  func(ctx context.Context, userID uint, code string) error
	ConsumeFunc func(ctx context.Context, userID uint) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a new code
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User) (*domain.OTP, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user)
	}
	// Default behavior: fixed code
	return &domain.OTP{UserID: user.ID, Code: "123456", ExpiresAt: time.Now().Add(5 * time.Minute)}, nil
}

// Verify checks a code
func (m *MockOTPService) Verify(ctx context.Context, userID uint, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, userID, code)
	}
	// Default behavior: valid
	return nil
}

// Consume deletes a used code
func (m *MockOTPService) Consume(ctx context.Context, userID uint) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}
