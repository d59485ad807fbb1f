package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/you/tradeops/domain"
	"github.com/you/tradeops/internal/mocks"
)

func TestOTPServiceImpl_Issue(t *testing.T) {
	otpRepo := mocks.NewMockOTPRepository()
	notificationSvc := mocks.NewMockNotificationService()

	var storedCode string
	var storedTTL time.Duration
	otpRepo.StoreFunc = func(ctx context.Context, userID uint, code string, ttl time.Duration) (*domain.OTP, error) {
		storedCode = code
		storedTTL = ttl
		return &domain.OTP{UserID: userID, Code: code, ExpiresAt: time.Now().Add(ttl)}, nil
	}

	svc := NewOTPService(otpRepo, notificationSvc, OTPConfig{Length: 6, TTL: 5 * time.Minute})

	otp, err := svc.Issue(context.Background(), &domain.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if len(otp.Code) != 6 {
		t.Errorf("code length = %d, want 6", len(otp.Code))
	}
	for _, r := range otp.Code {
		if r < '0' || r > '9' {
			t.Errorf("code %q contains non-digit %q", otp.Code, r)
		}
	}
	if storedCode != otp.Code {
		t.Errorf("stored code %q != returned code %q", storedCode, otp.Code)
	}
	if storedTTL != 5*time.Minute {
		t.Errorf("stored ttl = %v, want 5m", storedTTL)
	}
	if len(notificationSvc.SentEmails) != 1 || !strings.Contains(notificationSvc.SentEmails[0], otp.Code) {
		t.Errorf("delivered message should carry the code, got %v", notificationSvc.SentEmails)
	}
}

func TestOTPServiceImpl_IssueDeliveryFailure(t *testing.T) {
	otpRepo := mocks.NewMockOTPRepository()
	notificationSvc := mocks.NewMockNotificationService()
	notificationSvc.SendEmailFunc = func(to, subject, body string) error {
		return errors.New("smtp down")
	}

	svc := NewOTPService(otpRepo, notificationSvc, OTPConfig{Length: 6, TTL: 5 * time.Minute})

	if _, err := svc.Issue(context.Background(), &domain.User{ID: 1, Email: "a@x.com"}); err == nil {
		t.Error("delivery failure should surface")
	}
}

func TestOTPServiceImpl_Verify(t *testing.T) {
	tests := []struct {
		name          string
		setupRepo     func(*mocks.MockOTPRepository)
		expectedError error
	}{
		{
			name: "valid code",
			setupRepo: func(repo *mocks.MockOTPRepository) {
				repo.FindFunc = func(ctx context.Context, userID uint, code string) (*domain.OTP, error) {
					return &domain.OTP{UserID: userID, Code: code, ExpiresAt: time.Now().Add(time.Minute)}, nil
				}
			},
		},
		{
			name:          "unknown code",
			setupRepo:     func(repo *mocks.MockOTPRepository) {},
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name: "expired code",
			setupRepo: func(repo *mocks.MockOTPRepository) {
				repo.FindFunc = func(ctx context.Context, userID uint, code string) (*domain.OTP, error) {
					return &domain.OTP{UserID: userID, Code: code, ExpiresAt: time.Now().Add(-time.Minute)}, nil
				}
			},
			expectedError: domain.ErrOTPInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockOTPRepository()
			tt.setupRepo(repo)

			svc := NewOTPService(repo, mocks.NewMockNotificationService(), OTPConfig{})
			err := svc.Verify(context.Background(), 1, "123456")

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("Verify error = %v, want %v", err, tt.expectedError)
			}
		})
	}
}

func TestOTPServiceImpl_DefaultsApplied(t *testing.T) {
	repo := mocks.NewMockOTPRepository()
	var storedTTL time.Duration
	repo.StoreFunc = func(ctx context.Context, userID uint, code string, ttl time.Duration) (*domain.OTP, error) {
		storedTTL = ttl
		return &domain.OTP{UserID: userID, Code: code}, nil
	}

	svc := NewOTPService(repo, mocks.NewMockNotificationService(), OTPConfig{})

	otp, err := svc.Issue(context.Background(), &domain.User{ID: 1, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(otp.Code) != 6 {
		t.Errorf("default code length = %d, want 6", len(otp.Code))
	}
	if storedTTL != 5*time.Minute {
		t.Errorf("default ttl = %v, want 5m", storedTTL)
	}
}
