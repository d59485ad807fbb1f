package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/you/tradeops/domain"
)

// OTPServiceImpl implements domain.OTPService. Issuing a code replaces any
// outstanding code for the user (the repository keys codes per user), so
// stale codes can never verify after a newer one is requested.
type OTPServiceImpl struct {
	otpRepo         domain.OTPRepository
	notificationSvc domain.NotificationService
	config          OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(otpRepo domain.OTPRepository, notificationSvc domain.NotificationService, config OTPConfig) domain.OTPService {
	if config.Length <= 0 {
		config.Length = 6
	}
	if config.TTL <= 0 {
		config.TTL = 5 * time.Minute
	}
	return &OTPServiceImpl{
		otpRepo:         otpRepo,
		notificationSvc: notificationSvc,
		config:          config,
	}
}

// Issue implements domain.OTPService
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User) (*domain.OTP, error) {
	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp, err := s.otpRepo.Store(ctx, user.ID, code, s.config.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}

	body := fmt.Sprintf("Your password reset code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(user.Email, "Password reset code", body); err != nil {
		return nil, fmt.Errorf("failed to deliver otp: %w", err)
	}

	return otp, nil
}

// Verify implements domain.OTPService. Wrong and expired codes are
// indistinguishable to the caller.
func (s *OTPServiceImpl) Verify(ctx context.Context, userID uint, code string) error {
	otp, err := s.otpRepo.Find(ctx, userID, code)
	if err != nil {
		if errors.Is(err, domain.ErrOTPNotFound) {
			return domain.ErrOTPInvalid
		}
		return err
	}
	if otp.ExpiresAt.Before(time.Now()) {
		return domain.ErrOTPInvalid
	}
	return nil
}

// Consume implements domain.OTPService
func (s *OTPServiceImpl) Consume(ctx context.Context, userID uint) error {
	return s.otpRepo.Delete(ctx, userID)
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
