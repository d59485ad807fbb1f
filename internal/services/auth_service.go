package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/you/tradeops/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		tokenTTL:    tokenTTL,
	}
}

// Signup implements domain.AuthService. The raw password is hashed before
// storage and never retained.
func (s *AuthServiceImpl) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("USER_REGISTERED: user_id=%d email=%s", user.ID, user.Email)
	return user, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// produce the same error so callers cannot enumerate accounts.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ForgotPassword implements domain.AuthService. The outcome is identical
// whether or not the email is registered; the OTP write only happens when
// the user exists.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if _, err := s.otpSvc.Issue(ctx, user); err != nil {
		return fmt.Errorf("failed to issue otp: %w", err)
	}

	log.Printf("PASSWORD_RESET_REQUESTED: user_id=%d", user.ID)
	return nil
}

// ResetPassword implements domain.AuthService. The hash replacement and the
// code deletion both sit on the confirmed success path; a deletion failure
// is logged but not surfaced, since the stored code can no longer be used
// against the replaced hash state anyway.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.otpSvc.Verify(ctx, user.ID, code); err != nil {
		if errors.Is(err, domain.ErrOTPInvalid) {
			return domain.ErrOTPInvalid
		}
		return fmt.Errorf("failed to verify otp: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.otpSvc.Consume(ctx, user.ID); err != nil {
		log.Printf("OTP_CONSUME_FAILED: user_id=%d error=%v", user.ID, err)
	}

	log.Printf("PASSWORD_RESET: user_id=%d", user.ID)
	return nil
}

// Authenticate implements domain.AuthService: resolves a bearer token to
// its principal.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenSvc.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
