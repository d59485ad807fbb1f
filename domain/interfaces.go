package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	ListAll(ctx context.Context) ([]*User, error)
}

// OTPRepository defines one-time passcode storage. Store replaces any
// outstanding code for the user, so at most one OTP is live per user.
type OTPRepository interface {
	Store(ctx context.Context, userID uint, code string, ttl time.Duration) (*OTP, error)
	Find(ctx context.Context, userID uint, code string) (*OTP, error)
	Delete(ctx context.Context, userID uint) error
}

// ProductRepository defines product catalog data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	ListByUser(ctx context.Context, userID uint) ([]*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	Authenticate(ctx context.Context, token string) (*User, error)
}

// OTPService defines one-time passcode operations
type OTPService interface {
	Issue(ctx context.Context, user *User) (*OTP, error)
	Verify(ctx context.Context, userID uint, code string) error
	Consume(ctx context.Context, userID uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// RateLimiter decides whether one more request from a principal may
// proceed at the given instant
type RateLimiter interface {
	Admit(principal string, now time.Time) RateDecision
}

// NotificationService defines outbound delivery of reset codes
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// NewsFetcher defines the external news search collaborator
type NewsFetcher interface {
	FetchSectorNews(ctx context.Context, sector string) ([]NewsArticle, error)
}

// TextGenerator defines the external text generation collaborator
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService produces a markdown market report for a sector,
// gated by the per-principal rate limiter
type AnalysisService interface {
	Analyze(ctx context.Context, principal, sector string) (*SectorReport, error)
}
