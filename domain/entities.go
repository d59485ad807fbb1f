package domain

import "time"

// User represents a registered principal in the system
type User struct {
	ID           uint
	Email        string
	PasswordHash string `gorm:"column:password"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Product represents a catalog item owned by a single user
type Product struct {
	ID          uint
	UserID      uint
	Name        string
	Description string
	Price       float64
	ImagePath   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OTP represents one outstanding password-reset challenge
type OTP struct {
	UserID    uint
	Code      string
	ExpiresAt time.Time
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}

// TokenClaims represents verified JWT token claims
type TokenClaims struct {
	Subject   string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// RateDecision is the outcome of one admission check. RetryAfter is only
// meaningful when Allowed is false: it is the time until the oldest
// in-window request ages out and a slot frees up.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// NewsArticle represents one external news search result
type NewsArticle struct {
	Title       string
	Description string
	Source      string
	PublishedAt time.Time
	URL         string
}

// SectorReport represents a generated market analysis
type SectorReport struct {
	Sector      string    `json:"sector"`
	ReportMD    string    `json:"report_md"`
	GeneratedAt time.Time `json:"generated_at"`
}
