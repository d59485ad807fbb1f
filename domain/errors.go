package domain

import (
	"errors"
	"fmt"
	"time"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// OTP errors
var (
	ErrOTPInvalid  = errors.New("invalid or expired otp")
	ErrOTPNotFound = errors.New("otp not found")
)

// Token errors
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenInvalid   = errors.New("invalid token")
)

// Product errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("not authorized for this product")
)

// Analysis errors
var (
	ErrRateLimited     = errors.New("too many requests")
	ErrNewsUnavailable = errors.New("news search unavailable")
	ErrAnalysisFailed  = errors.New("analysis generation failed")
)

// RateLimitedError carries the time until the next slot frees up, so the
// boundary can emit a Retry-After header. Matches ErrRateLimited under
// errors.Is.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%v: retry after %s", ErrRateLimited, e.RetryAfter.Round(time.Second))
}

func (e *RateLimitedError) Unwrap() error { return ErrRateLimited }
