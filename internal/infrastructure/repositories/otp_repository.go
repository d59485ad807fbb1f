package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/tradeops/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using Redis. One key per
// user means storing a new code atomically replaces any outstanding one, so
// a user never has two live reset codes.
type OTPRepositoryImpl struct {
	client *redis.Client
	prefix string
}

type otpRecord struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewOTPRepository creates a new Redis-backed OTP repository
func NewOTPRepository(client *redis.Client) domain.OTPRepository {
	return &OTPRepositoryImpl{client: client, prefix: "otp:"}
}

func (r *OTPRepositoryImpl) key(userID uint) string {
	return fmt.Sprintf("%s%d", r.prefix, userID)
}

// Store implements domain.OTPRepository
func (r *OTPRepositoryImpl) Store(ctx context.Context, userID uint, code string, ttl time.Duration) (*domain.OTP, error) {
	rec := otpRecord{Code: code, ExpiresAt: time.Now().Add(ttl)}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal otp: %w", err)
	}
	if err := r.client.Set(ctx, r.key(userID), data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}
	return &domain.OTP{UserID: userID, Code: code, ExpiresAt: rec.ExpiresAt}, nil
}

// Find implements domain.OTPRepository. Expiry is double-checked against the
// stored timestamp: Redis TTL handles cleanup, the comparison handles the
// verification-time contract.
func (r *OTPRepositoryImpl) Find(ctx context.Context, userID uint, code string) (*domain.OTP, error) {
	data, err := r.client.Get(ctx, r.key(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var rec otpRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp: %w", err)
	}
	if rec.Code != code {
		return nil, domain.ErrOTPNotFound
	}
	if rec.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, r.key(userID))
		return nil, domain.ErrOTPNotFound
	}

	return &domain.OTP{UserID: userID, Code: rec.Code, ExpiresAt: rec.ExpiresAt}, nil
}

// Delete implements domain.OTPRepository
func (r *OTPRepositoryImpl) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}
