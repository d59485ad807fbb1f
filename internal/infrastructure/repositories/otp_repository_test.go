package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/tradeops/domain"
)

func newTestOTPRepo(t *testing.T) (domain.OTPRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewOTPRepository(client), mr
}

func TestOTPRepository_StoreAndFind(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.Store(ctx, 1, "123456", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, uint(1), otp.UserID)
	assert.Equal(t, "123456", otp.Code)

	found, err := repo.Find(ctx, 1, "123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", found.Code)
}

func TestOTPRepository_WrongCode(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	_, err := repo.Store(ctx, 1, "123456", 5*time.Minute)
	require.NoError(t, err)

	_, err = repo.Find(ctx, 1, "654321")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPRepository_NewCodeInvalidatesOld(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	_, err := repo.Store(ctx, 1, "111111", 5*time.Minute)
	require.NoError(t, err)
	_, err = repo.Store(ctx, 1, "222222", 5*time.Minute)
	require.NoError(t, err)

	_, err = repo.Find(ctx, 1, "111111")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound, "old code must no longer verify")

	found, err := repo.Find(ctx, 1, "222222")
	require.NoError(t, err)
	assert.Equal(t, "222222", found.Code)
}

func TestOTPRepository_ExpiredCode(t *testing.T) {
	repo, mr := newTestOTPRepo(t)
	ctx := context.Background()

	_, err := repo.Store(ctx, 1, "123456", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = repo.Find(ctx, 1, "123456")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPRepository_Delete(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	_, err := repo.Store(ctx, 1, "123456", 5*time.Minute)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1))

	_, err = repo.Find(ctx, 1, "123456")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPRepository_UsersAreIsolated(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	_, err := repo.Store(ctx, 1, "111111", 5*time.Minute)
	require.NoError(t, err)
	_, err = repo.Store(ctx, 2, "222222", 5*time.Minute)
	require.NoError(t, err)

	_, err = repo.Find(ctx, 1, "222222")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)

	found, err := repo.Find(ctx, 2, "222222")
	require.NoError(t, err)
	assert.Equal(t, uint(2), found.UserID)
}
