package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/tradeops/domain"
)

func TestMemoryUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	err := repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	err = repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestMemoryUserRepository_EmailIsCaseSensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "a@x.com"}))

	_, err := repo.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUserRepository_MonotonicIDs(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u1 := &domain.User{Email: "a@x.com"}
	u2 := &domain.User{Email: "b@x.com"}
	require.NoError(t, repo.Create(ctx, u1))
	require.NoError(t, repo.Create(ctx, u2))

	assert.Equal(t, uint(1), u1.ID)
	assert.Equal(t, uint(2), u2.ID)

	// A rejected duplicate must not consume or reuse an identifier.
	dup := &domain.User{Email: "a@x.com"}
	require.Error(t, repo.Create(ctx, dup))

	u3 := &domain.User{Email: "c@x.com"}
	require.NoError(t, repo.Create(ctx, u3))
	assert.Equal(t, uint(3), u3.ID)
}

func TestMemoryUserRepository_UpdatePassword(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	u := &domain.User{Email: "a@x.com", PasswordHash: "old"}
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "new"))

	got, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, 999, "x"), domain.ErrUserNotFound)
}

func TestMemoryProductRepository_OwnershipScopedListing(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Product{UserID: 1, Name: "steel coil"}))
	require.NoError(t, repo.Create(ctx, &domain.Product{UserID: 2, Name: "solar panel"}))
	require.NoError(t, repo.Create(ctx, &domain.Product{UserID: 1, Name: "copper wire"}))

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "steel coil", mine[0].Name)
	assert.Equal(t, "copper wire", mine[1].Name)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryProductRepository_UpdateAndDelete(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	p := &domain.Product{UserID: 1, Name: "steel coil", Price: 100}
	require.NoError(t, repo.Create(ctx, p))

	p.Price = 120
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Price)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
