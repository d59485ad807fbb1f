package mocks

import (
	"context"

	"github.com/you/tradeops/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID uint, passwordHash string) error
	ListAllFunc        func(ctx context.Context) ([]*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdatePassword replaces a user's password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, passwordHash)
	}
	// Default behavior: success
	return nil
}

// ListAll lists every user
func (m *MockUserRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}
