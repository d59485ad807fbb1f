package mocks

import (
	"context"

	"github.com/you/tradeops/domain"
)

// MockProductRepository implements domain.ProductRepository interface for testing
type MockProductRepository struct {
	CreateFunc     func(ctx context.Context, product *domain.Product) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Product, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]*domain.Product, error)
	ListAllFunc    func(ctx context.Context) ([]*domain.Product, error)
	UpdateFunc     func(ctx context.Context, product *domain.Product) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create creates a product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a product by ID
func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrProductNotFound
}

// ListByUser lists one user's products
func (m *MockProductRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Product, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty
	return nil, nil
}

// ListAll lists every product
func (m *MockProductRepository) ListAll(ctx context.Context) ([]*domain.Product, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// Update updates a product
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	// Default behavior: success
	return nil
}

// Delete deletes a product
func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}
