package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/you/tradeops/domain"
)

// In-memory repositories back the service when no database DSN is
// configured, and double as fixtures for end-to-end tests. Identifiers are
// assigned monotonically and never reused.

// MemoryUserRepository implements domain.UserRepository with a mutex-guarded map
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[uint]*domain.User
	nextID  uint
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uint]*domain.User),
		nextID:  1,
	}
}

// Create implements domain.UserRepository. The duplicate check and the
// insert share one critical section, so two concurrent signups for the same
// email cannot both succeed.
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	r.byEmail[user.Email] = &stored
	r.byID[user.ID] = &stored
	return nil
}

// FindByEmail implements domain.UserRepository (case-sensitive exact match)
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// FindByID implements domain.UserRepository
func (r *MemoryUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// UpdatePassword implements domain.UserRepository
func (r *MemoryUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

// ListAll implements domain.UserRepository
func (r *MemoryUserRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.byID))
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.byID[id]; ok {
			out := *user
			users = append(users, &out)
		}
	}
	return users, nil
}

// MemoryOTPRepository implements domain.OTPRepository keyed by user id, so
// storing a new code replaces any outstanding one.
type MemoryOTPRepository struct {
	mu    sync.Mutex
	codes map[uint]*domain.OTP
}

// NewMemoryOTPRepository creates an empty in-memory OTP repository
func NewMemoryOTPRepository() *MemoryOTPRepository {
	return &MemoryOTPRepository{codes: make(map[uint]*domain.OTP)}
}

// Store implements domain.OTPRepository
func (r *MemoryOTPRepository) Store(ctx context.Context, userID uint, code string, ttl time.Duration) (*domain.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	otp := &domain.OTP{UserID: userID, Code: code, ExpiresAt: time.Now().Add(ttl)}
	r.codes[userID] = otp
	out := *otp
	return &out, nil
}

// Find implements domain.OTPRepository
func (r *MemoryOTPRepository) Find(ctx context.Context, userID uint, code string) (*domain.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	otp, ok := r.codes[userID]
	if !ok || otp.Code != code {
		return nil, domain.ErrOTPNotFound
	}
	if otp.ExpiresAt.Before(time.Now()) {
		delete(r.codes, userID)
		return nil, domain.ErrOTPNotFound
	}
	out := *otp
	return &out, nil
}

// Delete implements domain.OTPRepository
func (r *MemoryOTPRepository) Delete(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, userID)
	return nil
}

// MemoryProductRepository implements domain.ProductRepository
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[uint]*domain.Product
	nextID   uint
}

// NewMemoryProductRepository creates an empty in-memory product repository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[uint]*domain.Product), nextID: 1}
}

// Create implements domain.ProductRepository
func (r *MemoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	stored := *product
	r.products[product.ID] = &stored
	return nil
}

// FindByID implements domain.ProductRepository
func (r *MemoryProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *product
	return &out, nil
}

// ListByUser implements domain.ProductRepository
func (r *MemoryProductRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []*domain.Product
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok && p.UserID == userID {
			out := *p
			products = append(products, &out)
		}
	}
	return products, nil
}

// ListAll implements domain.ProductRepository
func (r *MemoryProductRepository) ListAll(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []*domain.Product
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			out := *p
			products = append(products, &out)
		}
	}
	return products, nil
}

// Update implements domain.ProductRepository
func (r *MemoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

// Delete implements domain.ProductRepository
func (r *MemoryProductRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}
