package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/you/tradeops/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product (with GORM tags)
type DBProduct struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Name        string `gorm:"size:255"`
	Description string
	Price       float64
	ImagePath   string    `gorm:"size:512"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct := r.domainToDB(product)
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return err
	}
	product.ID = dbProduct.ID
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// ListByUser implements domain.ProductRepository
func (r *ProductRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*domain.Product, error) {
	var dbProducts []DBProduct
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbProducts), nil
}

// ListAll implements domain.ProductRepository
func (r *ProductRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Product, error) {
	var dbProducts []DBProduct
	if err := r.db.WithContext(ctx).Order("id").Find(&dbProducts).Error; err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbProducts), nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(product)).Error
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBProduct{}, id).Error
}

func (r *ProductRepositoryImpl) domainToDB(p *domain.Product) *DBProduct {
	return &DBProduct{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImagePath:   p.ImagePath,
	}
}

func (r *ProductRepositoryImpl) dbToDomain(p *DBProduct) *domain.Product {
	return &domain.Product{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImagePath:   p.ImagePath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProductRepositoryImpl) dbToDomainSlice(in []DBProduct) []*domain.Product {
	out := make([]*domain.Product, 0, len(in))
	for i := range in {
		out = append(out, r.dbToDomain(&in[i]))
	}
	return out
}
