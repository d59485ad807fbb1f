package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/you/tradeops/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. Email uniqueness is enforced by
// the unique index; a violation maps to ErrEmailTaken.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository. The match is case-sensitive
// and exact; no normalization is applied.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("password", passwordHash).Error
}

// ListAll implements domain.UserRepository
func (r *UserRepositoryImpl) ListAll(ctx context.Context) ([]*domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("id").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
