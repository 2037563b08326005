package repo

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
)

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error

	// GetByUsername returns the first user with the given username, with
	// its Role preloaded, or gorm.ErrRecordNotFound.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// ListAll returns every user in insertion order.
	ListAll(ctx context.Context) ([]model.User, error)

	// CountByRole returns how many users reference the given role.
	CountByRole(ctx context.Context, roleID int64) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates the gorm-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("Role").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r *userRepo) CountByRole(ctx context.Context, roleID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("role_id = ?", roleID).Count(&n).Error
	return n, err
}
