package repo

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
)

// CategoryRepository is the persistence contract for item categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.ItemCategory) error
	GetByID(ctx context.Context, id int64) (*model.ItemCategory, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.ItemCategory, error)
	Update(ctx context.Context, category *model.ItemCategory) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository creates the gorm-backed category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.ItemCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*model.ItemCategory, error) {
	var category model.ItemCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) ListPage(ctx context.Context, offset, limit int) ([]model.ItemCategory, error) {
	var categories []model.ItemCategory
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, category *model.ItemCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.ItemCategory{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
