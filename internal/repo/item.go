package repo

import (
	"context"

	"gorm.io/gorm"

	"storeapi/internal/model"
)

// ItemRepository is the persistence contract for items used by the service
// layer.
type ItemRepository interface {
	// Create persists a new item; the store assigns the ID.
	Create(ctx context.Context, item *model.Item) error

	// GetByID returns the item or gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// ListPage returns up to limit items starting at offset, in insertion
	// order.
	ListPage(ctx context.Context, offset, limit int) ([]model.Item, error)

	// Update saves all fields of an existing item.
	Update(ctx context.Context, item *model.Item) error

	// Delete removes the item, gorm.ErrRecordNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// CountByCategory returns how many items reference the given category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository creates the gorm-backed item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) ListPage(ctx context.Context, offset, limit int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Where("item_category_id = ?", categoryID).Count(&n).Error
	return n, err
}
