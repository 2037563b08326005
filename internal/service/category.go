package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repo"
)

// CategoryService holds the category business rules, in particular the
// restrict-delete check against referencing items.
type CategoryService struct {
	categories repo.CategoryRepository
	items      repo.ItemRepository
}

func NewCategoryService(categories repo.CategoryRepository, items repo.ItemRepository) *CategoryService {
	return &CategoryService{categories: categories, items: items}
}

// ValidateCategory requires a non-blank name of 2 to 100 characters.
func ValidateCategory(category *model.ItemCategory) error {
	name := strings.TrimSpace(category.Name)
	if len(name) < 2 || len(name) > 100 {
		return invalidField("name", "must be between 2 and 100 characters")
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, category *model.ItemCategory) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	return s.categories.Create(ctx, category)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.ItemCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return category, err
}

func (s *CategoryService) List(ctx context.Context, page Page) ([]model.ItemCategory, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.categories.ListPage(ctx, page.Offset(), page.Size)
}

func (s *CategoryService) Update(ctx context.Context, id int64, updated *model.ItemCategory) error {
	target, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	target.Name = updated.Name
	if err := ValidateCategory(target); err != nil {
		return err
	}
	return s.categories.Update(ctx, target)
}

// Delete removes the category unless items still reference it. The check
// is explicit: the store does not cascade or restrict for us.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	n, err := s.items.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	return s.categories.Delete(ctx, id)
}
