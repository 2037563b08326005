package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storeapi/internal/model"
	"storeapi/internal/repo"
)

// testify mocks for the repository contracts

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*model.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) ListPage(ctx context.Context, offset, limit int) ([]model.Item, error) {
	args := m.Called(ctx, offset, limit)
	if items, ok := args.Get(0).([]model.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockItemRepo) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *model.ItemCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*model.ItemCategory, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.ItemCategory); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) ListPage(ctx context.Context, offset, limit int) ([]model.ItemCategory, error) {
	args := m.Called(ctx, offset, limit)
	if cs, ok := args.Get(0).([]model.ItemCategory); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *model.ItemCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) Create(ctx context.Context, role *model.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*model.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if r, ok := args.Get(0).(*model.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) ListPage(ctx context.Context, offset, limit int) ([]model.Role, error) {
	args := m.Called(ctx, offset, limit)
	if rs, ok := args.Get(0).([]model.Role); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) Update(ctx context.Context, role *model.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *mockRoleRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.RoleRepository = (*mockRoleRepo)(nil)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if us, ok := args.Get(0).([]model.User); ok {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CountByRole(ctx context.Context, roleID int64) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)
