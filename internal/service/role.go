package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repo"
)

// RoleService holds the role business rules; deletion is restricted while
// users still reference the role.
type RoleService struct {
	roles repo.RoleRepository
	users repo.UserRepository
}

func NewRoleService(roles repo.RoleRepository, users repo.UserRepository) *RoleService {
	return &RoleService{roles: roles, users: users}
}

// ValidateRole requires a non-blank role name.
func ValidateRole(role *model.Role) error {
	if strings.TrimSpace(role.AccountRole) == "" {
		return invalidField("accountRole", "must not be blank")
	}
	return nil
}

func (s *RoleService) Create(ctx context.Context, role *model.Role) error {
	if err := ValidateRole(role); err != nil {
		return err
	}
	return s.roles.Create(ctx, role)
}

func (s *RoleService) Get(ctx context.Context, id int64) (*model.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return role, err
}

func (s *RoleService) List(ctx context.Context, page Page) ([]model.Role, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.roles.ListPage(ctx, page.Offset(), page.Size)
}

func (s *RoleService) Update(ctx context.Context, id int64, updated *model.Role) error {
	target, err := s.roles.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	target.AccountRole = updated.AccountRole
	if err := ValidateRole(target); err != nil {
		return err
	}
	return s.roles.Update(ctx, target)
}

// Delete removes the role unless users still reference it.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.roles.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	n, err := s.users.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	return s.roles.Delete(ctx, id)
}
