package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"storeapi/internal/auth"
	"storeapi/internal/model"
	"storeapi/internal/repo"
)

// dummySalt is hashed against when the username does not exist, so the
// login path does roughly the same work whether or not the user is
// registered.
var dummySalt = make([]byte, auth.SaltSize)

// UserService handles registration and login. Passwords are stored as
// base64(SHA-256(password||salt)) next to base64(salt), never plaintext.
type UserService struct {
	users       repo.UserRepository
	roles       repo.RoleRepository
	defaultRole string
}

// NewUserService creates the user service. defaultRole names the sentinel
// role attached to registrations that do not specify one.
func NewUserService(users repo.UserRepository, roles repo.RoleRepository, defaultRole string) *UserService {
	return &UserService{users: users, roles: roles, defaultRole: defaultRole}
}

// ValidateUser applies the registration predicate: non-blank username of
// 2 to 100 characters and a non-blank password.
func ValidateUser(username, password string) error {
	e := &ValidationError{}
	name := strings.TrimSpace(username)
	if name == "" {
		e.add("username", "must not be blank")
	} else if len(name) < 2 || len(name) > 100 {
		e.add("username", "must be between 2 and 100 characters")
	}
	if strings.TrimSpace(password) == "" {
		e.add("password", "must not be blank")
	}
	return e.orNil()
}

// Register creates a new account. A zero roleID attaches the default role,
// creating it on first use.
func (s *UserService) Register(ctx context.Context, username, password string, roleID int64) (*model.User, error) {
	if err := ValidateUser(username, password); err != nil {
		return nil, err
	}

	if roleID == 0 {
		role, err := s.ensureDefaultRole(ctx)
		if err != nil {
			return nil, err
		}
		roleID = role.ID
	} else if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidField("roleId", "unknown role")
		}
		return nil, err
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, err
	}
	digest := auth.HashPassword(password, salt)

	user := &model.User{
		Username: username,
		Password: base64.StdEncoding.EncodeToString(digest),
		Salt:     base64.StdEncoding.EncodeToString(salt),
		RoleID:   roleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the stored user with its role
// preloaded. Every failure is ErrInvalidCredentials: the response must not
// reveal whether the username exists.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		auth.HashPassword(password, dummySalt)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(user.Salt)
	if err != nil {
		return nil, fmt.Errorf("decoding stored salt: %w", err)
	}
	digest, err := base64.StdEncoding.DecodeString(user.Password)
	if err != nil {
		return nil, fmt.Errorf("decoding stored digest: %w", err)
	}

	if !auth.VerifyPassword(password, salt, digest) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// List returns every registered user.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.ListAll(ctx)
}

func (s *UserService) ensureDefaultRole(ctx context.Context) (*model.Role, error) {
	role, err := s.roles.GetByName(ctx, s.defaultRole)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = &model.Role{AccountRole: s.defaultRole}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}
