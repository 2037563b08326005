package handlers

import (
	"net/http"
	"unicode"

	"go.uber.org/zap"

	"storeapi/internal/auth"
	"storeapi/internal/config"
	"storeapi/internal/service"
)

// UserHandler serves registration, login and the user list.
type UserHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewUserHandler(users *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Users: users, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   int64  `json:"roleId"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type readUserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RoleID   int64  `json:"roleId"`
}

// passwordMeetsComplexity requires at least 5 characters with at least one
// uppercase and one lowercase letter.
func passwordMeetsComplexity(password string) bool {
	if len(password) < 5 {
		return false
	}
	var upper, lower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return upper && lower
}

// Register handles POST /user: public registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !passwordMeetsComplexity(req.Password) {
		writeError(w, http.StatusBadRequest,
			"password must have at least 5 characters, one uppercase and one lowercase letter")
		return
	}

	user, err := h.Users.Register(r.Context(), req.Username, req.Password, req.RoleID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, readUserDTO{ID: user.ID, Username: user.Username, RoleID: user.RoleID})
}

// Login handles POST /user/login. On success the response is the session
// token; every failure is the same generic 400.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	var roleName string
	if user.Role != nil {
		roleName = user.Role.AccountRole
	}
	token, err := auth.IssueToken(h.Config.AuthSecret, user.Username, roleName)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"Token": token})
}

// List handles GET /user: every account, with digests and salts never
// serialized.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	dtos := make([]readUserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, readUserDTO{ID: u.ID, Username: u.Username, RoleID: u.RoleID})
	}
	writeJSON(w, http.StatusOK, dtos)
}
