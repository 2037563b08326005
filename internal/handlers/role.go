package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"storeapi/internal/model"
	"storeapi/internal/service"
)

const defaultRolePageSize = 10

// RoleHandler serves the /role endpoints.
type RoleHandler struct {
	Roles  *service.RoleService
	Logger *zap.SugaredLogger
}

func NewRoleHandler(roles *service.RoleService, logger *zap.SugaredLogger) *RoleHandler {
	return &RoleHandler{Roles: roles, Logger: logger}
}

type roleRequest struct {
	AccountRole string `json:"accountRole"`
}

// Create handles POST /role.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role := &model.Role{AccountRole: req.AccountRole}
	if err := h.Roles.Create(r.Context(), role); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, role)
}

// List handles GET /role?page=&pageSize=.
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultRolePageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	roles, err := h.Roles.List(r.Context(), page)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	if roles == nil {
		roles = []model.Role{}
	}
	writeJSON(w, http.StatusOK, roles)
}

// Get handles GET /role/{id}.
func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	role, err := h.Roles.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

// Update handles PUT /role/{id}.
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Roles.Update(r.Context(), id, &model.Role{AccountRole: req.AccountRole}); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /role/{id}. Fails with 409 while users still
// reference the role.
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	if err := h.Roles.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
