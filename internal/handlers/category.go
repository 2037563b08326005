package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"storeapi/internal/model"
	"storeapi/internal/service"
)

const defaultCategoryPageSize = 10

// CategoryHandler serves the /category endpoints.
type CategoryHandler struct {
	Categories *service.CategoryService
	Logger     *zap.SugaredLogger
}

func NewCategoryHandler(categories *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{Categories: categories, Logger: logger}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// Create handles POST /category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := &model.ItemCategory{Name: req.Name}
	if err := h.Categories.Create(r.Context(), category); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// List handles GET /category?page=&pageSize=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultCategoryPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	categories, err := h.Categories.List(r.Context(), page)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	if categories == nil {
		categories = []model.ItemCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// Get handles GET /category/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Update handles PUT /category/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Categories.Update(r.Context(), id, &model.ItemCategory{Name: req.Name}); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /category/{id}. Fails with 409 while items still
// reference the category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.Categories.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
