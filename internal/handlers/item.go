package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"storeapi/internal/model"
	"storeapi/internal/service"
)

// defaultItemPageSize is the page size used when the list request omits one.
const defaultItemPageSize = 5

// ItemHandler serves the /item endpoints.
type ItemHandler struct {
	Items  *service.ItemService
	Logger *zap.SugaredLogger
}

func NewItemHandler(items *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{Items: items, Logger: logger}
}

type itemRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Value           float64   `json:"value"`
	DateOfInsert    time.Time `json:"dateOfInsert"`
	InventoryAmount int       `json:"inventoryAmount"`
	ItemCategoryID  int64     `json:"itemCategoryId"`
}

func (req *itemRequest) toModel() *model.Item {
	return &model.Item{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		Value:           req.Value,
		DateOfInsert:    req.DateOfInsert,
		InventoryAmount: req.InventoryAmount,
		ItemCategoryID:  req.ItemCategoryID,
	}
}

type readItemDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Value           float64   `json:"value"`
	DateOfInsert    time.Time `json:"dateOfInsert"`
	InventoryAmount int       `json:"inventoryAmount"`
	ItemCategoryID  int64     `json:"itemCategoryId"`
	TimeOfRead      time.Time `json:"timeOfRead"`
}

func newReadItemDTO(item *model.Item) readItemDTO {
	return readItemDTO{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Type:            item.Type,
		Value:           item.Value,
		DateOfInsert:    item.DateOfInsert,
		InventoryAmount: item.InventoryAmount,
		ItemCategoryID:  item.ItemCategoryID,
		TimeOfRead:      time.Now().UTC(),
	}
}

// Create handles POST /item.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := req.toModel()
	if err := h.Items.Create(r.Context(), item); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newReadItemDTO(item))
}

// List handles GET /item?page=&pageSize=.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, defaultItemPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.Items.List(r.Context(), page)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	dtos := make([]readItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, newReadItemDTO(&items[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Get handles GET /item/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Items.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReadItemDTO(item))
}

// Update handles PUT /item/{id}: a full update of every field.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Items.Update(r.Context(), id, req.toModel()); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Patch handles PATCH /item/{id}: a list of field-level replace operations
// applied to a working copy and persisted only if the result validates.
func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var ops []service.PatchOp
	if err := decodeJSON(r, &ops); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Items.ApplyPatch(r.Context(), id, ops); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateInventory handles PATCH /item/{id}/inventory?amount=: the
// inventory-only patch. Negative amounts are rejected.
func (h *ItemHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be an integer")
		return
	}

	if err := h.Items.SetInventory(r.Context(), id, amount); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /item/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Items.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
