package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repo"
)

// letters-only constraint on the item type field.
var itemTypeRe = regexp.MustCompile(`^[A-Za-z]+$`)

// ItemService holds the item business rules: validation, pagination and
// the inventory/patch update paths.
type ItemService struct {
	items repo.ItemRepository
}

func NewItemService(items repo.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// ValidateItem applies the common predicate used before any create or
// update: non-blank name, description and type, letters-only type, value
// strictly positive, non-negative inventory, category set.
func ValidateItem(item *model.Item) error {
	e := &ValidationError{}
	if strings.TrimSpace(item.Name) == "" {
		e.add("name", "must not be blank")
	}
	if strings.TrimSpace(item.Description) == "" {
		e.add("description", "must not be blank")
	}
	switch {
	case strings.TrimSpace(item.Type) == "":
		e.add("type", "must not be blank")
	case !itemTypeRe.MatchString(item.Type):
		e.add("type", "must contain letters only")
	}
	if item.Value <= 0 {
		e.add("value", "must be greater than zero")
	}
	if item.InventoryAmount < 0 {
		e.add("inventoryAmount", "must not be negative")
	}
	if item.ItemCategoryID <= 0 {
		e.add("itemCategoryId", "is required")
	}
	return e.orNil()
}

// Create validates and persists a new item. DateOfInsert defaults to the
// current time when the caller leaves it zero.
func (s *ItemService) Create(ctx context.Context, item *model.Item) error {
	if err := ValidateItem(item); err != nil {
		return err
	}
	if item.DateOfInsert.IsZero() {
		item.DateOfInsert = time.Now().UTC()
	}
	return s.items.Create(ctx, item)
}

// Get returns the item by id.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

// List returns one page of items in insertion order.
func (s *ItemService) List(ctx context.Context, page Page) ([]model.Item, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.items.ListPage(ctx, page.Offset(), page.Size)
}

// Update replaces every field of the stored item and persists only if the
// merged result still validates.
func (s *ItemService) Update(ctx context.Context, id int64, updated *model.Item) error {
	target, err := s.items.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	target.Name = updated.Name
	target.Description = updated.Description
	target.Type = updated.Type
	target.Value = updated.Value
	target.DateOfInsert = updated.DateOfInsert
	target.InventoryAmount = updated.InventoryAmount
	target.ItemCategoryID = updated.ItemCategoryID

	if err := ValidateItem(target); err != nil {
		return err
	}
	return s.items.Update(ctx, target)
}

// PatchOp is a single field-level patch operation. Only "replace" is
// supported; Path names the JSON field, e.g. "/inventoryAmount".
type PatchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// ApplyPatch applies the operations to a working copy of the stored item,
// re-validates the merged result and persists only if validation passes.
// On any failure the stored record is left untouched.
func (s *ItemService) ApplyPatch(ctx context.Context, id int64, ops []PatchOp) error {
	target, err := s.items.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	work := *target
	for _, op := range ops {
		if op.Op != "replace" {
			return invalidField("op", fmt.Sprintf("unsupported operation %q", op.Op))
		}
		if err := applyItemPatch(&work, op); err != nil {
			return err
		}
	}

	if err := ValidateItem(&work); err != nil {
		return err
	}
	return s.items.Update(ctx, &work)
}

func applyItemPatch(item *model.Item, op PatchOp) error {
	switch op.Path {
	case "/name":
		s, ok := op.Value.(string)
		if !ok {
			return invalidField("name", "must be a string")
		}
		item.Name = s
	case "/description":
		s, ok := op.Value.(string)
		if !ok {
			return invalidField("description", "must be a string")
		}
		item.Description = s
	case "/type":
		s, ok := op.Value.(string)
		if !ok {
			return invalidField("type", "must be a string")
		}
		item.Type = s
	case "/value":
		f, ok := op.Value.(float64)
		if !ok {
			return invalidField("value", "must be a number")
		}
		item.Value = f
	case "/dateOfInsert":
		s, ok := op.Value.(string)
		if !ok {
			return invalidField("dateOfInsert", "must be an RFC 3339 timestamp")
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return invalidField("dateOfInsert", "must be an RFC 3339 timestamp")
		}
		item.DateOfInsert = t
	case "/inventoryAmount":
		f, ok := op.Value.(float64)
		if !ok || f != float64(int(f)) {
			return invalidField("inventoryAmount", "must be an integer")
		}
		item.InventoryAmount = int(f)
	case "/itemCategoryId":
		f, ok := op.Value.(float64)
		if !ok || f != float64(int64(f)) {
			return invalidField("itemCategoryId", "must be an integer")
		}
		item.ItemCategoryID = int64(f)
	default:
		return invalidField("path", fmt.Sprintf("unknown field %q", op.Path))
	}
	return nil
}

// SetInventory replaces the inventory amount only. Negative amounts are
// rejected before any storage access.
func (s *ItemService) SetInventory(ctx context.Context, id int64, amount int) error {
	if amount < 0 {
		return invalidField("amount", "must not be negative")
	}

	target, err := s.items.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	target.InventoryAmount = amount
	return s.items.Update(ctx, target)
}

// Delete removes the item by id.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	err := s.items.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
