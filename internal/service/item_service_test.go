package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storeapi/internal/model"
)

func validItem() *model.Item {
	return &model.Item{
		Name:            "Cable",
		Description:     "USB-C",
		Type:            "Eletronico",
		Value:           9.99,
		InventoryAmount: 10,
		ItemCategoryID:  1,
	}
}

func TestItemService_Create_Valid(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	m.On("Create", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
		return it.Name == "Cable" && !it.DateOfInsert.IsZero()
	})).Return(nil).Once()

	err := svc.Create(ctx, validItem())
	assert.NoError(t, err)
	m.AssertExpectations(t)
}

func TestItemService_Create_KeepsProvidedDate(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	when := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	item := validItem()
	item.DateOfInsert = when
	m.On("Create", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
		return it.DateOfInsert.Equal(when)
	})).Return(nil).Once()

	assert.NoError(t, svc.Create(context.Background(), item))
	m.AssertExpectations(t)
}

func TestItemService_Create_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Item)
		field  string
	}{
		{"blank name", func(it *model.Item) { it.Name = "   " }, "name"},
		{"blank description", func(it *model.Item) { it.Description = "" }, "description"},
		{"blank type", func(it *model.Item) { it.Type = " " }, "type"},
		{"non-letter type", func(it *model.Item) { it.Type = "Tipo 1" }, "type"},
		{"zero value", func(it *model.Item) { it.Value = 0 }, "value"},
		{"negative value", func(it *model.Item) { it.Value = -1 }, "value"},
		{"negative inventory", func(it *model.Item) { it.InventoryAmount = -1 }, "inventoryAmount"},
		{"missing category", func(it *model.Item) { it.ItemCategoryID = 0 }, "itemCategoryId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := new(mockItemRepo)
			svc := NewItemService(m)

			item := validItem()
			tc.mutate(item)

			err := svc.Create(context.Background(), item)
			var vErr *ValidationError
			if assert.ErrorAs(t, err, &vErr) {
				assert.Equal(t, tc.field, vErr.Fields[0].Field)
			}
			// nothing persisted on a validation failure
			m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestItemService_List_PageWindow(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	two := 2
	m.On("ListPage", mock.Anything, 5, 5).Return([]model.Item{}, nil).Once()
	_, err := svc.List(ctx, Page{Number: &two, Size: 5})
	assert.NoError(t, err)

	// nil page means page 1
	m.On("ListPage", mock.Anything, 0, 10).Return([]model.Item{}, nil).Once()
	_, err = svc.List(ctx, Page{Size: 10})
	assert.NoError(t, err)

	m.AssertExpectations(t)
}

func TestItemService_List_RejectsBadPaging(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	zero := 0
	_, err := svc.List(ctx, Page{Number: &zero, Size: 5})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.List(ctx, Page{Size: 0})
	assert.ErrorAs(t, err, &vErr)

	neg := -3
	_, err = svc.List(ctx, Page{Number: &neg, Size: 5})
	assert.ErrorAs(t, err, &vErr)

	// storage is never touched with invalid paging
	m.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestItemService_Get_NotFound(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)

	m.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	m.AssertExpectations(t)
}

func TestItemService_Update_MergesAndValidates(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	stored := validItem()
	stored.ID = 7

	m.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
	m.On("Update", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
		return it.ID == 7 && it.Name == "Adapter" && it.Value == 19.99
	})).Return(nil).Once()

	updated := validItem()
	updated.Name = "Adapter"
	updated.Value = 19.99
	assert.NoError(t, svc.Update(ctx, 7, updated))

	// invalid merged result leaves the record untouched
	bad := validItem()
	bad.Value = -5
	err := svc.Update(ctx, 7, bad)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	m.AssertNumberOfCalls(t, "Update", 1)
}

func TestItemService_ApplyPatch(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	stored := validItem()
	stored.ID = 3
	m.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)

	m.On("Update", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
		return it.InventoryAmount == 7 && it.Name == "Hub"
	})).Return(nil).Once()

	ops := []PatchOp{
		{Op: "replace", Path: "/inventoryAmount", Value: float64(7)},
		{Op: "replace", Path: "/name", Value: "Hub"},
	}
	assert.NoError(t, svc.ApplyPatch(ctx, 3, ops))
	m.AssertExpectations(t)
}

func TestItemService_ApplyPatch_Rejected(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	stored := validItem()
	stored.ID = 3
	m.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)

	var vErr *ValidationError

	// unsupported op
	err := svc.ApplyPatch(ctx, 3, []PatchOp{{Op: "remove", Path: "/name"}})
	assert.ErrorAs(t, err, &vErr)

	// unknown path
	err = svc.ApplyPatch(ctx, 3, []PatchOp{{Op: "replace", Path: "/bogus", Value: "x"}})
	assert.ErrorAs(t, err, &vErr)

	// merged result fails validation
	err = svc.ApplyPatch(ctx, 3, []PatchOp{{Op: "replace", Path: "/value", Value: float64(-1)}})
	assert.ErrorAs(t, err, &vErr)

	// stored record was never written
	m.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestItemService_SetInventory(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)
	ctx := context.Background()

	stored := validItem()
	stored.ID = 9
	m.On("GetByID", mock.Anything, int64(9)).Return(stored, nil)
	m.On("Update", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
		return it.InventoryAmount == 7
	})).Return(nil).Once()

	assert.NoError(t, svc.SetInventory(ctx, 9, 7))
	m.AssertExpectations(t)
}

func TestItemService_SetInventory_NegativeRejected(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)

	err := svc.SetInventory(context.Background(), 9, -1)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	// rejected before any storage access
	m.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestItemService_Delete_NotFound(t *testing.T) {
	m := new(mockItemRepo)
	svc := NewItemService(m)

	m.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrNotFound)
	m.AssertExpectations(t)
}
