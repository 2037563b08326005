package model

import "time"

// Item is a stored inventory item. Every item belongs to exactly one
// category; the category cannot be deleted while items reference it.
type Item struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"size:200;not null" json:"description"`
	Type            string    `gorm:"size:100;not null" json:"type"`
	Value           float64   `gorm:"not null" json:"value"`
	DateOfInsert    time.Time `json:"dateOfInsert"`
	InventoryAmount int       `gorm:"not null;default:0" json:"inventoryAmount"`

	ItemCategoryID int64         `gorm:"not null;index" json:"itemCategoryId"`
	ItemCategory   *ItemCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
