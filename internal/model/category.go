package model

// ItemCategory groups items. Deletion is restricted while items still
// reference the category; the store does not cascade, so the service
// layer checks for referencing items explicitly before deleting.
type ItemCategory struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}
