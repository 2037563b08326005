package model

// RoleAdmin is the role name required by admin-only endpoints.
const RoleAdmin = "administrador"

// Role is a user role. Deletion is restricted while users reference it.
type Role struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	AccountRole string `gorm:"size:100;not null" json:"accountRole"`
}
