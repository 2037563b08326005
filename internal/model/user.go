package model

// User is a registered account. Password holds the base64-encoded SHA-256
// digest of the plaintext concatenated with Salt (base64-encoded random
// bytes); the two are always written together and never serialized.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;not null;index" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Salt     string `gorm:"not null" json:"-"`

	RoleID int64 `gorm:"not null;index" json:"roleId"`
	Role   *Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
