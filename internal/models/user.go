package models

// User represents a registered account. Users are created through
// registration and are never updated or deleted by the API.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(80);not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
}

// NewUser builds an unsaved user.
func NewUser(username, password string) *User {
	return &User{Username: username, Password: password}
}
