package models

import (
	"time"

	"gorm.io/gorm"
)

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Opaque identifier used as the owner reference on every other table.
	UserID string `gorm:"column:user_id;size:36;uniqueIndex" json:"user_id"`

	Email    string `gorm:"size:255;uniqueIndex" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned

	FirstName string `gorm:"column:first_name;size:100" json:"first_name,omitempty"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name,omitempty"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`
	Role      string `gorm:"size:50;default:customer" json:"role"`

	// Superuser sees every owner's rows; everyone else is scoped to
	// their own user_id.
	Superuser bool `gorm:"default:false" json:"superuser"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
