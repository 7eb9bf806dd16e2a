package models

import (
	"time"

	"gorm.io/gorm"
)

// AgentInfo holds the business details of an owner/agent that lists
// inventory on the platform.
type AgentInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"column:user_id;size:36;uniqueIndex" json:"user_id"`

	CompanyName     string `gorm:"column:company_name;size:255" json:"company_name,omitempty"`
	LicenseNumber   string `gorm:"column:license_number;size:100" json:"license_number,omitempty"`
	Phone           string `gorm:"size:50" json:"phone,omitempty"`
	BusinessAddress string `gorm:"column:business_address;type:text" json:"business_address,omitempty"`

	Approved bool `gorm:"default:false" json:"approved"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
