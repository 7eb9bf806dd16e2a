package models

import "time"

// SearchRequest records what visitors searched for; user_id is nullable
// because the search bar works before login.
type SearchRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *string `gorm:"column:user_id;size:36;index" json:"user_id,omitempty"`

	PickupLocation  string `gorm:"column:pickup_location;size:255" json:"pickup_location"`
	DropoffLocation string `gorm:"column:dropoff_location;size:255" json:"dropoff_location,omitempty"`
	PickupDate      string `gorm:"column:pickup_date;size:10" json:"pickup_date"`
	DropoffDate     string `gorm:"column:dropoff_date;size:10" json:"dropoff_date"`
	PickupTime      string `gorm:"column:pickup_time;size:8" json:"pickup_time,omitempty"`
	DropoffTime     string `gorm:"column:dropoff_time;size:8" json:"dropoff_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
