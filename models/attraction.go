package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Attraction struct {
	gorm.Model

	UserID string `json:"user_id" gorm:"column:user_id;size:36;index"`

	Name        string  `json:"name" gorm:"size:255"`
	Location    string  `json:"location" gorm:"size:255;index"`
	Price       float64 `json:"price"`
	OpenHours   string  `json:"open_hours" gorm:"column:open_hours;size:100"`
	Description string  `json:"description" gorm:"type:text"`

	ImageURLs datatypes.JSON `json:"image_urls,omitempty" gorm:"column:image_urls"`

	Available bool `json:"available" gorm:"default:true"`
}
