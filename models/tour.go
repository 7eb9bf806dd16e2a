package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Tour struct {
	gorm.Model

	UserID string `json:"user_id" gorm:"column:user_id;size:36;index"`

	Name         string  `json:"name" gorm:"size:255"`
	Location     string  `json:"location" gorm:"size:255;index"`
	DurationDays int     `json:"duration_days" gorm:"column:duration_days;default:1"`
	Price        float64 `json:"price"`
	MaxPeople    int     `json:"max_people" gorm:"column:max_people"`
	Description  string  `json:"description" gorm:"type:text"`

	ImageURLs datatypes.JSON `json:"image_urls,omitempty" gorm:"column:image_urls"`

	Available bool `json:"available" gorm:"default:true"`
}
