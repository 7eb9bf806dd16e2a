package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model

	// Owner (agent) that listed the car. Opaque user id from profiles.
	UserID string `json:"user_id" gorm:"column:user_id;size:36;index"`

	Name         string  `json:"name" gorm:"size:255"`
	Brand        string  `json:"brand" gorm:"size:100"`
	CarModel     string  `json:"model" gorm:"column:car_model;size:100"`
	Year         int     `json:"year"`
	Type         string  `json:"type" gorm:"size:50"`
	Seats        int     `json:"seats"`
	Transmission string  `json:"transmission" gorm:"size:50"`
	FuelType     string  `json:"fuel_type" gorm:"column:fuel_type;size:50"`
	Location     string  `json:"location" gorm:"size:255;index"`
	DailyRate    float64 `json:"daily_rate" gorm:"column:daily_rate"`
	Description  string  `json:"description" gorm:"type:text"`

	Features  datatypes.JSON `json:"features,omitempty" gorm:"column:features"`
	ImageURLs datatypes.JSON `json:"image_urls,omitempty" gorm:"column:image_urls"`

	Available bool `json:"available" gorm:"default:true"`
}
