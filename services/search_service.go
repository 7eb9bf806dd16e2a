package services

import (
	"github.com/rishen2486/wheels-up-booking-suite/models"

	"gorm.io/gorm"
)

type SearchService struct {
	DB *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// Record stores what a visitor searched for. Guests are fine: UserID
// stays null.
func (s *SearchService) Record(req *models.SearchRequest) error {
	return s.DB.Create(req).Error
}
