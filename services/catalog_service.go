package services

import (
	"errors"

	"github.com/rishen2486/wheels-up-booking-suite/access"
	"github.com/rishen2486/wheels-up-booking-suite/models"

	"gorm.io/gorm"
)

// ErrForbidden is returned when a non-superuser touches a row they do
// not own.
var ErrForbidden = errors.New("forbidden")

// CatalogFilter carries the public list-query params.
type CatalogFilter struct {
	Location string
	Type     string
}

// ---------------- Cars ----------------

type CarService struct {
	DB *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService { return &CarService{DB: db} }

func (s *CarService) Create(car *models.Car) error {
	return s.DB.Create(car).Error
}

// ListPublic returns available cars for the browse pages.
func (s *CarService) ListPublic(f CatalogFilter) ([]models.Car, error) {
	q := s.DB.Where("available = ?", true)
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	var cars []models.Car
	err := q.Order("created_at DESC").Find(&cars).Error
	return cars, err
}

// ListScoped returns cars visible on the owner dashboard.
func (s *CarService) ListScoped(scope access.Scope) ([]models.Car, error) {
	var cars []models.Car
	err := s.DB.Scopes(scope.Apply).Order("created_at DESC").Find(&cars).Error
	return cars, err
}

func (s *CarService) GetByID(id uint) (*models.Car, error) {
	var car models.Car
	if err := s.DB.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (s *CarService) Update(id uint, scope access.Scope, updates map[string]interface{}) error {
	car, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !scope.Allows(car.UserID) {
		return ErrForbidden
	}
	return s.DB.Model(&models.Car{}).Where("id = ?", id).Updates(updates).Error
}

func (s *CarService) Delete(id uint, scope access.Scope) error {
	car, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !scope.Allows(car.UserID) {
		return ErrForbidden
	}
	return s.DB.Delete(&models.Car{}, id).Error
}

// ---------------- Tours ----------------

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService { return &TourService{DB: db} }

func (s *TourService) Create(tour *models.Tour) error {
	return s.DB.Create(tour).Error
}

func (s *TourService) ListPublic(f CatalogFilter) ([]models.Tour, error) {
	q := s.DB.Where("available = ?", true)
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	var tours []models.Tour
	err := q.Order("created_at DESC").Find(&tours).Error
	return tours, err
}

func (s *TourService) ListScoped(scope access.Scope) ([]models.Tour, error) {
	var tours []models.Tour
	err := s.DB.Scopes(scope.Apply).Order("created_at DESC").Find(&tours).Error
	return tours, err
}

func (s *TourService) GetByID(id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &tour, nil
}

func (s *TourService) Update(id uint, scope access.Scope, updates map[string]interface{}) error {
	tour, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !scope.Allows(tour.UserID) {
		return ErrForbidden
	}
	return s.DB.Model(&models.Tour{}).Where("id = ?", id).Updates(updates).Error
}

func (s *TourService) Delete(id uint, scope access.Scope) error {
	tour, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !scope.Allows(tour.UserID) {
		return ErrForbidden
	}
	return s.DB.Delete(&models.Tour{}, id).Error
}

// ---------------- Attractions ----------------

type AttractionService struct {
	DB *gorm.DB
}

func NewAttractionService(db *gorm.DB) *AttractionService { return &AttractionService{DB: db} }

func (s *AttractionService) Create(attraction *models.Attraction) error {
	return s.DB.Create(attraction).Error
}

func (s *AttractionService) ListPublic(f CatalogFilter) ([]models.Attraction, error) {
	q := s.DB.Where("available = ?", true)
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	var attractions []models.Attraction
	err := q.Order("created_at DESC").Find(&attractions).Error
	return attractions, err
}

func (s *AttractionService) ListScoped(scope access.Scope) ([]models.Attraction, error) {
	var attractions []models.Attraction
	err := s.DB.Scopes(scope.Apply).Order("created_at DESC").Find(&attractions).Error
	return attractions, err
}

func (s *AttractionService) GetByID(id uint) (*models.Attraction, error) {
	var attraction models.Attraction
	if err := s.DB.First(&attraction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &attraction, nil
}

func (s *AttractionService) Update(id uint, scope access.Scope, updates map[string]interface{}) error {
	attraction, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !scope.Allows(attraction.UserID) {
		return ErrForbidden
	}
	return s.DB.Model(&models.Attraction{}).Where("id = ?", id).Updates(updates).Error
}

func (s *AttractionService) Delete(id uint, scope access.Scope) error {
	attraction, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !scope.Allows(attraction.UserID) {
		return ErrForbidden
	}
	return s.DB.Delete(&models.Attraction{}, id).Error
}
