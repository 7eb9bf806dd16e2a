package services

import (
	"github.com/rishen2486/wheels-up-booking-suite/access"
	"github.com/rishen2486/wheels-up-booking-suite/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type Summary struct {
	Cars        int64            `json:"cars"`
	Tours       int64            `json:"tours"`
	Attractions int64            `json:"attractions"`
	Bookings    int64            `json:"bookings"`
	PaidRevenue float64          `json:"paid_revenue"`
	ByStatus    map[string]int64 `json:"by_status"`
}

// Summarize builds the dashboard numbers under the caller's scope, so
// an agent sees their own figures and a superuser the whole platform.
func (s *AnalyticsService) Summarize(scope access.Scope) (*Summary, error) {
	out := &Summary{ByStatus: map[string]int64{}}

	if err := s.DB.Model(&models.Car{}).Scopes(scope.Apply).Count(&out.Cars).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Tour{}).Scopes(scope.Apply).Count(&out.Tours).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Attraction{}).Scopes(scope.Apply).Count(&out.Attractions).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).Scopes(scope.Apply).Count(&out.Bookings).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Booking{}).
		Scopes(scope.Apply).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.PaidRevenue).Error; err != nil {
		return nil, err
	}

	type statusRow struct {
		PaymentStatus string
		N             int64
	}
	var byStatus []statusRow
	if err := s.DB.Model(&models.Booking{}).
		Scopes(scope.Apply).
		Select("payment_status, COUNT(*) AS n").
		Group("payment_status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, r := range byStatus {
		out.ByStatus[r.PaymentStatus] = r.N
	}

	return out, nil
}
