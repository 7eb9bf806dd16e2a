// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/access"
	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/pricing"
	"github.com/rishen2486/wheels-up-booking-suite/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrItemNotFound      = errors.New("item_not_found")
	ErrItemUnavailable   = errors.New("item_unavailable")
	ErrUnknownItemKind   = errors.New("unknown_item_kind")
	ErrDateRangeConflict = errors.New("date_range_conflict")
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrBookingNotPending = errors.New("booking_not_pending")
	ErrAttemptNotFound   = errors.New("payment_attempt_not_found")
	ErrAttemptSettled    = errors.New("payment_attempt_settled")
)

// BookingService wraps *gorm.DB with the booking money path: quote,
// conflict check, create, and the payment transition.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	UserID *string

	ItemKind string
	ItemID   uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	StartDate string
	EndDate   string

	PickupLocation  string
	DropoffLocation string
	SpecialRequests string
}

// overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any
// night. End date is the checkout day, so back-to-back bookings where
// one ends the day the other starts do not conflict.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func validItemKind(kind string) bool {
	switch kind {
	case models.ItemKindCar, models.ItemKindTour, models.ItemKindAttraction:
		return true
	}
	return false
}

// itemRate resolves the per-day rate and availability flag for a
// bookable item.
func (s *BookingService) itemRate(tx *gorm.DB, kind string, id uint) (float64, bool, error) {
	switch kind {
	case models.ItemKindCar:
		var car models.Car
		if err := tx.First(&car, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, false, ErrItemNotFound
			}
			return 0, false, fmt.Errorf("db error checking car %d: %w", id, err)
		}
		return car.DailyRate, car.Available, nil
	case models.ItemKindTour:
		var tour models.Tour
		if err := tx.First(&tour, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, false, ErrItemNotFound
			}
			return 0, false, fmt.Errorf("db error checking tour %d: %w", id, err)
		}
		return tour.Price, tour.Available, nil
	case models.ItemKindAttraction:
		var attraction models.Attraction
		if err := tx.First(&attraction, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, false, ErrItemNotFound
			}
			return 0, false, fmt.Errorf("db error checking attraction %d: %w", id, err)
		}
		return attraction.Price, attraction.Available, nil
	}
	return 0, false, ErrUnknownItemKind
}

func hasOverlap(tx *gorm.DB, kind string, itemID uint, start, end time.Time) (bool, error) {
	var blocks []models.AvailabilityBlock
	err := tx.
		Where("item_kind = ? AND item_id = ?", kind, itemID).
		Find(&blocks).Error
	if err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}
	for _, b := range blocks {
		if overlaps(start, end, b.StartDate, b.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

// CreateBooking validates the date range, quotes the total server-side
// and inserts the booking as pending. Dates are validated before any
// table is touched.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	start, err := pricing.ParseDate(in.StartDate)
	if err != nil {
		return nil, pricing.ErrInvalidDateRange
	}
	end, err := pricing.ParseDate(in.EndDate)
	if err != nil {
		return nil, pricing.ErrInvalidDateRange
	}
	if !end.After(start) {
		return nil, pricing.ErrInvalidDateRange
	}
	if !validItemKind(in.ItemKind) {
		return nil, ErrUnknownItemKind
	}

	rate, available, err := s.itemRate(s.DB, in.ItemKind, in.ItemID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrItemUnavailable
	}

	quote, err := pricing.Compute(start, end, rate)
	if err != nil {
		return nil, err
	}

	conflict, err := hasOverlap(s.DB, in.ItemKind, in.ItemID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrDateRangeConflict
	}

	bk := &models.Booking{
		UserID:          in.UserID,
		ItemKind:        in.ItemKind,
		ItemID:          in.ItemID,
		ReferenceCode:   utils.NewReferenceCode(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		StartDate:       start,
		EndDate:         end,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		SpecialRequests: in.SpecialRequests,
		Days:            quote.Days,
		TotalAmount:     quote.Total,
		PaymentStatus:   models.PaymentPending,
	}
	if err := s.DB.Create(bk).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return bk, nil
}

// paymentStore is the narrow persistence surface the payment flow runs
// against. The gorm implementation binds it to the enclosing
// transaction; tests supply a hand-written fake.
type paymentStore interface {
	GetBooking(id uint) (*models.Booking, error)
	CreateAttempt(attempt *models.PaymentAttempt) error

	LockAttempt(id uint) (*models.PaymentAttempt, error)
	LockBooking(id uint) (*models.Booking, error)
	LockItem(kind string, itemID uint) error
	HasOverlap(kind string, itemID uint, start, end time.Time) (bool, error)
	UpdateAttempt(id uint, updates map[string]interface{}) error
	MarkBookingPaid(id uint) error
	CreateBlock(block *models.AvailabilityBlock) error
}

type gormPaymentStore struct {
	db *gorm.DB
}

func (g gormPaymentStore) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := g.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("db error loading booking %d: %w", id, err)
	}
	return &booking, nil
}

func (g gormPaymentStore) CreateAttempt(attempt *models.PaymentAttempt) error {
	if err := g.db.Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create payment attempt: %w", err)
	}
	return nil
}

func (g gormPaymentStore) LockAttempt(id uint) (*models.PaymentAttempt, error) {
	var attempt models.PaymentAttempt
	if err := g.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&attempt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func (g gormPaymentStore) LockBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := g.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// LockItem takes a FOR UPDATE lock on the booked item's own row. The
// attempt and booking rows differ per confirmation, so the item row is
// the one resource competing confirmations share.
func (g gormPaymentStore) LockItem(kind string, itemID uint) error {
	q := g.db.Clauses(clause.Locking{Strength: "UPDATE"})
	var err error
	switch kind {
	case models.ItemKindCar:
		err = q.First(&models.Car{}, itemID).Error
	case models.ItemKindTour:
		err = q.First(&models.Tour{}, itemID).Error
	case models.ItemKindAttraction:
		err = q.First(&models.Attraction{}, itemID).Error
	default:
		return ErrUnknownItemKind
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	return err
}

func (g gormPaymentStore) HasOverlap(kind string, itemID uint, start, end time.Time) (bool, error) {
	return hasOverlap(g.db, kind, itemID, start, end)
}

func (g gormPaymentStore) UpdateAttempt(id uint, updates map[string]interface{}) error {
	return g.db.Model(&models.PaymentAttempt{}).Where("id = ?", id).Updates(updates).Error
}

func (g gormPaymentStore) MarkBookingPaid(id uint) error {
	return g.db.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_status": models.PaymentPaid,
	}).Error
}

func (g gormPaymentStore) CreateBlock(block *models.AvailabilityBlock) error {
	return g.db.Create(block).Error
}

// InitiatePayment opens a mock payment attempt for a pending booking.
// The amount is always the booking's own total.
func (s *BookingService) InitiatePayment(bookingID uint, method string) (*models.PaymentAttempt, error) {
	return initiatePayment(gormPaymentStore{db: s.DB}, bookingID, method)
}

func initiatePayment(st paymentStore, bookingID uint, method string) (*models.PaymentAttempt, error) {
	booking, err := st.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus == models.PaymentPaid {
		return nil, ErrBookingNotPending
	}

	attempt := &models.PaymentAttempt{
		BookingID: booking.ID,
		Amount:    booking.TotalAmount,
		Method:    method,
		Status:    models.AttemptInitiated,
	}
	if err := st.CreateAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// ConfirmPayment settles a payment attempt. On success the booking flips
// to paid and the availability block is written in the same transaction.
// Before the overlap re-check the item row itself is locked FOR UPDATE:
// two confirmations for the same item lock disjoint attempt and booking
// rows, so without the item lock both would read a block snapshot with
// no conflict and both would win. On failure the booking stays pending
// and the customer may retry.
func (s *BookingService) ConfirmPayment(attemptID uint, succeed bool) (*models.Booking, error) {
	var booking *models.Booking
	var conflict bool

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		b, c, err := confirmPayment(gormPaymentStore{db: tx}, attemptID, succeed)
		if err != nil {
			return err
		}
		booking, conflict = b, c
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	if conflict {
		// the failed-attempt write committed with the transaction
		return nil, ErrDateRangeConflict
	}
	return booking, nil
}

// confirmPayment runs the settle logic against a store. A date conflict
// is reported through the bool, not the error, so the enclosing
// transaction still commits the attempt's failed status.
func confirmPayment(st paymentStore, attemptID uint, succeed bool) (*models.Booking, bool, error) {
	attempt, err := st.LockAttempt(attemptID)
	if err != nil {
		return nil, false, err
	}
	if attempt.Status != models.AttemptInitiated {
		return nil, false, ErrAttemptSettled
	}

	booking, err := st.LockBooking(attempt.BookingID)
	if err != nil {
		return nil, false, err
	}

	if !succeed {
		// no transition: user may retry
		if err := st.UpdateAttempt(attempt.ID, map[string]interface{}{
			"status": models.AttemptFailed,
		}); err != nil {
			return nil, false, err
		}
		return booking, false, nil
	}

	if booking.PaymentStatus == models.PaymentPaid {
		return nil, false, ErrBookingNotPending
	}

	// serialize competing confirmations on the shared item row before
	// reading the blocks
	if err := st.LockItem(booking.ItemKind, booking.ItemID); err != nil {
		return nil, false, err
	}

	conflict, err := st.HasOverlap(booking.ItemKind, booking.ItemID, booking.StartDate, booking.EndDate)
	if err != nil {
		return nil, false, err
	}
	if conflict {
		if err := st.UpdateAttempt(attempt.ID, map[string]interface{}{
			"status": models.AttemptFailed,
		}); err != nil {
			return nil, false, err
		}
		return booking, true, nil
	}

	if err := st.MarkBookingPaid(booking.ID); err != nil {
		return nil, false, err
	}
	booking.PaymentStatus = models.PaymentPaid

	if err := st.CreateBlock(&models.AvailabilityBlock{
		ItemKind:  booking.ItemKind,
		ItemID:    booking.ItemID,
		BookingID: booking.ID,
		StartDate: booking.StartDate,
		EndDate:   booking.EndDate,
	}); err != nil {
		return nil, false, err
	}

	txRef := fmt.Sprintf("PAY-%d", time.Now().UnixNano())
	if err := st.UpdateAttempt(attempt.ID, map[string]interface{}{
		"status": models.AttemptSuccess,
		"tx_ref": txRef,
	}); err != nil {
		return nil, false, err
	}

	log.Printf("✅ Booking %s paid (tx %s)", booking.ReferenceCode, txRef)
	return booking, false, nil
}

// ListScoped returns bookings visible under the caller's access scope.
func (s *BookingService) ListScoped(scope access.Scope) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Scopes(scope.Apply).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// BlocksForItem lists the blocked date ranges for an item so callers
// can grey out a calendar.
func (s *BookingService) BlocksForItem(kind string, itemID uint) ([]models.AvailabilityBlock, error) {
	if !validItemKind(kind) {
		return nil, ErrUnknownItemKind
	}
	var blocks []models.AvailabilityBlock
	err := s.DB.
		Where("item_kind = ? AND item_id = ?", kind, itemID).
		Order("start_date").
		Find(&blocks).Error
	return blocks, err
}
