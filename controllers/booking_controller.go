// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/pricing"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	ItemKind string `json:"item_kind" binding:"required"`
	ItemID   uint   `json:"item_id" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`

	StartDate string `json:"start_date" binding:"required,dateonly"`
	EndDate   string `json:"end_date" binding:"required,dateonly"`

	PickupLocation  string `json:"pickup_location" binding:"required"`
	DropoffLocation string `json:"dropoff_location"`
	SpecialRequests string `json:"special_requests"`
}

type QuoteRequest struct {
	StartDate string  `json:"start_date" binding:"required,dateonly"`
	EndDate   string  `json:"end_date" binding:"required,dateonly"`
	DailyRate float64 `json:"daily_rate" binding:"required"`
}

// RegisterBookingValidations wires the date-only format check into
// gin's validator engine. Call once at router setup.
func RegisterBookingValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(pricing.DateLayout, fl.Field().String())
			return err == nil
		})
	}
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
	ProfileSvc *services.ProfileService
}

func NewBookingController(bookingSvc *services.BookingService, profileSvc *services.ProfileService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, ProfileSvc: profileSvc}
}

func bookingErrStatus(err error) (int, string) {
	switch {
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return http.StatusBadRequest, "invalid date range: return date must be after pickup date"
	case errors.Is(err, pricing.ErrInvalidRate):
		return http.StatusUnprocessableEntity, "item has no valid daily rate"
	case errors.Is(err, services.ErrUnknownItemKind):
		return http.StatusBadRequest, "item kind must be car, tour or attraction"
	case errors.Is(err, services.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, services.ErrItemUnavailable):
		return http.StatusConflict, "item is not available for booking"
	case errors.Is(err, services.ErrDateRangeConflict):
		return http.StatusConflict, "item is already booked for these dates"
	case errors.Is(err, services.ErrBookingNotFound):
		return http.StatusNotFound, "booking not found"
	}
	return http.StatusInternalServerError, "something went wrong"
}

// POST /api/bookings — guests allowed, owner stamped when logged in.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	var userID *string
	if uid, ok := middleware.UserID(c); ok {
		userID = &uid
	}

	booking, err := bc.BookingSvc.CreateBooking(services.CreateBookingInput{
		UserID:          userID,
		ItemKind:        strings.ToLower(strings.TrimSpace(req.ItemKind)),
		ItemID:          req.ItemID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PickupLocation:  strings.TrimSpace(req.PickupLocation),
		DropoffLocation: strings.TrimSpace(req.DropoffLocation),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	})
	if err != nil {
		status, msg := bookingErrStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("❌ CreateBooking: %v", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings — dashboard list under the caller's scope.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	scope := bc.ProfileSvc.ResolveScope(userID)
	bookings, err := bc.BookingSvc.ListScoped(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id — owner, superuser, or matching guest email.
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	booking, err := bc.BookingSvc.GetByID(uint(id))
	if err != nil {
		status, msg := bookingErrStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if uid, ok := middleware.UserID(c); ok {
		scope := bc.ProfileSvc.ResolveScope(uid)
		if scope.All || (booking.UserID != nil && scope.Allows(*booking.UserID)) {
			c.JSON(http.StatusOK, booking)
			return
		}
	}

	// guest lookup by reference + email
	email := strings.TrimSpace(c.Query("email"))
	if email != "" && strings.EqualFold(email, booking.CustomerEmail) {
		c.JSON(http.StatusOK, booking)
		return
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
}

// POST /api/quote — stateless price preview for the booking form.
func (bc *BookingController) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	quote, err := pricing.ComputeStrings(req.StartDate, req.EndDate, req.DailyRate)
	if err != nil {
		status, msg := bookingErrStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GET /api/availability/:kind/:id — public blocked ranges for an item.
func (bc *BookingController) GetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	blocks, err := bc.BookingSvc.BlocksForItem(strings.ToLower(c.Param("kind")), uint(id))
	if err != nil {
		status, msg := bookingErrStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, blocks)
}
