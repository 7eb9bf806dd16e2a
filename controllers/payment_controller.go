package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
)

// PaymentController drives the mock payment gateway: initiate opens an
// attempt, confirm settles it. A failed attempt leaves the booking
// pending so the customer can retry.
type PaymentController struct {
	BookingSvc *services.BookingService
}

func NewPaymentController(bookingSvc *services.BookingService) *PaymentController {
	return &PaymentController{BookingSvc: bookingSvc}
}

type initiatePaymentPayload struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Method    string `json:"method"` // card | paypal
}

type confirmPaymentPayload struct {
	Outcome string `json:"outcome"` // success (default) | failure
}

// POST /api/payments/initiate
func (pc *PaymentController) Initiate(c *gin.Context) {
	var payload initiatePaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment data"})
		return
	}

	method := strings.ToLower(strings.TrimSpace(payload.Method))
	if method == "" {
		method = "card"
	}
	if method != "card" && method != "paypal" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "method must be card or paypal"})
		return
	}

	attempt, err := pc.BookingSvc.InitiatePayment(payload.BookingID, method)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, services.ErrBookingNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "booking is already paid"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate payment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Payment initiated",
		"payment_id":    attempt.ID,
		"amount":        attempt.Amount,
		"method":        attempt.Method,
		"mock_redirect": fmt.Sprintf("/api/payments/%s/confirm", strconv.Itoa(int(attempt.ID))),
	})
}

// POST /api/payments/:id/confirm — simulates the gateway webhook.
func (pc *PaymentController) Confirm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload confirmPaymentPayload
	_ = c.ShouldBindJSON(&payload) // empty body means success
	succeed := payload.Outcome == "" || strings.EqualFold(payload.Outcome, "success")

	booking, err := pc.BookingSvc.ConfirmPayment(uint(id), succeed)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAttemptNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		case errors.Is(err, services.ErrAttemptSettled):
			c.JSON(http.StatusConflict, gin.H{"error": "payment already settled"})
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, services.ErrBookingNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "booking is already paid"})
		case errors.Is(err, services.ErrDateRangeConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "item was booked for these dates while payment was pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm payment"})
		}
		return
	}

	if !succeed {
		c.JSON(http.StatusOK, gin.H{
			"message": "Payment failed (mock); booking remains pending, retry allowed",
			"status":  models.PaymentPending,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Payment successful (mock)",
		"booking":   booking.ID,
		"reference": booking.ReferenceCode,
		"status":    booking.PaymentStatus,
		"amount":    booking.TotalAmount,
	})
}
