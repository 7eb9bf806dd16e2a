package models

import "time"

// Payment attempt status values (mock gateway bookkeeping).
const (
	AttemptInitiated = "initiated"
	AttemptSuccess   = "success"
	AttemptFailed    = "failed"
)

type PaymentAttempt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"column:booking_id;index" json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `gorm:"size:20" json:"method"` // card | paypal
	Status    string  `gorm:"size:20;default:initiated" json:"status"`
	TxRef     string  `gorm:"column:tx_ref;size:64" json:"tx_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
