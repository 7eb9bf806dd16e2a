package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment status values for a booking. The only transition is
// pending -> paid; a failed payment attempt leaves the booking pending
// so the customer can retry.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Bookable item kinds.
const (
	ItemKindCar        = "car"
	ItemKindTour       = "tour"
	ItemKindAttraction = "attraction"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Nullable: guest bookings carry no owner and are visible to
	// superusers only.
	UserID *string `gorm:"column:user_id;size:36;index" json:"user_id,omitempty"`

	ItemKind string `gorm:"column:item_kind;size:16;index:idx_booking_item" json:"item_kind"`
	ItemID   uint   `gorm:"column:item_id;index:idx_booking_item" json:"item_id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	CustomerName  string `gorm:"column:customer_name;size:255" json:"customer_name"`
	CustomerEmail string `gorm:"column:customer_email;size:255;index" json:"customer_email"`
	CustomerPhone string `gorm:"column:customer_phone;size:50" json:"customer_phone"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	PickupLocation  string `gorm:"column:pickup_location;size:255" json:"pickup_location"`
	DropoffLocation string `gorm:"column:dropoff_location;size:255" json:"dropoff_location,omitempty"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	// Derived by the pricing engine on create, never client-set.
	Days        int     `gorm:"column:days" json:"days"`
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`

	PaymentStatus string `gorm:"column:payment_status;size:16;default:pending" json:"payment_status"`
}
