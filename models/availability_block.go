package models

import "time"

// AvailabilityBlock marks a date range on an item as non-bookable.
// Rows are written only inside the payment-success transaction, so a
// block always belongs to a paid booking.
type AvailabilityBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`

	ItemKind  string `gorm:"column:item_kind;size:16;index:idx_block_item" json:"item_kind"`
	ItemID    uint   `gorm:"column:item_id;index:idx_block_item" json:"item_id"`
	BookingID uint   `gorm:"column:booking_id;index" json:"booking_id"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`
}
