// Package pricing computes rental duration and total cost from a
// pickup/return date pair and a per-day rate. Pure computation, no I/O.
package pricing

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidRate      = errors.New("invalid daily rate")
)

// DateLayout is the wire format booking forms submit.
const DateLayout = "2006-01-02"

type Quote struct {
	Days  int     `json:"days"`
	Total float64 `json:"total"`
}

// Compute returns the number of chargeable days and the total amount.
// A zero-duration booking (start == end) is invalid: date-only inputs
// from a form can coincide, and that must not quote as free.
func Compute(start, end time.Time, dailyRate float64) (Quote, error) {
	if dailyRate <= 0 {
		return Quote{}, ErrInvalidRate
	}
	if !end.After(start) {
		return Quote{}, ErrInvalidDateRange
	}

	msPerDay := float64((24 * time.Hour).Milliseconds())
	days := int(math.Ceil(float64(end.Sub(start).Milliseconds()) / msPerDay))
	if days < 1 {
		days = 1
	}

	return Quote{Days: days, Total: float64(days) * dailyRate}, nil
}

// ComputeStrings parses DateLayout inputs and quotes them. Unparseable
// dates count as an invalid range.
func ComputeStrings(start, end string, dailyRate float64) (Quote, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Quote{}, ErrInvalidDateRange
	}
	e, err := ParseDate(end)
	if err != nil {
		return Quote{}, ErrInvalidDateRange
	}
	return Compute(s, e, dailyRate)
}

func ParseDate(v string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(v))
}
