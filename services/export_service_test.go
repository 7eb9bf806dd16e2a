package services

import (
	"strings"
	"testing"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/models"

	"github.com/stretchr/testify/require"
)

func sampleBookings(t *testing.T) []models.Booking {
	t.Helper()
	owner := "user-1"
	return []models.Booking{
		{
			ID:             7,
			UserID:         &owner,
			ItemKind:       models.ItemKindCar,
			ItemID:         3,
			ReferenceCode:  "WU-AAAA1111",
			CustomerName:   "Jane Doe",
			CustomerEmail:  "jane@example.com",
			StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			PickupLocation: "Port Louis",
			Days:           3,
			TotalAmount:    150,
			PaymentStatus:  models.PaymentPending,
		},
		{
			ID:            8,
			ItemKind:      models.ItemKindTour,
			ItemID:        1,
			ReferenceCode: "WU-BBBB2222",
			CustomerName:  "Guest, \"The\" Visitor",
			StartDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			Days:          1,
			TotalAmount:   99.5,
			PaymentStatus: models.PaymentPaid,
		},
	}
}

func TestBookingTable(t *testing.T) {
	headers, rows := bookingTable(sampleBookings(t))
	require.Len(t, rows, 2)
	require.Equal(t, len(headers), len(rows[0]))

	first := rows[0]
	require.Contains(t, first, "WU-AAAA1111")
	require.Contains(t, first, "2024-01-01")
	require.Contains(t, first, "2024-01-04")
	require.Contains(t, first, "150")
	require.Contains(t, first, "user-1")

	// guest booking has an empty owner column
	second := rows[1]
	require.Equal(t, "", second[len(second)-1])
	require.Contains(t, second, "99.5")
}

func TestCSVBytes(t *testing.T) {
	headers, rows := bookingTable(sampleBookings(t))
	data, err := csvBytes(headers, rows)
	require.NoError(t, err)

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3) // header + 2 rows
	require.True(t, strings.HasPrefix(lines[0], "id,reference_code,"))
	// quotes inside a field must be escaped, not break the row
	require.Contains(t, out, `"Guest, ""The"" Visitor"`)
}

func TestXLSXBytes(t *testing.T) {
	headers, rows := bookingTable(sampleBookings(t))
	data, err := xlsxBytes("bookings", headers, rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// xlsx files are zip archives
	require.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestPDFBytes(t *testing.T) {
	headers, rows := bookingTable(sampleBookings(t))
	data, err := pdfBytes("bookings export - 2024-01-01", headers, rows)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestCarTableShape(t *testing.T) {
	headers, rows := carTable([]models.Car{{
		Name: "Swift Compact", Brand: "Suzuki", CarModel: "Swift",
		Year: 2022, Type: "Hatchback", Location: "Port Louis",
		DailyRate: 45.5, Available: true, UserID: "agent-1",
	}})
	require.Len(t, rows, 1)
	require.Equal(t, len(headers), len(rows[0]))
	require.Contains(t, rows[0], "45.5")
	require.Contains(t, rows[0], "true")
}
