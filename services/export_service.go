// services/export_service.go
package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/access"
	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/pricing"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrUnknownDataset = errors.New("unknown_dataset")
	ErrUnknownFormat  = errors.New("unknown_format")
)

// ExportService serializes scope-filtered rows to CSV/XLSX/PDF. The
// scope is the same value the dashboard lists run under, so what an
// admin can export never diverges from what they can see.
type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (s *ExportService) Export(dataset, format string, scope access.Scope) (*ExportFile, error) {
	headers, rows, err := s.tableFor(dataset, scope)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("2006-01-02")

	switch format {
	case "csv":
		data, err := csvBytes(headers, rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-export-%s.csv", dataset, stamp),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	case "xlsx":
		data, err := xlsxBytes(dataset, headers, rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-export-%s.xlsx", dataset, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case "pdf":
		data, err := pdfBytes(fmt.Sprintf("%s export - %s", dataset, stamp), headers, rows)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-export-%s.pdf", dataset, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}
	return nil, ErrUnknownFormat
}

func (s *ExportService) tableFor(dataset string, scope access.Scope) ([]string, [][]string, error) {
	switch dataset {
	case "cars":
		var cars []models.Car
		if err := s.DB.Scopes(scope.Apply).Find(&cars).Error; err != nil {
			return nil, nil, err
		}
		headers, rows := carTable(cars)
		return headers, rows, nil
	case "tours":
		var tours []models.Tour
		if err := s.DB.Scopes(scope.Apply).Find(&tours).Error; err != nil {
			return nil, nil, err
		}
		headers, rows := tourTable(tours)
		return headers, rows, nil
	case "attractions":
		var attractions []models.Attraction
		if err := s.DB.Scopes(scope.Apply).Find(&attractions).Error; err != nil {
			return nil, nil, err
		}
		headers, rows := attractionTable(attractions)
		return headers, rows, nil
	case "bookings":
		var bookings []models.Booking
		if err := s.DB.Scopes(scope.Apply).Find(&bookings).Error; err != nil {
			return nil, nil, err
		}
		headers, rows := bookingTable(bookings)
		return headers, rows, nil
	}
	return nil, nil, ErrUnknownDataset
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func carTable(cars []models.Car) ([]string, [][]string) {
	headers := []string{"id", "name", "brand", "model", "year", "type", "location", "daily_rate", "available", "user_id"}
	rows := make([][]string, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, []string{
			strconv.Itoa(int(c.ID)), c.Name, c.Brand, c.CarModel, strconv.Itoa(c.Year),
			c.Type, c.Location, money(c.DailyRate), strconv.FormatBool(c.Available), c.UserID,
		})
	}
	return headers, rows
}

func tourTable(tours []models.Tour) ([]string, [][]string) {
	headers := []string{"id", "name", "location", "duration_days", "price", "max_people", "available", "user_id"}
	rows := make([][]string, 0, len(tours))
	for _, t := range tours {
		rows = append(rows, []string{
			strconv.Itoa(int(t.ID)), t.Name, t.Location, strconv.Itoa(t.DurationDays),
			money(t.Price), strconv.Itoa(t.MaxPeople), strconv.FormatBool(t.Available), t.UserID,
		})
	}
	return headers, rows
}

func attractionTable(attractions []models.Attraction) ([]string, [][]string) {
	headers := []string{"id", "name", "location", "price", "open_hours", "available", "user_id"}
	rows := make([][]string, 0, len(attractions))
	for _, a := range attractions {
		rows = append(rows, []string{
			strconv.Itoa(int(a.ID)), a.Name, a.Location, money(a.Price),
			a.OpenHours, strconv.FormatBool(a.Available), a.UserID,
		})
	}
	return headers, rows
}

func bookingTable(bookings []models.Booking) ([]string, [][]string) {
	headers := []string{
		"id", "reference_code", "item_kind", "item_id", "customer_name", "customer_email",
		"start_date", "end_date", "pickup_location", "dropoff_location",
		"days", "total_amount", "payment_status", "user_id",
	}
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		owner := ""
		if b.UserID != nil {
			owner = *b.UserID
		}
		rows = append(rows, []string{
			strconv.Itoa(int(b.ID)), b.ReferenceCode, b.ItemKind, strconv.Itoa(int(b.ItemID)),
			b.CustomerName, b.CustomerEmail,
			b.StartDate.Format(pricing.DateLayout), b.EndDate.Format(pricing.DateLayout),
			b.PickupLocation, b.DropoffLocation,
			strconv.Itoa(b.Days), money(b.TotalAmount), b.PaymentStatus, owner,
		})
	}
	return headers, rows
}

func csvBytes(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func xlsxBytes(sheet string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfBytes(title string, headers []string, rows [][]string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	usable := 277.0 // A4 landscape minus default margins
	colW := usable / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 8)
	for _, h := range headers {
		pdf.CellFormat(colW, 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		for _, cell := range row {
			if len(cell) > 40 {
				cell = cell[:37] + "..."
			}
			pdf.CellFormat(colW, 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
