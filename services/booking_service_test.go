package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/pricing"
)

func day(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

// Date validation happens before any table access, so a zero-value
// service is enough here.
func TestCreateBooking_RejectsBadDates(t *testing.T) {
	s := &BookingService{}

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2024-01-04", "2024-01-01"},
		{"equal dates", "2024-01-04", "2024-01-04"},
		{"unparseable start", "tomorrow", "2024-01-04"},
		{"unparseable end", "2024-01-01", "04/01/2024"},
	}
	for _, c := range cases {
		_, err := s.CreateBooking(CreateBookingInput{
			ItemKind:  models.ItemKindCar,
			ItemID:    1,
			StartDate: c.start,
			EndDate:   c.end,
		})
		if !errors.Is(err, pricing.ErrInvalidDateRange) {
			t.Fatalf("%s: got %v; want ErrInvalidDateRange", c.name, err)
		}
	}
}

func TestCreateBooking_RejectsUnknownKind(t *testing.T) {
	s := &BookingService{}
	_, err := s.CreateBooking(CreateBookingInput{
		ItemKind:  "boat",
		ItemID:    1,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-04",
	})
	if !errors.Is(err, ErrUnknownItemKind) {
		t.Fatalf("got %v; want ErrUnknownItemKind", err)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aStart, aEnd           string
		bStart, bEnd           string
		want                   bool
	}{
		{"jan 1-5 vs jan 3-7", "2024-01-01", "2024-01-05", "2024-01-03", "2024-01-07", true},
		{"contained", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-05", true},
		{"identical", "2024-01-01", "2024-01-05", "2024-01-01", "2024-01-05", true},
		{"back to back", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-08", false},
		{"disjoint", "2024-01-01", "2024-01-05", "2024-02-01", "2024-02-05", false},
	}
	for _, c := range cases {
		got := overlaps(day(t, c.aStart), day(t, c.aEnd), day(t, c.bStart), day(t, c.bEnd))
		if got != c.want {
			t.Fatalf("%s: overlaps=%v; want %v", c.name, got, c.want)
		}
		// symmetric
		if overlaps(day(t, c.bStart), day(t, c.bEnd), day(t, c.aStart), day(t, c.aEnd)) != c.want {
			t.Fatalf("%s: overlap check is not symmetric", c.name)
		}
	}
}

// fakePaymentStore backs the payment flow tests with in-memory rows.
type fakePaymentStore struct {
	booking *models.Booking
	attempt *models.PaymentAttempt
	blocks  []models.AvailabilityBlock

	itemLocked  bool
	lockItemErr error
}

func (f *fakePaymentStore) GetBooking(id uint) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakePaymentStore) CreateAttempt(attempt *models.PaymentAttempt) error {
	attempt.ID = 1
	f.attempt = attempt
	return nil
}

func (f *fakePaymentStore) LockAttempt(id uint) (*models.PaymentAttempt, error) {
	if f.attempt == nil || f.attempt.ID != id {
		return nil, ErrAttemptNotFound
	}
	return f.attempt, nil
}

func (f *fakePaymentStore) LockBooking(id uint) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakePaymentStore) LockItem(kind string, itemID uint) error {
	if f.lockItemErr != nil {
		return f.lockItemErr
	}
	f.itemLocked = true
	return nil
}

func (f *fakePaymentStore) HasOverlap(kind string, itemID uint, start, end time.Time) (bool, error) {
	for _, b := range f.blocks {
		if b.ItemKind == kind && b.ItemID == itemID && overlaps(start, end, b.StartDate, b.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentStore) UpdateAttempt(id uint, updates map[string]interface{}) error {
	if f.attempt == nil || f.attempt.ID != id {
		return ErrAttemptNotFound
	}
	if v, ok := updates["status"].(string); ok {
		f.attempt.Status = v
	}
	if v, ok := updates["tx_ref"].(string); ok {
		f.attempt.TxRef = v
	}
	return nil
}

func (f *fakePaymentStore) MarkBookingPaid(id uint) error {
	if f.booking == nil || f.booking.ID != id {
		return ErrBookingNotFound
	}
	f.booking.PaymentStatus = models.PaymentPaid
	return nil
}

func (f *fakePaymentStore) CreateBlock(block *models.AvailabilityBlock) error {
	f.blocks = append(f.blocks, *block)
	return nil
}

func pendingCarBooking(t *testing.T) *models.Booking {
	t.Helper()
	return &models.Booking{
		ID:            9,
		ItemKind:      models.ItemKindCar,
		ItemID:        3,
		ReferenceCode: "WU-TEST0001",
		StartDate:     day(t, "2024-01-01"),
		EndDate:       day(t, "2024-01-05"),
		Days:          4,
		TotalAmount:   200,
		PaymentStatus: models.PaymentPending,
	}
}

func TestInitiatePayment_AmountFromBooking(t *testing.T) {
	st := &fakePaymentStore{booking: pendingCarBooking(t)}

	attempt, err := initiatePayment(st, 9, "card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.Amount != 200 {
		t.Fatalf("attempt amount %v; want the booking total 200", attempt.Amount)
	}
	if attempt.Status != models.AttemptInitiated {
		t.Fatalf("attempt status %q; want %q", attempt.Status, models.AttemptInitiated)
	}
	if attempt.BookingID != 9 {
		t.Fatalf("attempt booking id %d; want 9", attempt.BookingID)
	}
}

func TestInitiatePayment_PaidBookingRejected(t *testing.T) {
	booking := pendingCarBooking(t)
	booking.PaymentStatus = models.PaymentPaid
	st := &fakePaymentStore{booking: booking}

	if _, err := initiatePayment(st, 9, "card"); !errors.Is(err, ErrBookingNotPending) {
		t.Fatalf("got %v; want ErrBookingNotPending", err)
	}
}

func TestInitiatePayment_UnknownBooking(t *testing.T) {
	st := &fakePaymentStore{}
	if _, err := initiatePayment(st, 404, "card"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("got %v; want ErrBookingNotFound", err)
	}
}

func TestConfirmPayment_FailureLeavesBookingPending(t *testing.T) {
	st := &fakePaymentStore{
		booking: pendingCarBooking(t),
		attempt: &models.PaymentAttempt{ID: 1, BookingID: 9, Status: models.AttemptInitiated},
	}

	booking, conflict, err := confirmPayment(st, 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Fatal("a failed payment is not a date conflict")
	}
	if booking.PaymentStatus != models.PaymentPending {
		t.Fatalf("booking status %q; want it to stay %q for retry", booking.PaymentStatus, models.PaymentPending)
	}
	if st.attempt.Status != models.AttemptFailed {
		t.Fatalf("attempt status %q; want %q", st.attempt.Status, models.AttemptFailed)
	}
	if len(st.blocks) != 0 {
		t.Fatalf("no availability block may be written on failure, got %d", len(st.blocks))
	}
}

func TestConfirmPayment_SuccessWritesBlockAndPays(t *testing.T) {
	st := &fakePaymentStore{
		booking: pendingCarBooking(t),
		attempt: &models.PaymentAttempt{ID: 1, BookingID: 9, Status: models.AttemptInitiated},
	}

	booking, conflict, err := confirmPayment(st, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Fatal("unexpected conflict")
	}
	if booking.PaymentStatus != models.PaymentPaid {
		t.Fatalf("booking status %q; want %q", booking.PaymentStatus, models.PaymentPaid)
	}
	if !st.itemLocked {
		t.Fatal("the item row must be locked before the overlap re-check")
	}
	if st.attempt.Status != models.AttemptSuccess || st.attempt.TxRef == "" {
		t.Fatalf("attempt %+v; want success with a tx ref", st.attempt)
	}
	if len(st.blocks) != 1 {
		t.Fatalf("got %d blocks; want exactly 1", len(st.blocks))
	}
	block := st.blocks[0]
	if block.BookingID != 9 || block.ItemKind != models.ItemKindCar || block.ItemID != 3 {
		t.Fatalf("block %+v; want it to reference booking 9 / car 3", block)
	}
	if !block.StartDate.Equal(day(t, "2024-01-01")) || !block.EndDate.Equal(day(t, "2024-01-05")) {
		t.Fatalf("block dates %v..%v; want the booking's dates", block.StartDate, block.EndDate)
	}
}

func TestConfirmPayment_SettledAttemptRejected(t *testing.T) {
	for _, status := range []string{models.AttemptSuccess, models.AttemptFailed} {
		st := &fakePaymentStore{
			booking: pendingCarBooking(t),
			attempt: &models.PaymentAttempt{ID: 1, BookingID: 9, Status: status},
		}
		if _, _, err := confirmPayment(st, 1, true); !errors.Is(err, ErrAttemptSettled) {
			t.Fatalf("status %q: got %v; want ErrAttemptSettled", status, err)
		}
	}
}

func TestConfirmPayment_ConflictingBlockAtConfirm(t *testing.T) {
	// another booking for the same car got paid first and claimed
	// overlapping dates
	st := &fakePaymentStore{
		booking: pendingCarBooking(t),
		attempt: &models.PaymentAttempt{ID: 1, BookingID: 9, Status: models.AttemptInitiated},
		blocks: []models.AvailabilityBlock{{
			ItemKind:  models.ItemKindCar,
			ItemID:    3,
			BookingID: 8,
			StartDate: day(t, "2024-01-03"),
			EndDate:   day(t, "2024-01-07"),
		}},
	}

	booking, conflict, err := confirmPayment(st, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conflict {
		t.Fatal("overlapping block must be reported as a conflict")
	}
	if booking.PaymentStatus != models.PaymentPending {
		t.Fatalf("booking status %q; want it to stay %q", booking.PaymentStatus, models.PaymentPending)
	}
	if st.attempt.Status != models.AttemptFailed {
		t.Fatalf("attempt status %q; want %q", st.attempt.Status, models.AttemptFailed)
	}
	if len(st.blocks) != 1 {
		t.Fatalf("the losing confirmation must not add a block, got %d", len(st.blocks))
	}
}

func TestConfirmPayment_ItemLockFailureAborts(t *testing.T) {
	st := &fakePaymentStore{
		booking:     pendingCarBooking(t),
		attempt:     &models.PaymentAttempt{ID: 1, BookingID: 9, Status: models.AttemptInitiated},
		lockItemErr: ErrItemNotFound,
	}

	if _, _, err := confirmPayment(st, 1, true); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v; want ErrItemNotFound", err)
	}
	if st.booking.PaymentStatus != models.PaymentPending {
		t.Fatal("booking must not be paid when the item lock fails")
	}
	if len(st.blocks) != 0 {
		t.Fatal("no block may be written when the item lock fails")
	}
}

func TestValidItemKind(t *testing.T) {
	for _, kind := range []string{models.ItemKindCar, models.ItemKindTour, models.ItemKindAttraction} {
		if !validItemKind(kind) {
			t.Fatalf("%q must be a valid kind", kind)
		}
	}
	for _, kind := range []string{"", "boat", "CAR"} {
		if validItemKind(kind) {
			t.Fatalf("%q must not be a valid kind", kind)
		}
	}
}
