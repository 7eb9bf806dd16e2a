package pricing

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

func TestCompute_ThreeDays(t *testing.T) {
	q, err := Compute(date(t, "2024-01-01"), date(t, "2024-01-04"), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Days != 3 || q.Total != 150 {
		t.Fatalf("got %+v; want days=3 total=150", q)
	}
}

func TestCompute_SingleDayFractionalRate(t *testing.T) {
	q, err := Compute(date(t, "2024-03-10"), date(t, "2024-03-11"), 99.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Days != 1 || q.Total != 99.5 {
		t.Fatalf("got %+v; want days=1 total=99.5", q)
	}
}

func TestCompute_PartialDayRoundsUp(t *testing.T) {
	start := date(t, "2024-05-01")
	end := start.Add(30 * time.Hour)
	q, err := Compute(start, end, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Days != 2 || q.Total != 80 {
		t.Fatalf("got %+v; want days=2 total=80", q)
	}
}

func TestCompute_EqualDates(t *testing.T) {
	d := date(t, "2024-06-15")
	if _, err := Compute(d, d, 50); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("got %v; want ErrInvalidDateRange", err)
	}
}

func TestCompute_EndBeforeStart(t *testing.T) {
	_, err := Compute(date(t, "2024-01-04"), date(t, "2024-01-01"), 50)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("got %v; want ErrInvalidDateRange", err)
	}
}

func TestCompute_BadRate(t *testing.T) {
	start, end := date(t, "2024-01-01"), date(t, "2024-01-02")
	for _, rate := range []float64{0, -10} {
		if _, err := Compute(start, end, rate); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("rate=%v: got %v; want ErrInvalidRate", rate, err)
		}
	}
}

func TestCompute_TotalIsExactMultiple(t *testing.T) {
	cases := []struct {
		start, end string
		rate       float64
	}{
		{"2024-01-01", "2024-01-08", 35},
		{"2024-02-10", "2024-02-12", 120.25},
		{"2024-07-01", "2024-07-31", 19.99},
	}
	for _, c := range cases {
		q, err := Compute(date(t, c.start), date(t, c.end), c.rate)
		if err != nil {
			t.Fatalf("%s..%s: unexpected error: %v", c.start, c.end, err)
		}
		if q.Days < 1 {
			t.Fatalf("%s..%s: days=%d; want >= 1", c.start, c.end, q.Days)
		}
		if q.Total != float64(q.Days)*c.rate {
			t.Fatalf("%s..%s: total=%v; want %v", c.start, c.end, q.Total, float64(q.Days)*c.rate)
		}
	}
}

func TestComputeStrings(t *testing.T) {
	q, err := ComputeStrings("2024-01-01", "2024-01-04", 50)
	if err != nil || q.Days != 3 || q.Total != 150 {
		t.Fatalf("got %+v err=%v; want days=3 total=150 nil", q, err)
	}

	if _, err := ComputeStrings("not-a-date", "2024-01-04", 50); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("got %v; want ErrInvalidDateRange for unparseable start", err)
	}
	if _, err := ComputeStrings("2024-01-01", "01/04/2024", 50); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("got %v; want ErrInvalidDateRange for unparseable end", err)
	}
}
