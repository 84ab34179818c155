package earnings

import (
	"math"
	"testing"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

const tolerance = 1e-9

func TestComputeOneHourSession(t *testing.T) {
	e, err := Compute(0, 2000, "10:00", "11:00")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(e.AmountNGN-2000) > tolerance {
		t.Fatalf("amount ngn = %v, want 2000", e.AmountNGN)
	}
	if math.Abs(e.DurationHours-1) > tolerance {
		t.Fatalf("duration = %v, want 1", e.DurationHours)
	}
}

func TestComputeFractionalHours(t *testing.T) {
	// 90 minutes must earn 1.5x the rate, not be floored to one hour.
	e, err := Compute(20, 2000, "10:00", "11:30")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(e.DurationHours-1.5) > tolerance {
		t.Fatalf("duration = %v, want 1.5", e.DurationHours)
	}
	if math.Abs(e.AmountUSD-30) > tolerance {
		t.Fatalf("amount usd = %v, want 30", e.AmountUSD)
	}
	if math.Abs(e.AmountNGN-3000) > tolerance {
		t.Fatalf("amount ngn = %v, want 3000", e.AmountNGN)
	}
}

func TestComputeZeroRatesNoError(t *testing.T) {
	e, err := Compute(0, 0, "09:00", "10:00")
	if err != nil {
		t.Fatalf("zero rates should not error, got %v", err)
	}
	if e.AmountUSD != 0 || e.AmountNGN != 0 {
		t.Fatalf("amounts should be zero, got %v / %v", e.AmountUSD, e.AmountNGN)
	}
}

func TestComputeEndBeforeStart(t *testing.T) {
	_, err := Compute(10, 0, "11:00", "10:00")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComputeMalformedTime(t *testing.T) {
	_, err := Compute(10, 0, "ten o'clock", "11:00")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComputeAcceptsSecondsLayout(t *testing.T) {
	e, err := Compute(10, 0, "10:00:00", "11:30:00")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(e.DurationHours-1.5) > tolerance {
		t.Fatalf("duration = %v, want 1.5", e.DurationHours)
	}
}

func TestAggregateExcludesUnsetRates(t *testing.T) {
	sessions := []models.TeachingSession{
		{ID: 1, BookingID: 1, SessionDate: "2026-09-01", StartTime: "10:00", EndTime: "11:00"},
	}
	entries := Aggregate("", models.HourlyRate{TeacherID: 7}, sessions)
	if len(entries) != 0 {
		t.Fatalf("unset rates should produce no entries, got %d", len(entries))
	}
}

func TestAggregateSkipsBadSession(t *testing.T) {
	rate := models.HourlyRate{TeacherID: 7, RateNGN: 2000}
	sessions := []models.TeachingSession{
		{ID: 1, BookingID: 1, SessionDate: "2026-09-01", StartTime: "10:00", EndTime: "11:00"},
		{ID: 2, BookingID: 2, SessionDate: "2026-09-02", StartTime: "bad", EndTime: "11:00"},
		{ID: 3, BookingID: 3, SessionDate: "2026-09-03", StartTime: "14:00", EndTime: "15:30"},
	}
	entries := Aggregate("", rate, sessions)
	if len(entries) != 2 {
		t.Fatalf("bad session should be skipped, got %d entries", len(entries))
	}
	usd, ngn := Total(entries)
	if usd != 0 {
		t.Fatalf("usd total = %v, want 0", usd)
	}
	if math.Abs(ngn-5000) > tolerance {
		t.Fatalf("ngn total = %v, want 5000", ngn)
	}
}
