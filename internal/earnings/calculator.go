package earnings

import (
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// Earning is the computed value of one session across the configured
// currencies.
type Earning struct {
	AmountUSD     float64 `json:"amount_usd"`
	AmountNGN     float64 `json:"amount_ngn"`
	DurationHours float64 `json:"duration_hours"`
}

// Compute derives earnings from hourly rates and a session time window.
// Duration is fractional hours; a 90 minute session earns 1.5x the rate,
// not 1x. Zero rates yield zero amounts, never an error.
func Compute(rateUSD, rateNGN float64, startTime, endTime string) (Earning, error) {
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return Earning{}, domain.ValidationError{Field: "start_time", Msg: "invalid time", Err: err}
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return Earning{}, domain.ValidationError{Field: "end_time", Msg: "invalid time", Err: err}
	}
	if !end.After(start) {
		return Earning{}, domain.ValidationError{Field: "end_time", Msg: "must be after start_time"}
	}

	hours := end.Sub(start).Hours()
	return Earning{
		AmountUSD:     rateUSD * hours,
		AmountNGN:     rateNGN * hours,
		DurationHours: hours,
	}, nil
}

// UpcomingEntry is one row in a teacher's upcoming-earnings view.
type UpcomingEntry struct {
	SessionID   int64   `json:"session_id"`
	BookingID   int64   `json:"booking_id"`
	SessionDate string  `json:"session_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Earning     Earning `json:"earning"`
}

// Aggregate builds upcoming-earnings entries for one teacher. Teachers
// with no rate in any currency produce no entries at all, so the UI
// never shows a misleading zero-value row. A session with a bad time
// window is skipped and logged rather than hiding every other entry.
func Aggregate(requestID string, rate models.HourlyRate, sessions []models.TeachingSession) []UpcomingEntry {
	if rate.Unset() {
		return nil
	}

	entries := make([]UpcomingEntry, 0, len(sessions))
	for _, s := range sessions {
		e, err := Compute(rate.RateUSD, rate.RateNGN, s.StartTime, s.EndTime)
		if err != nil {
			utils.LogEvent(requestID, "earnings", "aggregate",
				"skipping session "+utils.TrimOrEmpty(s.SessionDate)+": "+err.Error())
			continue
		}
		entries = append(entries, UpcomingEntry{
			SessionID:   s.ID,
			BookingID:   s.BookingID,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Earning:     e,
		})
	}
	return entries
}

// Total sums entry amounts per currency.
func Total(entries []UpcomingEntry) (usd, ngn float64) {
	for _, e := range entries {
		usd += e.Earning.AmountUSD
		ngn += e.Earning.AmountNGN
	}
	return usd, ngn
}
