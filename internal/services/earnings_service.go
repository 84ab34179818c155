package services

import (
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/earnings"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// EarningsService produces the teacher's upcoming-earnings view.
type EarningsService struct {
	RateRepo    repositories.RateRepository
	SessionRepo repositories.SessionRepository
	RequestID   string
}

// UpcomingEarnings is the aggregation response, with pre-formatted
// totals for the UI.
type UpcomingEarnings struct {
	TeacherID    int64                    `json:"teacher_id"`
	Entries      []earnings.UpcomingEntry `json:"entries"`
	TotalUSD     float64                  `json:"total_usd"`
	TotalNGN     float64                  `json:"total_ngn"`
	DisplayUSD   string                   `json:"display_usd"`
	DisplayNGN   string                   `json:"display_ngn"`
}

// Upcoming aggregates earnings for future sessions. Teachers without a
// rate in any currency get an empty entry list rather than zero-value
// rows.
func (s EarningsService) Upcoming(teacherID int64) (UpcomingEarnings, error) {
	out := UpcomingEarnings{TeacherID: teacherID}

	rate, err := s.RateRepo.Get(teacherID)
	if err != nil {
		return out, err
	}
	if rate.Unset() {
		out.Entries = []earnings.UpcomingEntry{}
		return out, nil
	}

	sessions, err := s.SessionRepo.ListUpcomingByTeacher(teacherID)
	if err != nil {
		return out, err
	}

	out.Entries = earnings.Aggregate(s.RequestID, rate, sessions)
	out.TotalUSD, out.TotalNGN = earnings.Total(out.Entries)
	out.DisplayUSD = utils.FormatAmount(out.TotalUSD, "USD")
	out.DisplayNGN = utils.FormatAmount(out.TotalNGN, "NGN")
	return out, nil
}
