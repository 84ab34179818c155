package models

// HourlyRate is a teacher's per-currency hourly rate. Zero means unset;
// a teacher with both rates zero is excluded from earnings aggregation.
type HourlyRate struct {
	TeacherID int64   `json:"teacher_id"`
	RateUSD   float64 `json:"rate_usd"`
	RateNGN   float64 `json:"rate_ngn"`
	UpdatedAt string  `json:"updated_at"`
}

// Unset reports whether the teacher has no usable rate in any currency.
func (r HourlyRate) Unset() bool {
	return r.RateUSD == 0 && r.RateNGN == 0
}
