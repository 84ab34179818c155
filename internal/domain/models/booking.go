package models

import "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"

// Booking captures a scheduled tutoring engagement between a student
// and a teacher, pending approval.
type Booking struct {
	ID          int64                `json:"id"`
	UUID        string               `json:"uuid"`
	StudentID   int64                `json:"student_id"`
	TeacherID   int64                `json:"teacher_id"`
	SubjectID   int64                `json:"subject_id"`
	BookingDate string               `json:"booking_date"` // YYYY-MM-DD
	StartTime   string               `json:"start_time"`   // HH:MM
	EndTime     string               `json:"end_time"`     // HH:MM
	Status      domain.BookingStatus `json:"status"`
	Fee         float64              `json:"fee"`
	Currency    string               `json:"currency"`
	Notes       string               `json:"notes"`
	CreatedBy   int64                `json:"created_by"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	BookingDate *string
	StartTime   *string
	EndTime     *string
	Notes       *string
}

// BookingHistory is one audit row per status transition.
type BookingHistory struct {
	ID         int64  `json:"id"`
	BookingID  int64  `json:"booking_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorID    int64  `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	CreatedAt  string `json:"created_at"`
}
