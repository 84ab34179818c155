package models

// Document verification statuses.
const (
	DocumentPending  = "pending"
	DocumentVerified = "verified"
	DocumentRejected = "rejected"
)

// Document is an uploaded credential (certificate, ID) awaiting admin
// verification.
type Document struct {
	ID         int64  `json:"id"`
	TeacherID  int64  `json:"teacher_id"`
	Type       string `json:"type"` // certificate / id_card / cv
	FileName   string `json:"file_name"`
	FilePath   string `json:"file_path"`
	Status     string `json:"status"`
	Reason     string `json:"reason"` // set on rejection
	VerifiedBy int64  `json:"verified_by"`
	CreatedAt  string `json:"created_at"`
	VerifiedAt string `json:"verified_at"`
}

// Verification call statuses for the teacher onboarding interview.
const (
	CallScheduled = "scheduled"
	CallStarted   = "started"
	CallCompleted = "completed"
)

// VerificationRequest tracks a teacher's onboarding verification,
// including the scheduled video call.
type VerificationRequest struct {
	ID          int64  `json:"id"`
	TeacherID   int64  `json:"teacher_id"`
	Status      string `json:"status"` // pending / approved / rejected
	CallStatus  string `json:"call_status"`
	CallDate    string `json:"call_date"`
	CallTime    string `json:"call_time"`
	CallLink    string `json:"call_link"`
	ReviewedBy  int64  `json:"reviewed_by"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"created_at"`
	ReviewedAt  string `json:"reviewed_at"`
}
