package models

// TeachingSession is the approved, schedulable instance of a booking,
// bound 1:1 and carrying live-meeting metadata filled in by external
// meeting-creation collaborators.
type TeachingSession struct {
	ID              int64  `json:"id"`
	BookingID       int64  `json:"booking_id"`
	StudentID       int64  `json:"student_id"`
	TeacherID       int64  `json:"teacher_id"`
	SubjectID       int64  `json:"subject_id"`
	SessionDate     string `json:"session_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	MeetingPlatform string `json:"meeting_platform"` // zoom / google_meet
	MeetingLink     string `json:"meeting_link"`
	MeetingID       string `json:"meeting_id"`
	MeetingPassword string `json:"meeting_password"`
	ReminderSentAt  string `json:"reminder_sent_at"`
	CreatedAt       string `json:"created_at"`
}

// MeetingUpdate patches meeting metadata on a session.
type MeetingUpdate struct {
	Platform *string
	Link     *string
	ID       *string
	Password *string
}
