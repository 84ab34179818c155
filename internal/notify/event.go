package notify

import "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"

// EventType is a logical notification event. The persisted record's
// "type" column and the broadcast routing key both carry this value.
type EventType string

const (
	AccountDeleted     EventType = "account_deleted"
	AccountSuspended   EventType = "account_suspended"
	AccountUnsuspended EventType = "account_unsuspended"

	BookingCreated     EventType = "booking_created"
	BookingApproved    EventType = "booking_approved"
	BookingCancelled   EventType = "booking_cancelled"
	BookingRescheduled EventType = "booking_rescheduled"
	BookingReassigned  EventType = "booking_reassigned"

	DocumentUploaded EventType = "document_uploaded"
	DocumentVerified EventType = "document_verified"
	DocumentRejected EventType = "document_rejected"

	MessageReceived     EventType = "message_received"
	PaystackRestriction EventType = "paystack_restriction"

	PayoutProcessed EventType = "payout_processed"
	PayoutSMS       EventType = "payout_sms"

	SessionReminder EventType = "session_reminder"
	SessionRequest  EventType = "session_request"

	SystemNotification EventType = "system_notification"

	VerificationApproved      EventType = "verification_approved"
	VerificationRejected      EventType = "verification_rejected"
	VerificationCallScheduled EventType = "verification_call_scheduled"
	VerificationCallStarted   EventType = "verification_call_started"
	VerificationCallCompleted EventType = "verification_call_completed"
)

// Variants for booking_reassigned; other events key content by role.
const (
	VariantAssigned = "assigned"
	VariantRemoved  = "removed"
	VariantStudent  = "student"
)

// Recipient is one delivery target. Variant overrides the role-keyed
// content lookup when set (reassignment audiences).
type Recipient struct {
	UserID  int64
	Role    string
	Variant string
	Name    string
	Email   string
	Phone   string
}

// Event is constructed per dispatch and never persisted itself; the
// persisted record is a side effect of the database channel.
type Event struct {
	Type       EventType
	Recipients []Recipient

	Booking     *models.Booking
	Session     *models.TeachingSession
	Document    *models.Document
	Payout      *models.PayoutRequest
	SubjectName string

	// Reschedule diff, captured before the booking row is mutated.
	OldDate string
	OldTime string

	// Freeform pair for message_received / system_notification.
	Title   string
	Message string

	TeacherName string
	StudentName string
}
