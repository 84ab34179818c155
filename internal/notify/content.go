package notify

import (
	"fmt"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/utils"
)

// Content is the rendered per-recipient message descriptor.
type Content struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	ActionText string `json:"action_text"`
	ActionURL  string `json:"action_url"`
}

type contentKey struct {
	event   EventType
	variant string // recipient variant, falling back to role
}

type contentBuilder func(ev Event, rec Recipient) Content

// ContentFor resolves the message variant for a recipient. Lookup order:
// (event, recipient variant), (event, role), (event, ""). Events absent
// from the table fall back to a generic system notification so a
// missing template never blocks delivery.
func ContentFor(ev Event, rec Recipient) Content {
	variant := rec.Variant
	if variant == "" {
		variant = rec.Role
	}
	for _, key := range []contentKey{
		{ev.Type, variant},
		{ev.Type, rec.Role},
		{ev.Type, ""},
	} {
		if build, ok := contentTable[key]; ok {
			return build(ev, rec)
		}
	}
	return Content{
		Title:   ev.Title,
		Message: ev.Message,
	}
}

// subjectName degrades to a label when the subject row is missing, per
// the inbox UI contract.
func subjectName(ev Event) string {
	if utils.TrimOrEmpty(ev.SubjectName) == "" {
		return "Unknown Subject"
	}
	return ev.SubjectName
}

func bookingWhen(ev Event) string {
	if ev.Booking == nil {
		return ""
	}
	return fmt.Sprintf("%s at %s", ev.Booking.BookingDate, ev.Booking.StartTime)
}

func bookingURL(ev Event) string {
	if ev.Booking == nil {
		return "/bookings"
	}
	return fmt.Sprintf("/bookings/%d", ev.Booking.ID)
}

var contentTable = map[contentKey]contentBuilder{
	{BookingCreated, "teacher"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "New Booking Request",
			Message:    fmt.Sprintf("%s has requested a %s session on %s.", ev.StudentName, subjectName(ev), bookingWhen(ev)),
			ActionText: "Review Booking",
			ActionURL:  bookingURL(ev),
		}
	},
	{BookingCreated, "student"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Booking Received",
			Message:    fmt.Sprintf("Your %s booking for %s is awaiting approval.", subjectName(ev), bookingWhen(ev)),
			ActionText: "View Booking",
			ActionURL:  bookingURL(ev),
		}
	},
	{BookingCreated, "admin"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Booking Created",
			Message:    fmt.Sprintf("%s booked %s with %s on %s.", ev.StudentName, subjectName(ev), ev.TeacherName, bookingWhen(ev)),
			ActionText: "Open Booking",
			ActionURL:  bookingURL(ev),
		}
	},

	{BookingApproved, "teacher"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Booking Approved",
			Message:    fmt.Sprintf("Your %s session with %s on %s is confirmed.", subjectName(ev), ev.StudentName, bookingWhen(ev)),
			ActionText: "View Session",
			ActionURL:  bookingURL(ev),
		}
	},
	{BookingApproved, "student"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Booking Approved",
			Message:    fmt.Sprintf("Your %s session with %s on %s has been approved.", subjectName(ev), ev.TeacherName, bookingWhen(ev)),
			ActionText: "View Session",
			ActionURL:  bookingURL(ev),
		}
	},

	{BookingCancelled, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Booking Cancelled",
			Message:    fmt.Sprintf("The %s session scheduled for %s has been cancelled.", subjectName(ev), bookingWhen(ev)),
			ActionText: "View Bookings",
			ActionURL:  "/bookings",
		}
	},

	{BookingRescheduled, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title: "Booking Rescheduled",
			Message: fmt.Sprintf("Your %s session has moved from %s at %s to %s.",
				subjectName(ev), ev.OldDate, ev.OldTime, bookingWhen(ev)),
			ActionText: "View Booking",
			ActionURL:  bookingURL(ev),
		}
	},

	{BookingReassigned, VariantAssigned}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "New Session Assigned",
			Message:    fmt.Sprintf("You have been assigned a %s session with %s on %s.", subjectName(ev), ev.StudentName, bookingWhen(ev)),
			ActionText: "View Session",
			ActionURL:  bookingURL(ev),
		}
	},
	{BookingReassigned, VariantRemoved}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Session Reassigned",
			Message:    fmt.Sprintf("Your %s session on %s has been reassigned to another teacher.", subjectName(ev), bookingWhen(ev)),
			ActionText: "View Schedule",
			ActionURL:  "/schedule",
		}
	},
	{BookingReassigned, VariantStudent}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Teacher Changed",
			Message:    fmt.Sprintf("Your %s session on %s will now be taught by %s.", subjectName(ev), bookingWhen(ev), ev.TeacherName),
			ActionText: "View Booking",
			ActionURL:  bookingURL(ev),
		}
	},

	{DocumentUploaded, "admin"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Document Awaiting Review",
			Message:    fmt.Sprintf("%s uploaded a %s for verification.", ev.TeacherName, documentType(ev)),
			ActionText: "Review Document",
			ActionURL:  documentURL(ev),
		}
	},
	{DocumentUploaded, "teacher"}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Document Received",
			Message:    fmt.Sprintf("Your %s has been received and is awaiting review.", documentType(ev)),
			ActionText: "View Documents",
			ActionURL:  "/documents",
		}
	},
	{DocumentVerified, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Document Verified",
			Message:    fmt.Sprintf("Your %s has been verified.", documentType(ev)),
			ActionText: "View Documents",
			ActionURL:  "/documents",
		}
	},
	{DocumentRejected, ""}: func(ev Event, rec Recipient) Content {
		reason := ""
		if ev.Document != nil && ev.Document.Reason != "" {
			reason = " Reason: " + ev.Document.Reason
		}
		return Content{
			Title:      "Document Rejected",
			Message:    fmt.Sprintf("Your %s was rejected.%s", documentType(ev), reason),
			ActionText: "Upload Again",
			ActionURL:  "/documents",
		}
	},

	{MessageReceived, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "New Message",
			Message:    ev.Message,
			ActionText: "Open Inbox",
			ActionURL:  "/messages",
		}
	},

	{PaystackRestriction, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Payout Account Restricted",
			Message:    "Your payout account has been restricted by the payment provider. Please update your payment details.",
			ActionText: "Update Payment Details",
			ActionURL:  "/settings/payments",
		}
	},

	{PayoutProcessed, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Payout Processed",
			Message:    fmt.Sprintf("Your payout of %s has been processed.", payoutAmount(ev)),
			ActionText: "View Payouts",
			ActionURL:  "/payouts",
		}
	},
	{PayoutSMS, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Message: fmt.Sprintf("IqraPath: your payout of %s has been processed.", payoutAmount(ev)),
		}
	},

	{SessionReminder, ""}: func(ev Event, rec Recipient) Content {
		when := ""
		if ev.Session != nil {
			when = fmt.Sprintf("%s at %s", ev.Session.SessionDate, ev.Session.StartTime)
		}
		return Content{
			Title:      "Upcoming Session Reminder",
			Message:    fmt.Sprintf("Reminder: your %s session is on %s.", subjectName(ev), when),
			ActionText: "Join Session",
			ActionURL:  sessionURL(ev),
		}
	},
	{SessionRequest, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Session Request",
			Message:    fmt.Sprintf("%s requested an extra %s session.", ev.StudentName, subjectName(ev)),
			ActionText: "Review Request",
			ActionURL:  bookingURL(ev),
		}
	},

	{AccountSuspended, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:   "Account Suspended",
			Message: "Your account has been suspended. Contact support if you believe this is an error.",
		}
	},
	{AccountUnsuspended, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:   "Account Reinstated",
			Message: "Your account has been reinstated. Welcome back.",
		}
	},
	{AccountDeleted, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:   "Account Deleted",
			Message: "Your account and associated data have been deleted.",
		}
	},

	{VerificationApproved, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Verification Approved",
			Message:    "Congratulations, your teacher verification has been approved. You can now receive bookings.",
			ActionText: "Go to Dashboard",
			ActionURL:  "/dashboard",
		}
	},
	{VerificationRejected, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Verification Rejected",
			Message:    "Your teacher verification was not approved. Please review the feedback and try again.",
			ActionText: "View Feedback",
			ActionURL:  "/verification",
		}
	},
	{VerificationCallScheduled, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Verification Call Scheduled",
			Message:    "Your verification call has been scheduled. Check your dashboard for the meeting link.",
			ActionText: "View Call Details",
			ActionURL:  "/verification",
		}
	},
	{VerificationCallStarted, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:      "Verification Call Started",
			Message:    "Your verification call has started. Join now.",
			ActionText: "Join Call",
			ActionURL:  "/verification",
		}
	},
	{VerificationCallCompleted, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:   "Verification Call Completed",
			Message: "Your verification call is complete. We will notify you of the outcome shortly.",
		}
	},

	{SystemNotification, ""}: func(ev Event, rec Recipient) Content {
		return Content{
			Title:   ev.Title,
			Message: ev.Message,
		}
	},
}

func documentType(ev Event) string {
	if ev.Document == nil || utils.TrimOrEmpty(ev.Document.Type) == "" {
		return "document"
	}
	return ev.Document.Type
}

func documentURL(ev Event) string {
	if ev.Document == nil {
		return "/documents"
	}
	return fmt.Sprintf("/documents/%d", ev.Document.ID)
}

func sessionURL(ev Event) string {
	if ev.Session == nil || ev.Session.MeetingLink == "" {
		return "/sessions"
	}
	return ev.Session.MeetingLink
}

func payoutAmount(ev Event) string {
	if ev.Payout == nil {
		return ""
	}
	return utils.FormatAmount(ev.Payout.Amount, ev.Payout.Currency)
}
