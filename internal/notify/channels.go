package notify

// Channel identifiers.
const (
	ChannelDatabase  = "database"
	ChannelMail      = "mail"
	ChannelBroadcast = "broadcast"
	ChannelSMS       = "sms"
)

// Profile selects which channels are active. It is explicit config,
// never a runtime environment sniff, so the channel table stays
// deterministic and testable.
type Profile string

const (
	ProfileProduction  Profile = "production"
	ProfileDevelopment Profile = "development"
)

// Channel delivers one message to one recipient. Send is expected to be
// an enqueue (broker publish, async REST call, row insert), not a
// blocking conversation.
type Channel interface {
	Name() string
	Send(ev Event, rec Recipient, content Content) error
}

// ChannelsFor returns the channel list for an event under a delivery
// profile. The table matches the inbox/email behavior external
// consumers rely on; booking approval and cancellation mail goes out
// only under the production profile.
func ChannelsFor(event EventType, profile Profile) []string {
	switch event {
	case AccountDeleted, AccountSuspended, AccountUnsuspended,
		DocumentUploaded, PaystackRestriction:
		return []string{ChannelMail, ChannelDatabase}

	case BookingCreated, BookingRescheduled, BookingReassigned, SessionRequest:
		return []string{ChannelDatabase, ChannelMail}

	case BookingApproved, BookingCancelled:
		if profile == ProfileProduction {
			return []string{ChannelDatabase, ChannelMail}
		}
		return []string{ChannelDatabase}

	case DocumentVerified, DocumentRejected, MessageReceived,
		SystemNotification, VerificationApproved, VerificationRejected,
		VerificationCallScheduled, VerificationCallStarted, VerificationCallCompleted:
		return []string{ChannelDatabase, ChannelMail, ChannelBroadcast}

	case PayoutProcessed:
		return []string{ChannelDatabase}

	case PayoutSMS:
		return []string{ChannelSMS}

	case SessionReminder:
		return []string{ChannelMail}

	default:
		return []string{ChannelDatabase}
	}
}
