package notify

import "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"

// NotificationStore persists inbox records; implemented by
// repositories.NotificationRepository.
type NotificationStore interface {
	Insert(n models.Notification) (int64, error)
}

// DatabaseChannel writes the per-recipient inbox record consumed by the
// notifications UI.
type DatabaseChannel struct {
	Store NotificationStore
}

func (c DatabaseChannel) Name() string { return ChannelDatabase }

func (c DatabaseChannel) Send(ev Event, rec Recipient, content Content) error {
	n := models.Notification{
		UserID:     rec.UserID,
		Type:       string(ev.Type),
		Title:      content.Title,
		Message:    content.Message,
		ActionText: content.ActionText,
		ActionURL:  content.ActionURL,
	}
	if ev.Booking != nil {
		n.BookingID = ev.Booking.ID
	}
	if ev.Document != nil {
		n.DocumentID = ev.Document.ID
	}
	if ev.Payout != nil {
		n.PayoutID = ev.Payout.ID
		n.Amount = ev.Payout.Amount
		n.Currency = ev.Payout.Currency
	}
	_, err := c.Store.Insert(n)
	return err
}
