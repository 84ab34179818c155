package models

// Notification is the persisted record written by the database channel
// and consumed by the inbox UI.
type Notification struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Type       string `json:"type"` // event type, e.g. booking_approved
	Title      string `json:"title"`
	Message    string `json:"message"`
	ActionText string `json:"action_text"`
	ActionURL  string `json:"action_url"`
	BookingID  int64  `json:"booking_id,omitempty"`
	DocumentID int64  `json:"document_id,omitempty"`
	PayoutID   int64  `json:"payout_id,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Currency   string `json:"currency,omitempty"`
	ReadAt     string `json:"read_at"`
	CreatedAt  string `json:"created_at"`
}
