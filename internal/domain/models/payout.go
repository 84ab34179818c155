package models

// Payout request statuses, mutated by payment-gateway callbacks.
const (
	PayoutPending        = "pending"
	PayoutSuccess        = "success"
	PayoutFailed         = "failed"
	PayoutRequiresManual = "requires_manual_processing"
)

// PayoutRequest is a transfer of earned funds to a teacher via an
// external payment gateway.
type PayoutRequest struct {
	ID            int64   `json:"id"`
	TeacherID     int64   `json:"teacher_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"` // paystack / stripe / bank_transfer
	Status        string  `json:"status"`
	Reference     string  `json:"reference"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"created_at"`
	ProcessedAt   string  `json:"processed_at"`
}
