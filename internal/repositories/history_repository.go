package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

// HistoryRepository writes the booking_history audit trail: one row per
// status transition (who, when, from, to).
type HistoryRepository struct {
	DB *sql.DB
}

func (r HistoryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r HistoryRepository) Insert(h models.BookingHistory) error {
	_, err := r.db().Exec(`
		INSERT INTO booking_history
			(booking_id, from_status, to_status, actor_id, actor_role, created_at)
		VALUES (?,?,?,?,?,NOW())`,
		h.BookingID, h.FromStatus, h.ToStatus, h.ActorID, h.ActorRole,
	)
	return err
}

func (r HistoryRepository) ListByBooking(bookingID int64) ([]models.BookingHistory, error) {
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(booking_id,0),
		       COALESCE(from_status,''),
		       COALESCE(to_status,''),
		       COALESCE(actor_id,0),
		       COALESCE(actor_role,''),
		       COALESCE(created_at,'')
		FROM booking_history
		WHERE booking_id=?
		ORDER BY id`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingHistory{}
	for rows.Next() {
		var h models.BookingHistory
		if err := rows.Scan(&h.ID, &h.BookingID, &h.FromStatus, &h.ToStatus, &h.ActorID, &h.ActorRole, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
