package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	intdb "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/db"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

// NotificationRepository backs the database delivery channel and the
// inbox endpoints.
type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r NotificationRepository) Insert(n models.Notification) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO notifications
			(user_id, type, title, message, action_text, action_url,
			 booking_id, document_id, payout_id, amount, currency, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,NOW())`,
		n.UserID, n.Type, n.Title, n.Message,
		intdb.NullIfEmpty(n.ActionText), intdb.NullIfEmpty(n.ActionURL),
		intdb.NullIfZero(n.BookingID), intdb.NullIfZero(n.DocumentID), intdb.NullIfZero(n.PayoutID),
		n.Amount, intdb.NullIfEmpty(n.Currency),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r NotificationRepository) ListByUser(userID int64, unreadOnly bool) ([]models.Notification, error) {
	query := `
		SELECT id,
		       COALESCE(user_id,0),
		       COALESCE(type,''),
		       COALESCE(title,''),
		       COALESCE(message,''),
		       COALESCE(action_text,''),
		       COALESCE(action_url,''),
		       COALESCE(booking_id,0),
		       COALESCE(document_id,0),
		       COALESCE(payout_id,0),
		       COALESCE(amount,0),
		       COALESCE(currency,''),
		       COALESCE(read_at,''),
		       COALESCE(created_at,'')
		FROM notifications
		WHERE user_id=?`
	if unreadOnly {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY id DESC LIMIT 100`

	rows, err := r.db().Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.ActionText, &n.ActionURL,
			&n.BookingID, &n.DocumentID, &n.PayoutID,
			&n.Amount, &n.Currency, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead is scoped to the owner so one user cannot mark another's.
func (r NotificationRepository) MarkRead(id, userID int64) error {
	res, err := r.db().Exec(
		`UPDATE notifications SET read_at=NOW() WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "notification"}
	}
	return nil
}
