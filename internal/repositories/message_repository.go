package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
)

// Message is a direct message between two users.
type Message struct {
	ID         int64  `json:"id"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

type MessageRepository struct {
	DB *sql.DB
}

func (r MessageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MessageRepository) Insert(m Message) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO messages (sender_id, receiver_id, body, created_at)
		VALUES (?,?,?,NOW())`,
		m.SenderID, m.ReceiverID, m.Body,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r MessageRepository) ListConversation(a, b int64) ([]Message, error) {
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(sender_id,0),
		       COALESCE(receiver_id,0),
		       COALESCE(body,''),
		       COALESCE(created_at,'')
		FROM messages
		WHERE (sender_id=? AND receiver_id=?) OR (sender_id=? AND receiver_id=?)
		ORDER BY id`, a, b, b, a)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
