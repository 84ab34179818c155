package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	intdb "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/db"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type PayoutRepository struct {
	DB *sql.DB
}

func (r PayoutRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const payoutColumns = `id,
       COALESCE(teacher_id,0),
       COALESCE(amount,0),
       COALESCE(currency,'NGN'),
       COALESCE(payment_method,''),
       COALESCE(status,'pending'),
       COALESCE(reference,''),
       COALESCE(notes,''),
       COALESCE(created_at,''),
       COALESCE(processed_at,'')`

func (r PayoutRepository) Create(p models.PayoutRequest) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payout_requests
			(teacher_id, amount, currency, payment_method, status, reference, notes, created_at)
		VALUES (?,?,?,?,?,?,?,NOW())`,
		p.TeacherID, p.Amount, p.Currency, p.PaymentMethod, models.PayoutPending,
		intdb.NullIfEmpty(p.Reference), intdb.NullIfEmpty(p.Notes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PayoutRepository) GetByID(id int64) (models.PayoutRequest, error) {
	var p models.PayoutRequest
	err := r.db().QueryRow(
		`SELECT `+payoutColumns+` FROM payout_requests WHERE id=? LIMIT 1`, id,
	).Scan(
		&p.ID, &p.TeacherID, &p.Amount, &p.Currency, &p.PaymentMethod,
		&p.Status, &p.Reference, &p.Notes, &p.CreatedAt, &p.ProcessedAt,
	)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "payout", Err: err}
	}
	return p, err
}

func (r PayoutRepository) ListByTeacher(teacherID int64) ([]models.PayoutRequest, error) {
	rows, err := r.db().Query(
		`SELECT `+payoutColumns+` FROM payout_requests WHERE teacher_id=? ORDER BY id DESC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PayoutRequest{}
	for rows.Next() {
		var p models.PayoutRequest
		if err := rows.Scan(
			&p.ID, &p.TeacherID, &p.Amount, &p.Currency, &p.PaymentMethod,
			&p.Status, &p.Reference, &p.Notes, &p.CreatedAt, &p.ProcessedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateStatus records a gateway outcome and the processing timestamp.
func (r PayoutRepository) UpdateStatus(id int64, status, reference string) error {
	res, err := r.db().Exec(`
		UPDATE payout_requests
		SET status=?, reference=COALESCE(?, reference), processed_at=NOW()
		WHERE id=?`,
		status, intdb.NullIfEmpty(reference), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payout"}
	}
	return nil
}
