package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	intdb "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/db"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type VerificationRepository struct {
	DB *sql.DB
}

func (r VerificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const verificationColumns = `id,
       COALESCE(teacher_id,0),
       COALESCE(status,'pending'),
       COALESCE(call_status,''),
       COALESCE(call_date,''),
       COALESCE(call_time,''),
       COALESCE(call_link,''),
       COALESCE(reviewed_by,0),
       COALESCE(reason,''),
       COALESCE(created_at,''),
       COALESCE(reviewed_at,'')`

func scanVerification(row *sql.Row) (models.VerificationRequest, error) {
	var v models.VerificationRequest
	err := row.Scan(
		&v.ID, &v.TeacherID, &v.Status, &v.CallStatus,
		&v.CallDate, &v.CallTime, &v.CallLink,
		&v.ReviewedBy, &v.Reason, &v.CreatedAt, &v.ReviewedAt,
	)
	return v, err
}

func (r VerificationRepository) Create(teacherID int64) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO verification_requests (teacher_id, status, created_at)
		VALUES (?,'pending',NOW())`, teacherID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r VerificationRepository) GetByID(id int64) (models.VerificationRequest, error) {
	v, err := scanVerification(r.db().QueryRow(
		`SELECT `+verificationColumns+` FROM verification_requests WHERE id=? LIMIT 1`, id))
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "verification request", Err: err}
	}
	return v, err
}

func (r VerificationRepository) GetByTeacher(teacherID int64) (models.VerificationRequest, error) {
	v, err := scanVerification(r.db().QueryRow(
		`SELECT `+verificationColumns+` FROM verification_requests WHERE teacher_id=? ORDER BY id DESC LIMIT 1`,
		teacherID))
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "verification request", Err: err}
	}
	return v, err
}

// ScheduleCall sets or moves the verification call slot.
func (r VerificationRepository) ScheduleCall(id int64, date, clock, link string) error {
	res, err := r.db().Exec(`
		UPDATE verification_requests
		SET call_status=?, call_date=?, call_time=?, call_link=?
		WHERE id=?`,
		models.CallScheduled, date, clock, intdb.NullIfEmpty(link), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "verification request"}
	}
	return nil
}

func (r VerificationRepository) SetCallStatus(id int64, status string) error {
	res, err := r.db().Exec(
		`UPDATE verification_requests SET call_status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "verification request"}
	}
	return nil
}

// Review records the admin decision.
func (r VerificationRepository) Review(id int64, status, reason string, reviewedBy int64) error {
	res, err := r.db().Exec(`
		UPDATE verification_requests
		SET status=?, reason=?, reviewed_by=?, reviewed_at=NOW()
		WHERE id=?`,
		status, intdb.NullIfEmpty(reason), reviewedBy, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "verification request"}
	}
	return nil
}
