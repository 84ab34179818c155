package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	intdb "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/db"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id,
       COALESCE(uuid,''),
       COALESCE(student_id,0),
       COALESCE(teacher_id,0),
       COALESCE(subject_id,0),
       COALESCE(booking_date,''),
       COALESCE(start_time,''),
       COALESCE(end_time,''),
       COALESCE(status,'pending'),
       COALESCE(fee,0),
       COALESCE(currency,'NGN'),
       COALESCE(notes,''),
       COALESCE(created_by,0),
       COALESCE(created_at,''),
       COALESCE(updated_at,'')`

func scanBooking(row *sql.Row) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.UUID,
		&b.StudentID,
		&b.TeacherID,
		&b.SubjectID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Fee,
		&b.Currency,
		&b.Notes,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// Create inserts a new pending booking and returns its id.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings
			(uuid, student_id, teacher_id, subject_id, booking_date, start_time, end_time,
			 status, fee, currency, notes, created_by, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,NOW(),NOW())`,
		b.UUID, b.StudentID, b.TeacherID, b.SubjectID, b.BookingDate, b.StartTime, b.EndTime,
		string(b.Status), b.Fee, b.Currency, intdb.NullIfEmpty(b.Notes), b.CreatedBy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	b, err := scanBooking(r.db().QueryRow(
		`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id))
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// BookingFilter narrows List; zero values are skipped.
type BookingFilter struct {
	TeacherID int64
	StudentID int64
	Status    string
}

func (r BookingRepository) List(f BookingFilter) ([]models.Booking, error) {
	where := []string{"1=1"}
	args := []any{}
	if f.TeacherID > 0 {
		where = append(where, "teacher_id=?")
		args = append(args, f.TeacherID)
	}
	if f.StudentID > 0 {
		where = append(where, "student_id=?")
		args = append(args, f.StudentID)
	}
	if strings.TrimSpace(f.Status) != "" {
		where = append(where, "status=?")
		args = append(args, f.Status)
	}

	rows, err := r.db().Query(fmt.Sprintf(
		`SELECT %s FROM bookings WHERE %s ORDER BY booking_date, start_time`,
		bookingColumns, strings.Join(where, " AND ")), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.UUID, &b.StudentID, &b.TeacherID, &b.SubjectID,
			&b.BookingDate, &b.StartTime, &b.EndTime, &b.Status,
			&b.Fee, &b.Currency, &b.Notes, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus sets the new lifecycle status.
func (r BookingRepository) UpdateStatus(id int64, status domain.BookingStatus) error {
	res, err := r.db().Exec(
		`UPDATE bookings SET status=?, updated_at=NOW() WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// UpdateSchedule moves a booking to a new date/time window.
func (r BookingRepository) UpdateSchedule(id int64, date, start, end string) error {
	res, err := r.db().Exec(`
		UPDATE bookings
		SET booking_date=?, start_time=?, end_time=?, status=?, updated_at=NOW()
		WHERE id=?`,
		date, start, end, string(domain.BookingRescheduled), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// UpdateTeacher reassigns a booking without touching its status.
func (r BookingRepository) UpdateTeacher(id, teacherID int64) error {
	res, err := r.db().Exec(
		`UPDATE bookings SET teacher_id=?, updated_at=NOW() WHERE id=?`, teacherID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
