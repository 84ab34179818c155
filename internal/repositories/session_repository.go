package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	intdb "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/db"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type SessionRepository struct {
	DB *sql.DB
}

func (r SessionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const sessionColumns = `id,
       COALESCE(booking_id,0),
       COALESCE(student_id,0),
       COALESCE(teacher_id,0),
       COALESCE(subject_id,0),
       COALESCE(session_date,''),
       COALESCE(start_time,''),
       COALESCE(end_time,''),
       COALESCE(meeting_platform,''),
       COALESCE(meeting_link,''),
       COALESCE(meeting_id,''),
       COALESCE(meeting_password,''),
       COALESCE(reminder_sent_at,''),
       COALESCE(created_at,'')`

func scanSessionRows(rows *sql.Rows) ([]models.TeachingSession, error) {
	out := []models.TeachingSession{}
	for rows.Next() {
		var s models.TeachingSession
		if err := rows.Scan(
			&s.ID, &s.BookingID, &s.StudentID, &s.TeacherID, &s.SubjectID,
			&s.SessionDate, &s.StartTime, &s.EndTime,
			&s.MeetingPlatform, &s.MeetingLink, &s.MeetingID, &s.MeetingPassword,
			&s.ReminderSentAt, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts the session bound 1:1 to an approved booking.
func (r SessionRepository) Create(s models.TeachingSession) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO teaching_sessions
			(booking_id, student_id, teacher_id, subject_id, session_date, start_time, end_time,
			 meeting_platform, meeting_link, meeting_id, meeting_password, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,NOW())`,
		s.BookingID, s.StudentID, s.TeacherID, s.SubjectID, s.SessionDate, s.StartTime, s.EndTime,
		intdb.NullIfEmpty(s.MeetingPlatform), intdb.NullIfEmpty(s.MeetingLink),
		intdb.NullIfEmpty(s.MeetingID), intdb.NullIfEmpty(s.MeetingPassword),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r SessionRepository) GetByBookingID(bookingID int64) (models.TeachingSession, error) {
	var s models.TeachingSession
	err := r.db().QueryRow(
		`SELECT `+sessionColumns+` FROM teaching_sessions WHERE booking_id=? LIMIT 1`, bookingID,
	).Scan(
		&s.ID, &s.BookingID, &s.StudentID, &s.TeacherID, &s.SubjectID,
		&s.SessionDate, &s.StartTime, &s.EndTime,
		&s.MeetingPlatform, &s.MeetingLink, &s.MeetingID, &s.MeetingPassword,
		&s.ReminderSentAt, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "session", Err: err}
	}
	return s, err
}

// ListUpcomingByTeacher returns sessions on or after today for the
// earnings aggregation.
func (r SessionRepository) ListUpcomingByTeacher(teacherID int64) ([]models.TeachingSession, error) {
	rows, err := r.db().Query(`
		SELECT `+sessionColumns+`
		FROM teaching_sessions
		WHERE teacher_id=? AND session_date >= CURDATE()
		ORDER BY session_date, start_time`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

// ListDueReminders returns today's sessions that have not been reminded
// yet; the sweep marks them as it sends.
func (r SessionRepository) ListDueReminders() ([]models.TeachingSession, error) {
	rows, err := r.db().Query(`
		SELECT ` + sessionColumns + `
		FROM teaching_sessions
		WHERE session_date = CURDATE()
		  AND COALESCE(reminder_sent_at,'') = ''
		ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

// UpdateMeeting patches meeting metadata via key presence.
func (r SessionRepository) UpdateMeeting(id int64, u models.MeetingUpdate) error {
	set := []string{}
	args := []any{}
	if u.Platform != nil {
		set = append(set, "meeting_platform=?")
		args = append(args, *u.Platform)
	}
	if u.Link != nil {
		set = append(set, "meeting_link=?")
		args = append(args, *u.Link)
	}
	if u.ID != nil {
		set = append(set, "meeting_id=?")
		args = append(args, *u.ID)
	}
	if u.Password != nil {
		set = append(set, "meeting_password=?")
		args = append(args, *u.Password)
	}
	if len(set) == 0 {
		return domain.ValidationError{Field: "meeting", Msg: "nothing to update"}
	}

	query := "UPDATE teaching_sessions SET " + set[0]
	for _, s := range set[1:] {
		query += ", " + s
	}
	query += " WHERE id=?"
	args = append(args, id)

	res, err := r.db().Exec(query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "session"}
	}
	return nil
}

func (r SessionRepository) MarkReminderSent(id int64) error {
	_, err := r.db().Exec(
		`UPDATE teaching_sessions SET reminder_sent_at=NOW() WHERE id=?`, id)
	return err
}
