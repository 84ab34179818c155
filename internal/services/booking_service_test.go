package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/notify"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
)

type captureChannel struct {
	name     string
	events   []notify.Event
	recs     []notify.Recipient
	contents []notify.Content
}

func (c *captureChannel) Name() string { return c.name }

func (c *captureChannel) Send(ev notify.Event, rec notify.Recipient, content notify.Content) error {
	c.events = append(c.events, ev)
	c.recs = append(c.recs, rec)
	c.contents = append(c.contents, content)
	return nil
}

func captureDispatcher(profile notify.Profile) (notify.Dispatcher, *captureChannel, *captureChannel) {
	db := &captureChannel{name: notify.ChannelDatabase}
	mail := &captureChannel{name: notify.ChannelMail}
	d := notify.Dispatcher{
		Profile: profile,
		Channels: map[string]notify.Channel{
			notify.ChannelDatabase:  db,
			notify.ChannelMail:      mail,
			notify.ChannelBroadcast: &captureChannel{name: notify.ChannelBroadcast},
			notify.ChannelSMS:       &captureChannel{name: notify.ChannelSMS},
		},
	}
	return d, db, mail
}

var bookingCols = []string{
	"id", "uuid", "student_id", "teacher_id", "subject_id",
	"booking_date", "start_time", "end_time", "status",
	"fee", "currency", "notes", "created_by", "created_at", "updated_at",
}

var userCols = []string{"id", "name", "email", "phone", "role", "status", "created_at"}

func expectUser(mock sqlmock.Sqlmock, id int64, name, role string) {
	mock.ExpectQuery("FROM users WHERE id=").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(id, name, name+"@x.com", "+234800000000", role, "active", ""))
}

func newBookingService(db *sqlmockDB, d notify.Dispatcher) BookingService {
	return BookingService{
		BookingRepo: repositories.BookingRepository{DB: db.DB},
		HistoryRepo: repositories.HistoryRepository{DB: db.DB},
		SessionRepo: repositories.SessionRepository{DB: db.DB},
		UserRepo:    repositories.UserRepository{DB: db.DB},
		Dispatcher:  d,
	}
}

func TestApprovePendingBooking(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()
	db.mock.MatchExpectationsInOrder(false)

	db.mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			9, "u", 1, 2, 3, "2026-09-01", "10:00", "11:00", "pending",
			2000.0, "NGN", "", 1, "", ""))
	db.mock.ExpectExec("UPDATE bookings SET status=").
		WillReturnResult(sqlmock.NewResult(0, 1))
	db.mock.ExpectExec("INSERT INTO booking_history").
		WillReturnResult(sqlmock.NewResult(1, 1))
	db.mock.ExpectExec("INSERT INTO teaching_sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	db.mock.ExpectQuery("FROM subjects").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Tajweed"))
	expectUser(db.mock, 2, "Ustadh A", "teacher")
	expectUser(db.mock, 1, "Amina", "student")
	expectUser(db.mock, 2, "Ustadh A", "teacher")
	expectUser(db.mock, 1, "Amina", "student")

	d, dbChan, mailChan := captureDispatcher(notify.ProfileDevelopment)
	svc := newBookingService(db, d)

	b, err := svc.Approve(9, domain.Actor{UserID: 99, Role: domain.RoleTeacher})
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if b.Status != domain.BookingApproved {
		t.Fatalf("status = %s, want approved", b.Status)
	}

	// booking_approved under development: database only, both parties.
	if len(dbChan.recs) != 2 {
		t.Fatalf("database deliveries = %d, want 2", len(dbChan.recs))
	}
	if len(mailChan.recs) != 0 {
		t.Fatalf("mail must not fire outside production, got %d", len(mailChan.recs))
	}

	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveCompletedBookingRejected(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			9, "u", 1, 2, 3, "2026-09-01", "10:00", "11:00", "completed",
			0.0, "NGN", "", 1, "", ""))

	d, dbChan, _ := captureDispatcher(notify.ProfileProduction)
	svc := newBookingService(db, d)

	_, err := svc.Approve(9, domain.Actor{UserID: 99, Role: domain.RoleAdmin})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(dbChan.events) != 0 {
		t.Fatalf("illegal transition must emit no notifications")
	}
}

func TestApproveByStudentRejected(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			9, "u", 1, 2, 3, "2026-09-01", "10:00", "11:00", "pending",
			0.0, "NGN", "", 1, "", ""))

	d, _, _ := captureDispatcher(notify.ProfileProduction)
	svc := newBookingService(db, d)

	_, err := svc.Approve(9, domain.Actor{UserID: 1, Role: domain.RoleStudent})
	if !domain.IsPolicy(err) {
		t.Fatalf("expected policy error, got %v", err)
	}
}

func TestRescheduleCarriesOldSlot(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()
	db.mock.MatchExpectationsInOrder(false)

	db.mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			4, "u", 1, 2, 3, "2026-09-01", "10:00", "11:00", "approved",
			0.0, "NGN", "", 1, "", ""))
	db.mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	db.mock.ExpectExec("INSERT INTO booking_history").
		WillReturnResult(sqlmock.NewResult(1, 1))
	db.mock.ExpectQuery("FROM subjects").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Fiqh"))
	expectUser(db.mock, 2, "Ustadh A", "teacher")
	expectUser(db.mock, 1, "Amina", "student")
	expectUser(db.mock, 2, "Ustadh A", "teacher")
	expectUser(db.mock, 1, "Amina", "student")

	d, dbChan, _ := captureDispatcher(notify.ProfileDevelopment)
	svc := newBookingService(db, d)

	b, err := svc.Reschedule(4, RescheduleInput{
		BookingDate: "2026-09-10",
		StartTime:   "14:00",
		EndTime:     "15:00",
	}, domain.Actor{UserID: 1, Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("reschedule error: %v", err)
	}
	if b.Status != domain.BookingRescheduled {
		t.Fatalf("status = %s, want rescheduled", b.Status)
	}

	if len(dbChan.events) == 0 {
		t.Fatalf("expected reschedule notifications")
	}
	ev := dbChan.events[0]
	if ev.OldDate != "2026-09-01" || ev.OldTime != "10:00" {
		t.Fatalf("old slot not captured: %s %s", ev.OldDate, ev.OldTime)
	}
	if ev.Booking.BookingDate != "2026-09-10" {
		t.Fatalf("new date not applied: %s", ev.Booking.BookingDate)
	}
}

func TestReassignEmitsThreeVariants(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()
	db.mock.MatchExpectationsInOrder(false)

	db.mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			7, "u", 30, 10, 3, "2026-09-05", "16:00", "17:00", "approved",
			0.0, "NGN", "", 1, "", ""))
	db.mock.ExpectExec("UPDATE bookings SET teacher_id=").
		WillReturnResult(sqlmock.NewResult(0, 1))
	db.mock.ExpectQuery("FROM subjects").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Tajweed"))
	expectUser(db.mock, 20, "Ustadh B", "teacher")
	expectUser(db.mock, 30, "Amina", "student")
	expectUser(db.mock, 20, "Ustadh B", "teacher")
	expectUser(db.mock, 10, "Ustadh A", "teacher")
	expectUser(db.mock, 30, "Amina", "student")

	d, dbChan, _ := captureDispatcher(notify.ProfileDevelopment)
	svc := newBookingService(db, d)

	if _, err := svc.Reassign(7, 20, domain.Actor{UserID: 99, Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("reassign error: %v", err)
	}

	if len(dbChan.recs) != 3 {
		t.Fatalf("expected exactly 3 database notifications, got %d", len(dbChan.recs))
	}
	variants := map[string]int64{}
	for _, r := range dbChan.recs {
		variants[r.Variant] = r.UserID
	}
	if variants[notify.VariantAssigned] != 20 {
		t.Fatalf("assigned variant should go to new teacher, got %d", variants[notify.VariantAssigned])
	}
	if variants[notify.VariantRemoved] != 10 {
		t.Fatalf("removed variant should go to old teacher, got %d", variants[notify.VariantRemoved])
	}
	if variants[notify.VariantStudent] != 30 {
		t.Fatalf("student variant should go to student, got %d", variants[notify.VariantStudent])
	}
}

func TestReassignByTeacherRejected(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	d, _, _ := captureDispatcher(notify.ProfileProduction)
	svc := newBookingService(db, d)

	_, err := svc.Reassign(7, 20, domain.Actor{UserID: 10, Role: domain.RoleTeacher})
	if !domain.IsPolicy(err) {
		t.Fatalf("expected policy error, got %v", err)
	}
}
