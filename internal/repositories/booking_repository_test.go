package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

func TestBookingCreateAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Create(models.Booking{
		UUID:        "b-uuid",
		StudentID:   1,
		TeacherID:   2,
		SubjectID:   3,
		BookingDate: "2026-09-01",
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.BookingPending,
		Fee:         2000,
		Currency:    "NGN",
		CreatedBy:   1,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 5 {
		t.Fatalf("id = %d, want 5", id)
	}

	cols := []string{
		"id", "uuid", "student_id", "teacher_id", "subject_id",
		"booking_date", "start_time", "end_time", "status",
		"fee", "currency", "notes", "created_by", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			5, "b-uuid", 1, 2, 3,
			"2026-09-01", "10:00", "11:00", "pending",
			2000.0, "NGN", "", 1, "2026-08-31 09:00:00", "2026-08-31 09:00:00",
		))

	b, err := repo.GetByID(5)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if b.Status != domain.BookingPending {
		t.Fatalf("status = %s, want pending", b.Status)
	}
	if b.Currency != "NGN" || b.Fee != 2000 {
		t.Fatalf("fee/currency mismatch: %v %s", b.Fee, b.Currency)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingUpdateStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET status=").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BookingRepository{DB: db}
	if err := repo.UpdateStatus(42, domain.BookingApproved); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingListFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"id", "uuid", "student_id", "teacher_id", "subject_id",
		"booking_date", "start_time", "end_time", "status",
		"fee", "currency", "notes", "created_by", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE 1=1 AND teacher_id=\\? AND status=\\?").
		WithArgs(int64(2), "pending").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			1, "u", 1, 2, 3, "2026-09-01", "10:00", "11:00", "pending",
			0.0, "NGN", "", 1, "", "",
		))

	repo := BookingRepository{DB: db}
	list, err := repo.List(BookingFilter{TeacherID: 2, Status: "pending"})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
