package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

func TestNotificationInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NotificationRepository{DB: db}
	id, err := repo.Insert(models.Notification{
		UserID:    3,
		Type:      "booking_approved",
		Title:     "Booking Approved",
		Message:   "Your session is confirmed.",
		BookingID: 9,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNotificationMarkReadScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE notifications SET read_at").
		WithArgs(int64(7), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NotificationRepository{DB: db}
	if err := repo.MarkRead(7, 99); !domain.IsNotFound(err) {
		t.Fatalf("foreign user should see not found, got %v", err)
	}
}

func TestRateGetMissingRowIsUnset(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM hourly_rates").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"rate_usd", "rate_ngn", "updated_at"}))

	repo := RateRepository{DB: db}
	rate, err := repo.Get(5)
	if err != nil {
		t.Fatalf("missing rate row should not error, got %v", err)
	}
	if !rate.Unset() {
		t.Fatalf("missing row should read as unset, got %+v", rate)
	}
}
