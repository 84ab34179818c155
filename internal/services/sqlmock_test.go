package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

type sqlmockDB struct {
	DB   *sql.DB
	mock sqlmock.Sqlmock
}

func (s *sqlmockDB) Close() { s.DB.Close() }

func newSQLMock(t *testing.T) *sqlmockDB {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	return &sqlmockDB{DB: db, mock: mock}
}
