package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type RateRepository struct {
	DB *sql.DB
}

func (r RateRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Get returns the teacher's rates; a missing row is an unset rate, not
// an error, so callers can exclude the teacher from aggregations.
func (r RateRepository) Get(teacherID int64) (models.HourlyRate, error) {
	rate := models.HourlyRate{TeacherID: teacherID}
	err := r.db().QueryRow(`
		SELECT COALESCE(rate_usd,0), COALESCE(rate_ngn,0), COALESCE(updated_at,'')
		FROM hourly_rates
		WHERE teacher_id=? LIMIT 1`, teacherID,
	).Scan(&rate.RateUSD, &rate.RateNGN, &rate.UpdatedAt)
	if err == sql.ErrNoRows {
		return rate, nil
	}
	return rate, err
}

func (r RateRepository) Upsert(rate models.HourlyRate) error {
	_, err := r.db().Exec(`
		INSERT INTO hourly_rates (teacher_id, rate_usd, rate_ngn, updated_at)
		VALUES (?,?,?,NOW())
		ON DUPLICATE KEY UPDATE rate_usd=VALUES(rate_usd), rate_ngn=VALUES(rate_ngn), updated_at=NOW()`,
		rate.TeacherID, rate.RateUSD, rate.RateNGN,
	)
	return err
}
