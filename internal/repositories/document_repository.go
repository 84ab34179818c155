package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	intdb "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/db"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type DocumentRepository struct {
	DB *sql.DB
}

func (r DocumentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const documentColumns = `id,
       COALESCE(teacher_id,0),
       COALESCE(type,''),
       COALESCE(file_name,''),
       COALESCE(file_path,''),
       COALESCE(status,'pending'),
       COALESCE(reason,''),
       COALESCE(verified_by,0),
       COALESCE(created_at,''),
       COALESCE(verified_at,'')`

func (r DocumentRepository) Create(d models.Document) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO documents (teacher_id, type, file_name, file_path, status, created_at)
		VALUES (?,?,?,?,?,NOW())`,
		d.TeacherID, d.Type, d.FileName, d.FilePath, models.DocumentPending,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r DocumentRepository) GetByID(id int64) (models.Document, error) {
	var d models.Document
	err := r.db().QueryRow(
		`SELECT `+documentColumns+` FROM documents WHERE id=? LIMIT 1`, id,
	).Scan(
		&d.ID, &d.TeacherID, &d.Type, &d.FileName, &d.FilePath,
		&d.Status, &d.Reason, &d.VerifiedBy, &d.CreatedAt, &d.VerifiedAt,
	)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "document", Err: err}
	}
	return d, err
}

func (r DocumentRepository) ListByTeacher(teacherID int64) ([]models.Document, error) {
	rows, err := r.db().Query(
		`SELECT `+documentColumns+` FROM documents WHERE teacher_id=? ORDER BY id DESC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(
			&d.ID, &d.TeacherID, &d.Type, &d.FileName, &d.FilePath,
			&d.Status, &d.Reason, &d.VerifiedBy, &d.CreatedAt, &d.VerifiedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SetStatus records a verification outcome; reason is kept only for
// rejections.
func (r DocumentRepository) SetStatus(id int64, status, reason string, verifiedBy int64) error {
	res, err := r.db().Exec(`
		UPDATE documents
		SET status=?, reason=?, verified_by=?, verified_at=NOW()
		WHERE id=?`,
		status, intdb.NullIfEmpty(reason), verifiedBy, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "document"}
	}
	return nil
}
