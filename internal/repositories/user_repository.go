package repositories

import (
	"database/sql"

	intconfig "github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/config"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id,
       COALESCE(name,''),
       COALESCE(email,''),
       COALESCE(phone,''),
       COALESCE(role,'student'),
       COALESCE(status,'active'),
       COALESCE(created_at,'')`

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

// GetByEmailWithHash is used by login; the hash never leaves the auth
// handler.
func (r UserRepository) GetByEmailWithHash(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(name,''),
		       COALESCE(email,''),
		       COALESCE(phone,''),
		       COALESCE(role,'student'),
		       COALESCE(status,'active'),
		       COALESCE(created_at,''),
		       COALESCE(password_hash,'')
		FROM users WHERE email=? LIMIT 1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &hash)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, hash, err
}

func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, role, status, password_hash, created_at)
		VALUES (?,?,?,?,'active',?,NOW())`,
		u.Name, u.Email, u.Phone, u.Role, passwordHash,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAdmins returns active admins for admin-audience notifications.
func (r UserRepository) ListAdmins() ([]models.User, error) {
	rows, err := r.db().Query(
		`SELECT ` + userColumns + ` FROM users WHERE role='admin' AND status='active'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SetStatus drives account_suspended / account_unsuspended / account_deleted.
func (r UserRepository) SetStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE users SET status=? WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// SubjectName resolves a subject label; callers fall back to a default
// when the row is missing.
func (r UserRepository) SubjectName(id int64) (string, error) {
	var name string
	err := r.db().QueryRow(
		`SELECT COALESCE(name,'') FROM subjects WHERE id=? LIMIT 1`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", domain.DataError{Resource: "subject", Err: err}
	}
	return name, err
}
