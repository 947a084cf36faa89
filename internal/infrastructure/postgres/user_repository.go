package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/invorya-panel/internal/domain"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, full_name, phone, password_hash, role,
	failed_login_attempts, is_locked, locked_until, last_login, last_activity, created_at, updated_at`

// Create persiste una nueva cuenta.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, full_name, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		user.ID, user.Username, user.Email, user.FullName, user.Phone, user.PasswordHash, user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene una cuenta por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepo) get(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.Role,
		&u.FailedLoginAttempts, &u.IsLocked, &u.LockedUntil, &u.LastLogin, &u.LastActivity,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List devuelve todas las cuentas, más recientes primero.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.Role,
			&u.FailedLoginAttempts, &u.IsLocked, &u.LockedUntil, &u.LastLogin, &u.LastActivity,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza el perfil de una cuenta (email, nombre, teléfono, rol).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, full_name = $3, phone = $4, role = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.FullName, user.Phone, user.Role,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// LockState lee los contadores de bloqueo por username.
func (r *UserRepo) LockState(username string) (*entity.LockState, error) {
	query := `
		SELECT failed_login_attempts, is_locked, locked_until
		FROM users WHERE username = $1`
	var st entity.LockState
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&st.FailedAttempts, &st.IsLocked, &st.LockedUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lock state: %w", err)
	}
	return &st, nil
}

// ClearLock desbloquea la cuenta y reinicia el contador.
func (r *UserRepo) ClearLock(username string) error {
	query := `
		UPDATE users SET is_locked = FALSE, locked_until = NULL, failed_login_attempts = 0, updated_at = now()
		WHERE username = $1`
	if _, err := r.q.Exec(context.Background(), query, username); err != nil {
		return fmt.Errorf("clear lock: %w", err)
	}
	return nil
}

// IncrementFailedAttempts incrementa el contador y dispara el bloqueo al alcanzar
// maxAttempts en una única sentencia, evitando el lost-update de leer y reescribir.
func (r *UserRepo) IncrementFailedAttempts(username string, maxAttempts int, lockUntil time.Time) (*entity.LockState, error) {
	query := `
		UPDATE users SET
			failed_login_attempts = failed_login_attempts + 1,
			is_locked = CASE WHEN failed_login_attempts + 1 >= $2 THEN TRUE ELSE is_locked END,
			locked_until = CASE WHEN failed_login_attempts + 1 >= $2 THEN $3 ELSE locked_until END,
			updated_at = now()
		WHERE username = $1
		RETURNING failed_login_attempts, is_locked, locked_until`
	var st entity.LockState
	err := r.q.QueryRow(context.Background(), query, username, maxAttempts, lockUntil).Scan(
		&st.FailedAttempts, &st.IsLocked, &st.LockedUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("increment failed attempts: %w", err)
	}
	return &st, nil
}

// ResetFailedAttempts pone el contador en 0 sin tocar is_locked.
func (r *UserRepo) ResetFailedAttempts(username string) error {
	query := `UPDATE users SET failed_login_attempts = 0, updated_at = now() WHERE username = $1`
	if _, err := r.q.Exec(context.Background(), query, username); err != nil {
		return fmt.Errorf("reset failed attempts: %w", err)
	}
	return nil
}

// RecordLogin fija last_login y last_activity tras un login exitoso.
func (r *UserRepo) RecordLogin(id string, at time.Time) error {
	query := `UPDATE users SET last_login = $2, last_activity = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, at); err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

// TouchActivity actualiza last_activity.
func (r *UserRepo) TouchActivity(id string, at time.Time) error {
	query := `UPDATE users SET last_activity = $2 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, at); err != nil {
		return fmt.Errorf("touch activity: %w", err)
	}
	return nil
}
