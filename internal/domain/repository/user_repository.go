package repository

import (
	"time"

	"github.com/jhoicas/invorya-panel/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas.
// Los lookups devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error

	// Operaciones del tracker de bloqueo sobre los contadores persistidos.

	// LockState lee is_locked, locked_until y failed_login_attempts por username.
	LockState(username string) (*entity.LockState, error)
	// ClearLock desbloquea la cuenta: is_locked=false, locked_until=NULL, contador=0.
	ClearLock(username string) error
	// IncrementFailedAttempts incrementa el contador en una sola sentencia atómica y,
	// si el nuevo valor alcanza maxAttempts, fija is_locked y locked_until=lockUntil.
	// Devuelve el estado resultante.
	IncrementFailedAttempts(username string, maxAttempts int, lockUntil time.Time) (*entity.LockState, error)
	// ResetFailedAttempts pone el contador en 0 sin tocar is_locked.
	ResetFailedAttempts(username string) error

	// RecordLogin fija last_login y last_activity tras un inicio de sesión exitoso.
	RecordLogin(id string, at time.Time) error
	// TouchActivity actualiza last_activity (soporte del idle-timer del panel).
	TouchActivity(id string, at time.Time) error
}
