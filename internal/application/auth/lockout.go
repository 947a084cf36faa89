package auth

import (
	"strings"
	"time"

	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// Parámetros por defecto del bloqueo de cuentas. SESSION_TIMEOUT lo consume el
// idle-timer del panel, no el core; se expone aquí junto a los demás.
const (
	DefaultMaxLoginAttempts = 3
	DefaultLockoutDuration  = 15 * time.Minute
	DefaultSessionTimeout   = 5 * time.Minute
)

// LockoutConfig parámetros del tracker.
type LockoutConfig struct {
	MaxAttempts     int
	LockoutDuration time.Duration
}

// LockStatus estado observable del bloqueo de una cuenta.
type LockStatus struct {
	IsLocked          bool
	RemainingAttempts int
	LockedUntil       *time.Time
}

// LockoutTracker máquina de estados de bloqueo por username sobre los contadores
// persistidos (failed_login_attempts, is_locked, locked_until).
//
// Estados: Activa (is_locked=false) y Bloqueada (is_locked=true con locked_until).
// El desbloqueo tras expirar locked_until es perezoso: lo aplica CheckLockStatus
// en la siguiente consulta.
type LockoutTracker struct {
	users repository.UserRepository
	cfg   LockoutConfig
	log   *logger.Logger
}

// NewLockoutTracker construye el tracker. Config en cero usa los defaults del producto.
func NewLockoutTracker(users repository.UserRepository, cfg LockoutConfig, log *logger.Logger) *LockoutTracker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxLoginAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = DefaultLockoutDuration
	}
	return &LockoutTracker{users: users, cfg: cfg, log: log}
}

// MaxAttempts expone el máximo de intentos configurado.
func (t *LockoutTracker) MaxAttempts() int { return t.cfg.MaxAttempts }

// CheckLockStatus lee el estado de bloqueo de la cuenta.
//
// Si la cuenta está bloqueada y locked_until ya pasó, auto-desbloquea: persiste
// is_locked=false, locked_until=NULL y contador=0, y responde Activa con el máximo
// de intentos disponibles. Si el lookup falla (cuenta inexistente o error del
// almacén), falla abierto: responde Activa y deja que la verificación de
// credenciales falle por sí sola.
func (t *LockoutTracker) CheckLockStatus(username string) LockStatus {
	open := LockStatus{IsLocked: false, RemainingAttempts: t.cfg.MaxAttempts}

	st, err := t.users.LockState(strings.TrimSpace(username))
	if err != nil {
		t.log.Warn().Err(err).Str("username", username).Msg("lock status ilegible, se asume cuenta activa")
		return open
	}
	if st == nil {
		return open
	}

	if st.IsLocked && st.LockedUntil != nil && time.Now().After(*st.LockedUntil) {
		if err := t.users.ClearLock(strings.TrimSpace(username)); err != nil {
			t.log.Error().Err(err).Str("username", username).Msg("auto-desbloqueo no persistido")
		}
		return open
	}

	remaining := t.cfg.MaxAttempts - st.FailedAttempts
	if remaining < 0 {
		remaining = 0
	}
	return LockStatus{
		IsLocked:          st.IsLocked,
		RemainingAttempts: remaining,
		LockedUntil:       st.LockedUntil,
	}
}

// RecordFailedAttempt incrementa el contador de fallos en una sola sentencia atómica
// del almacén; si el nuevo valor alcanza el máximo, la misma sentencia fija
// is_locked=true y locked_until=now+duración. El estado que la sentencia devuelve
// es el autoritativo para este intento (no hace falta re-leer): con él se informan
// los intentos restantes o el bloqueo recién disparado. Si el incremento falla o
// la cuenta no existe, se loguea y se responde Activa, igual que CheckLockStatus.
func (t *LockoutTracker) RecordFailedAttempt(username string) LockStatus {
	open := LockStatus{IsLocked: false, RemainingAttempts: t.cfg.MaxAttempts}

	lockUntil := time.Now().Add(t.cfg.LockoutDuration)
	st, err := t.users.IncrementFailedAttempts(strings.TrimSpace(username), t.cfg.MaxAttempts, lockUntil)
	if err != nil {
		t.log.Error().Err(err).Str("username", username).Msg("no se pudo incrementar el contador de fallos")
		return open
	}
	if st == nil {
		return open
	}

	remaining := t.cfg.MaxAttempts - st.FailedAttempts
	if remaining < 0 {
		remaining = 0
	}
	return LockStatus{
		IsLocked:          st.IsLocked,
		RemainingAttempts: remaining,
		LockedUntil:       st.LockedUntil,
	}
}

// RecordSuccessfulAttempt reinicia el contador de fallos a 0. No toca is_locked:
// por protocolo, una verificación de credenciales exitosa solo ocurre con la
// cuenta activa.
func (t *LockoutTracker) RecordSuccessfulAttempt(username string) {
	if err := t.users.ResetFailedAttempts(strings.TrimSpace(username)); err != nil {
		t.log.Error().Err(err).Str("username", username).Msg("no se pudo reiniciar el contador de fallos")
	}
}
