package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invorya-panel/internal/application/auth"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo implementa repository.UserRepository sobre un mapa por username.
// Reproduce el contrato del almacén real: lookups inexistentes devuelven
// (nil, nil) y el incremento de fallos es una operación única que dispara el
// bloqueo al alcanzar el máximo.
type fakeUserRepo struct {
	users map[string]*entity.User // clave: username

	lockStateErr   error // fuerza fallo de LockState
	incrementErr   error // fuerza fallo de IncrementFailedAttempts
	lockStateCalls int

	clearLockCalls int
	resetCalls     int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
		}
	}
	return nil
}

func (r *fakeUserRepo) LockState(username string) (*entity.LockState, error) {
	r.lockStateCalls++
	if r.lockStateErr != nil {
		return nil, r.lockStateErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &entity.LockState{
		FailedAttempts: u.FailedLoginAttempts,
		IsLocked:       u.IsLocked,
		LockedUntil:    u.LockedUntil,
	}, nil
}

func (r *fakeUserRepo) ClearLock(username string) error {
	r.clearLockCalls++
	if u, ok := r.users[username]; ok {
		u.IsLocked = false
		u.LockedUntil = nil
		u.FailedLoginAttempts = 0
	}
	return nil
}

func (r *fakeUserRepo) IncrementFailedAttempts(username string, maxAttempts int, lockUntil time.Time) (*entity.LockState, error) {
	if r.incrementErr != nil {
		return nil, r.incrementErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		u.IsLocked = true
		until := lockUntil
		u.LockedUntil = &until
	}
	return &entity.LockState{
		FailedAttempts: u.FailedLoginAttempts,
		IsLocked:       u.IsLocked,
		LockedUntil:    u.LockedUntil,
	}, nil
}

func (r *fakeUserRepo) ResetFailedAttempts(username string) error {
	r.resetCalls++
	if u, ok := r.users[username]; ok {
		u.FailedLoginAttempts = 0
	}
	return nil
}

func (r *fakeUserRepo) RecordLogin(id string, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			t := at
			u.LastLogin = &t
			u.LastActivity = &t
		}
	}
	return nil
}

func (r *fakeUserRepo) TouchActivity(id string, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			t := at
			u.LastActivity = &t
		}
	}
	return nil
}

// hashFor genera un hash bcrypt para los usuarios de test.
func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func activeUser(t *testing.T, username, password string) *entity.User {
	t.Helper()
	return &entity.User{
		ID:           "00000000-0000-0000-0000-0000000000aa",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hashFor(t, password),
		Role:         entity.RoleUser,
	}
}

func newTracker(repo *fakeUserRepo) *auth.LockoutTracker {
	return auth.NewLockoutTracker(repo, auth.LockoutConfig{}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LockoutTracker
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckLockStatus_CuentaActiva(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jlopez", "secret99"))
	tracker := newTracker(repo)

	st := tracker.CheckLockStatus("jlopez")

	assert.False(t, st.IsLocked)
	assert.Equal(t, auth.DefaultMaxLoginAttempts, st.RemainingAttempts)
	assert.Nil(t, st.LockedUntil)
}

// Usuario inexistente: el tracker falla abierto y deja que la verificación de
// credenciales produzca el fallo.
func TestCheckLockStatus_UsuarioInexistente_FallaAbierto(t *testing.T) {
	tracker := newTracker(newFakeUserRepo())

	st := tracker.CheckLockStatus("fantasma")

	assert.False(t, st.IsLocked)
	assert.Equal(t, auth.DefaultMaxLoginAttempts, st.RemainingAttempts)
}

// Error del almacén: mismo comportamiento, nunca se bloquea el login por un
// fallo de lectura.
func TestCheckLockStatus_ErrorDeAlmacen_FallaAbierto(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jlopez", "secret99"))
	repo.lockStateErr = errors.New("conexión perdida")
	tracker := newTracker(repo)

	st := tracker.CheckLockStatus("jlopez")

	assert.False(t, st.IsLocked)
	assert.Equal(t, auth.DefaultMaxLoginAttempts, st.RemainingAttempts)
}

func TestCheckLockStatus_BloqueoVigente(t *testing.T) {
	u := activeUser(t, "jlopez", "secret99")
	u.FailedLoginAttempts = 3
	u.IsLocked = true
	until := time.Now().Add(10 * time.Minute)
	u.LockedUntil = &until
	tracker := newTracker(newFakeUserRepo(u))

	st := tracker.CheckLockStatus("jlopez")

	assert.True(t, st.IsLocked)
	assert.Equal(t, 0, st.RemainingAttempts)
	require.NotNil(t, st.LockedUntil)
	assert.WithinDuration(t, until, *st.LockedUntil, time.Second)
}

// Bloqueo expirado: auto-desbloqueo perezoso en la misma consulta, con el
// contador reiniciado en el almacén.
func TestCheckLockStatus_BloqueoExpirado_AutoDesbloquea(t *testing.T) {
	u := activeUser(t, "jlopez", "secret99")
	u.FailedLoginAttempts = 3
	u.IsLocked = true
	until := time.Now().Add(-time.Minute)
	u.LockedUntil = &until
	repo := newFakeUserRepo(u)
	tracker := newTracker(repo)

	st := tracker.CheckLockStatus("jlopez")

	assert.False(t, st.IsLocked)
	assert.Equal(t, auth.DefaultMaxLoginAttempts, st.RemainingAttempts)
	assert.Equal(t, 1, repo.clearLockCalls)
	assert.False(t, u.IsLocked, "el desbloqueo debe persistirse")
	assert.Equal(t, 0, u.FailedLoginAttempts)
}

// El estado que devuelve cada incremento es el autoritativo del intento:
// sin re-lectura, los restantes y el bloqueo salen del RETURNING.
func TestRecordFailedAttempt_TercerFalloBloquea(t *testing.T) {
	u := activeUser(t, "jlopez", "secret99")
	repo := newFakeUserRepo(u)
	tracker := newTracker(repo)

	st := tracker.RecordFailedAttempt("jlopez")
	assert.False(t, st.IsLocked)
	assert.Equal(t, 2, st.RemainingAttempts)

	st = tracker.RecordFailedAttempt("jlopez")
	assert.False(t, st.IsLocked, "dos fallos no deben bloquear")
	assert.Equal(t, 1, st.RemainingAttempts)

	st = tracker.RecordFailedAttempt("jlopez")
	assert.True(t, st.IsLocked, "el tercer fallo debe bloquear")
	assert.Equal(t, 0, st.RemainingAttempts)
	require.NotNil(t, st.LockedUntil)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultLockoutDuration), *st.LockedUntil, 2*time.Second)

	assert.True(t, u.IsLocked, "el bloqueo debe persistirse")
	assert.Equal(t, 0, repo.lockStateCalls, "el incremento no re-lee el estado")
}

// Fallo del incremento o cuenta inexistente: se responde Activa, mismo
// fail-open que la lectura de estado.
func TestRecordFailedAttempt_FallaAbierto(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "jlopez", "secret99"))
	repo.incrementErr = errors.New("conexión perdida")
	tracker := newTracker(repo)

	st := tracker.RecordFailedAttempt("jlopez")
	assert.False(t, st.IsLocked)
	assert.Equal(t, auth.DefaultMaxLoginAttempts, st.RemainingAttempts)

	st = newTracker(newFakeUserRepo()).RecordFailedAttempt("fantasma")
	assert.False(t, st.IsLocked)
	assert.Equal(t, auth.DefaultMaxLoginAttempts, st.RemainingAttempts)
}

func TestRecordSuccessfulAttempt_ReiniciaContador(t *testing.T) {
	u := activeUser(t, "jlopez", "secret99")
	u.FailedLoginAttempts = 2
	repo := newFakeUserRepo(u)
	tracker := newTracker(repo)

	tracker.RecordSuccessfulAttempt("jlopez")

	assert.Equal(t, 0, u.FailedLoginAttempts)
	assert.Equal(t, 1, repo.resetCalls)
}

// La config en cero cae a los defaults del producto.
func TestNewLockoutTracker_DefaultsDelProducto(t *testing.T) {
	tracker := auth.NewLockoutTracker(newFakeUserRepo(), auth.LockoutConfig{}, logger.Nop())
	assert.Equal(t, 3, tracker.MaxAttempts())
}
