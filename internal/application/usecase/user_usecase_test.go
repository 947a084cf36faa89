package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/application/usecase"
	"github.com/jhoicas/invorya-panel/internal/domain"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// fakeUserRepo cubre el subconjunto del puerto que usa la administración de
// cuentas. duplicate fuerza domain.ErrDuplicate en Create.
type fakeUserRepo struct {
	users     map[string]*entity.User // clave: ID
	duplicate bool
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if r.duplicate {
		return domain.ErrDuplicate
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) LockState(username string) (*entity.LockState, error) { return nil, nil }
func (r *fakeUserRepo) ClearLock(username string) error { return nil }
func (r *fakeUserRepo) IncrementFailedAttempts(username string, maxAttempts int, lockUntil time.Time) (*entity.LockState, error) {
	return nil, nil
}
func (r *fakeUserRepo) ResetFailedAttempts(username string) error   { return nil }
func (r *fakeUserRepo) RecordLogin(id string, at time.Time) error   { return nil }
func (r *fakeUserRepo) TouchActivity(id string, at time.Time) error { return nil }

type userFixture struct {
	uc       *usecase.UserUseCase
	users    *fakeUserRepo
	activity *fakeActivityLogRepo
}

func newUserFixture(t *testing.T, users ...*entity.User) *userFixture {
	t.Helper()
	repo := newFakeUserRepo(users...)
	activity := &fakeActivityLogRepo{}
	log := logger.Nop()
	recorder := audit.NewRecorder(&fakeLoginHistoryRepo{}, activity, log)
	return &userFixture{uc: usecase.NewUserUseCase(repo, recorder, log), users: repo, activity: activity}
}

func validCreateUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "mgarcia",
		Password: "secret99",
		Email:    "mgarcia@example.com",
		FullName: "María García",
		Phone:    "3001234567",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaYRolPorDefecto(t *testing.T) {
	f := newUserFixture(t)

	resp, err := f.uc.Create(testActor, validCreateUser(), testClient)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role, "sin rol explícito se asigna user")

	stored := f.users.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret99", stored.PasswordHash, "la contraseña nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret99")))

	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, entity.ActionUserCreate, f.activity.entries[0].Action)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	f := newUserFixture(t)
	in := validCreateUser()
	in.Role = "superadmin"

	_, err := f.uc.Create(testActor, in, testClient)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_Duplicado(t *testing.T) {
	f := newUserFixture(t)
	f.users.duplicate = true

	_, err := f.uc.Create(testActor, validCreateUser(), testClient)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, f.activity.entries)
}

func TestUserCreate_ValidacionDeUsername(t *testing.T) {
	f := newUserFixture(t)
	in := validCreateUser()
	in.Username = "m!garcia"

	_, err := f.uc.Create(testActor, in, testClient)

	require.Error(t, err)
	ve := domain.AsValidation(err)
	require.NotNil(t, ve)
	assert.Equal(t, "username", ve.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_Parcial(t *testing.T) {
	u := &entity.User{ID: "u-1", Username: "mgarcia", Email: "vieja@example.com", FullName: "María García", Role: entity.RoleUser}
	f := newUserFixture(t, u)

	email := "nueva@example.com"
	role := entity.RoleAdmin
	resp, err := f.uc.Update(testActor, "u-1", dto.UpdateUserRequest{Email: &email, Role: &role}, testClient)

	require.NoError(t, err)
	assert.Equal(t, "nueva@example.com", resp.Email)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
	assert.Equal(t, "María García", resp.FullName, "los campos ausentes no se tocan")
}

func TestUserUpdate_Inexistente(t *testing.T) {
	f := newUserFixture(t)

	email := "nueva@example.com"
	_, err := f.uc.Update(testActor, "u-99", dto.UpdateUserRequest{Email: &email}, testClient)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUpdate_EmailInvalido(t *testing.T) {
	u := &entity.User{ID: "u-1", Username: "mgarcia", Role: entity.RoleUser}
	f := newUserFixture(t, u)

	email := "sin-arroba"
	_, err := f.uc.Update(testActor, "u-1", dto.UpdateUserRequest{Email: &email}, testClient)

	require.Error(t, err)
	require.NotNil(t, domain.AsValidation(err))
}

func TestUserDelete(t *testing.T) {
	u := &entity.User{ID: "u-1", Username: "mgarcia", Role: entity.RoleUser}
	f := newUserFixture(t, u)

	require.NoError(t, f.uc.Delete(testActor, "u-1", testClient))

	assert.Nil(t, f.users.users["u-1"])
	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, entity.ActionUserDelete, f.activity.entries[0].Action)
}
