package usecase

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/domain"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/internal/domain/validation"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// UserUseCase administración de cuentas (solo admin): listado con proyección
// pública, alta con hash bcrypt, edición parcial y borrado.
type UserUseCase struct {
	users repository.UserRepository
	audit *audit.Recorder
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, recorder *audit.Recorder, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, audit: recorder, log: log}
}

// List devuelve todas las cuentas sin hash ni contador de intentos.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.users.List()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar usuarios")
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create valida todos los campos, hashea la contraseña con bcrypt y persiste la
// cuenta. Username o email duplicado retorna domain.ErrDuplicate.
func (uc *UserUseCase) Create(actor dto.Actor, in dto.CreateUserRequest, client dto.ClientInfo) (*dto.UserResponse, error) {
	if err := validation.Username(in.Username); err != nil {
		return nil, err
	}
	if err := validation.Password(in.Password); err != nil {
		return nil, err
	}
	if err := validation.Email(in.Email); err != nil {
		return nil, err
	}
	if err := validation.FullName(in.FullName); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error().Err(err).Msg("hashear contraseña")
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.users.Create(user); err != nil {
		if err != domain.ErrDuplicate {
			uc.log.Error().Err(err).Msg("crear usuario")
		}
		return nil, err
	}

	uc.audit.Activity(actor, entity.ActionUserCreate, "USER", user.ID, "Created user "+user.Username, client)
	resp := toUserResponse(user)
	return &resp, nil
}

// Update aplica una edición parcial: solo valida y escribe los campos presentes.
// La contraseña y el username no se editan por esta vía.
func (uc *UserUseCase) Update(actor dto.Actor, id string, in dto.UpdateUserRequest, client dto.ClientInfo) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("lookup de usuario en edición")
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Email != nil {
		if err := validation.Email(*in.Email); err != nil {
			return nil, err
		}
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.FullName != nil {
		if err := validation.FullName(*in.FullName); err != nil {
			return nil, err
		}
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		if *in.Role != entity.RoleUser && *in.Role != entity.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}

	if err := uc.users.Update(user); err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("actualizar usuario")
		return nil, err
	}

	uc.audit.Activity(actor, entity.ActionUserUpdate, "USER", user.ID, "Updated user "+user.Username, client)
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete elimina la cuenta por ID.
func (uc *UserUseCase) Delete(actor dto.Actor, id string, client dto.ClientInfo) error {
	if err := uc.users.Delete(id); err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("eliminar usuario")
		return err
	}
	uc.audit.Activity(actor, entity.ActionUserDelete, "USER", id, "", client)
	return nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      u.Role,
		IsLocked:  u.IsLocked,
		LastLogin: u.LastLogin,
	}
}
