// Package auth implementa el inicio de sesión del panel: validación de campos,
// máquina de estados de bloqueo por intentos fallidos y auditoría de cada intento.
package auth

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/internal/domain/validation"
	"github.com/jhoicas/invorya-panel/pkg/jwt"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// Mensajes de fallo de login visibles para el usuario.
const (
	msgUserNotFound = "User not found"
	msgLockedPrev   = "Account is temporarily locked due to multiple failed login attempts. Please try again later."
	msgLockedNow    = "Account has been locked due to multiple failed login attempts. Please try again in 15 minutes."
	msgLockedStale  = "Account is locked. Please contact admin or try again later."
	msgAuthUnavail  = "Authentication service unavailable"
	reasonLocked    = "Account locked"
	reasonBadCreds  = "Invalid credentials"
	reasonNotFound  = "User not found"
)

// JWTConfig configuración para la emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase orquesta el inicio de sesión: validación, tracker de bloqueo,
// verificación bcrypt y auditoría.
type AuthUseCase struct {
	users   repository.UserRepository
	lockout *LockoutTracker
	audit   *audit.Recorder
	jwtCfg  JWTConfig
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, lockout *LockoutTracker, recorder *audit.Recorder, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, lockout: lockout, audit: recorder, jwtCfg: jwtCfg, log: log}
}

// SignIn ejecuta el protocolo de login, en orden estricto:
//
//  1. Validación de forma de username y password. Si falla: retorno inmediato,
//     sin auditoría ni consulta de bloqueo.
//  2. Estado de bloqueo. Bloqueada: se audita y se retorna sin comparar credenciales.
//  3. Lookup de la cuenta. Inexistente: se audita sin user_id.
//  4. Verificación bcrypt. Fallo: se audita y se incrementa el contador; el estado
//     que devuelve el incremento atómico informa los intentos restantes o el
//     bloqueo recién disparado.
//  5. Guardia contra flag de bloqueo obsoleto que pasó la verificación.
//  6. Éxito: contador a 0, last_login/last_activity, historial + actividad LOGIN,
//     token de sesión y proyección pública de la cuenta.
//
// Nunca retorna error: los fallos del almacén se traducen a un resultado con
// Success=false y la causa queda solo en el log del operador.
func (uc *AuthUseCase) SignIn(in dto.SignInRequest, client dto.ClientInfo) *dto.SignInResult {
	if err := validation.Username(in.Username); err != nil {
		return &dto.SignInResult{Success: false, Error: err.Error()}
	}
	if err := validation.Password(in.Password); err != nil {
		return &dto.SignInResult{Success: false, Error: err.Error()}
	}

	username := strings.TrimSpace(in.Username)

	status := uc.lockout.CheckLockStatus(username)
	if status.IsLocked {
		uc.audit.LoginAttempt(username, false, nil, reasonLocked, client)
		return &dto.SignInResult{Success: false, Error: msgLockedPrev, Locked: true}
	}

	user, err := uc.users.GetByUsername(username)
	if err != nil {
		uc.log.Error().Err(err).Str("username", username).Msg("lookup de usuario en login")
	}
	if err != nil || user == nil {
		uc.audit.LoginAttempt(username, false, nil, reasonNotFound, client)
		return &dto.SignInResult{Success: false, Error: msgUserNotFound}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		uc.audit.LoginAttempt(username, false, &user.ID, reasonBadCreds, client)

		updated := uc.lockout.RecordFailedAttempt(username)
		if updated.RemainingAttempts > 0 {
			return &dto.SignInResult{
				Success:           false,
				Error:             fmt.Sprintf("Invalid password. %d attempt(s) remaining before account lockout.", updated.RemainingAttempts),
				RemainingAttempts: updated.RemainingAttempts,
			}
		}
		// El bloqueo lo disparó este mismo intento.
		return &dto.SignInResult{Success: false, Error: msgLockedNow, Locked: true}
	}

	// Flag de bloqueo obsoleto: pasó el chequeo inicial pero la fila dice bloqueada.
	if user.IsLocked {
		uc.audit.LoginAttempt(username, false, &user.ID, reasonLocked, client)
		return &dto.SignInResult{Success: false, Error: msgLockedStale, Locked: true}
	}

	uc.lockout.RecordSuccessfulAttempt(username)
	if err := uc.users.RecordLogin(user.ID, time.Now()); err != nil {
		uc.log.Error().Err(err).Str("user_id", user.ID).Msg("no se pudo actualizar last_login")
	}
	uc.audit.LoginAttempt(username, true, &user.ID, "", client)
	uc.audit.Activity(dto.Actor{ID: user.ID, Username: user.Username, Role: user.Role}, entity.ActionLogin, "AUTH", user.ID, "", client)

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		uc.log.Error().Err(err).Msg("emisión de token de sesión")
		return &dto.SignInResult{Success: false, Error: msgAuthUnavail}
	}

	return &dto.SignInResult{
		Success: true,
		Token:   token,
		User: &dto.UserSession{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Phone:    user.Phone,
			Role:     user.Role,
			IsLocked: user.IsLocked,
		},
	}
}

// UpdateActivity actualiza last_activity del usuario (heartbeat del idle-timer).
func (uc *AuthUseCase) UpdateActivity(userID string) {
	if err := uc.users.TouchActivity(userID, time.Now()); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("no se pudo actualizar last_activity")
	}
}
