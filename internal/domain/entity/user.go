package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del panel de inventario.
// PasswordHash es bcrypt; nunca se expone en respuestas ni en la sesión.
type User struct {
	ID                  string
	Username            string // único, 3-50 chars, [A-Za-z0-9_]
	Email               string
	FullName            string
	Phone               string
	PasswordHash        string
	Role                string // admin, user
	FailedLoginAttempts int
	IsLocked            bool
	LockedUntil         *time.Time // presente mientras la cuenta está bloqueada
	LastLogin           *time.Time
	LastActivity        *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// LockState proyección mínima de la cuenta que consume el tracker de bloqueo.
type LockState struct {
	FailedAttempts int
	IsLocked       bool
	LockedUntil    *time.Time
}
