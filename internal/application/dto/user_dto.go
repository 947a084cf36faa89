package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // user, admin
}

// UpdateUserRequest entrada parcial para editar un usuario. Solo se validan y
// aplican los campos presentes. La contraseña no se edita por esta vía.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}

// UserResponse salida de un usuario para el listado de administración
// (sin hash ni contador de intentos).
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	FullName  string     `json:"full_name,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	IsLocked  bool       `json:"is_locked"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
