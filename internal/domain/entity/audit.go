package entity

import "time"

// Acciones registradas en el log de actividad.
const (
	ActionLogin          = "LOGIN"
	ActionLogout         = "LOGOUT"
	ActionUserCreate     = "USER_CREATE"
	ActionUserUpdate     = "USER_UPDATE"
	ActionUserDelete     = "USER_DELETE"
	ActionProductCreate  = "PRODUCT_CREATE"
	ActionProductUpdate  = "PRODUCT_UPDATE"
	ActionProductDelete  = "PRODUCT_DELETE"
	ActionCategoryCreate = "CATEGORY_CREATE"
)

// LoginHistoryEntry es un registro inmutable de un intento de inicio de sesión.
// UserID es nil cuando el lookup del usuario falló (username desconocido).
type LoginHistoryEntry struct {
	ID            int64
	UserID        *string
	Username      string
	Success       bool
	FailureReason string // vacío en intentos exitosos
	IPAddress     string
	UserAgent     string
	CreatedAt     time.Time
}

// ActivityLogEntry es un registro inmutable de actividad de un usuario autenticado.
type ActivityLogEntry struct {
	ID           int64
	UserID       string
	Username     string
	Action       string
	ResourceType string
	ResourceID   string
	Details      string
	IPAddress    string
	UserAgent    string
	CreatedAt    time.Time
}
