package dto

// SignInRequest credenciales de inicio de sesión.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSession proyección pública de la cuenta para la sesión del panel.
// Excluye el hash de contraseña y el contador de intentos; conserva is_locked.
type UserSession struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	IsLocked bool   `json:"is_locked"`
}

// SignInResult resultado estructurado del intento de login. El core nunca propaga
// fallos del almacén al llamador: siempre responde con esta forma.
type SignInResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	// Locked marca los rechazos por cuenta bloqueada, sea cual sea el mensaje;
	// la capa HTTP clasifica el status con este flag, no con el texto.
	Locked            bool         `json:"locked,omitempty"`
	RemainingAttempts int          `json:"remaining_attempts,omitempty"`
	Token             string       `json:"token,omitempty"`
	User              *UserSession `json:"user,omitempty"`
}
