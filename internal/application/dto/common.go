package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Actor identifica al usuario que ejecuta una operación mutadora.
// Se pasa explícito a cada caso de uso (nada de estado global de sesión);
// se adjunta a registros de auditoría y al libro de movimientos cuando existe.
type Actor struct {
	ID       string
	Username string
	Role     string
}

// ClientInfo datos del cliente HTTP que acompañan los registros de auditoría.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}
