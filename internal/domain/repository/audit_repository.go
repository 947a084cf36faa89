package repository

import "github.com/jhoicas/invorya-panel/internal/domain/entity"

// LoginHistoryRepository puerto append-only del historial de logins.
// Las entradas nunca se actualizan ni se borran desde la aplicación.
type LoginHistoryRepository interface {
	Create(entry *entity.LoginHistoryEntry) error
	// List devuelve las entradas más recientes primero, opcionalmente filtradas por usuario.
	List(userID *string, limit int) ([]*entity.LoginHistoryEntry, error)
}

// ActivityLogRepository puerto append-only del log de actividad.
type ActivityLogRepository interface {
	Create(entry *entity.ActivityLogEntry) error
	List(userID *string, limit int) ([]*entity.ActivityLogEntry, error)
}

// StockMovementRepository puerto append-only del historial de movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve los movimientos más recientes primero, opcionalmente filtrados
	// por producto, con nombre de producto y username resueltos vía join.
	List(productID *int64, limit int) ([]*entity.StockMovement, error)
}
