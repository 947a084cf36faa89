package entity

import "time"

// Tipos de movimiento de stock.
// ADJUSTMENT existe en el modelo pero los flujos de alta/edición de producto nunca lo
// producen (los cambios con delta cero no generan registro).
const (
	MovementTypeIN         = "IN"
	MovementTypeOUT        = "OUT"
	MovementTypeADJUSTMENT = "ADJUSTMENT"
)

// StockMovement es un registro inmutable del historial de existencias.
// Invariante: QuantityAfter = QuantityBefore + QuantityChange.
type StockMovement struct {
	ID              int64
	ProductID       int64
	UserID          *string // actor; nil cuando no hay usuario asociado
	MovementType    string  // IN, OUT, ADJUSTMENT
	QuantityChange  int     // con signo
	QuantityBefore  int
	QuantityAfter   int
	Reason          string
	ReferenceNumber string // {TYPE}-{productID}-{epochMillis}, unicidad best-effort
	Notes           string
	CreatedAt       time.Time

	// Cargados vía join en listados.
	ProductName string
	Username    string
}
