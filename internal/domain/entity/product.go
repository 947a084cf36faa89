package entity

import "time"

// Product representa un producto del inventario. UnitPrice es el precio unitario en
// la moneda base (entero, sin decimales); Quantity es la existencia actual.
// Los cambios de Quantity generan registros en stock_movements.
type Product struct {
	ID         int64
	Name       string
	UnitPrice  int64 // 1..999_999_999
	Quantity   int   // 0..999_999
	CategoryID *int64
	Category   *Category // cargado vía join en listados
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LowStockThreshold umbral por defecto para alertas de stock bajo.
const LowStockThreshold = 10

// IsLowStock indica si el producto está por debajo del umbral.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Quantity < threshold
}
