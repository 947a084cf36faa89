package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo adaptador append-only del libro de movimientos
// (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento. Los movimientos nunca se actualizan ni se borran.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(product_id, user_id, movement_type, quantity_change, quantity_before, quantity_after, reason, reference_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.UserID, movement.MovementType,
		movement.QuantityChange, movement.QuantityBefore, movement.QuantityAfter,
		nullIfEmpty(movement.Reason), movement.ReferenceNumber, nullIfEmpty(movement.Notes),
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos más recientes primero, con producto y usuario
// resueltos vía join, opcionalmente filtrados por producto.
func (r *StockMovementRepo) List(productID *int64, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.user_id, m.movement_type, m.quantity_change,
		       m.quantity_before, m.quantity_after, COALESCE(m.reason, ''), m.reference_number,
		       COALESCE(m.notes, ''), m.created_at,
		       COALESCE(p.name, ''), COALESCE(u.username, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id`
	args := []any{limit}
	if productID != nil {
		query += ` WHERE m.product_id = $2`
		args = append(args, *productID)
	}
	query += ` ORDER BY m.created_at DESC LIMIT $1`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &m.MovementType, &m.QuantityChange,
			&m.QuantityBefore, &m.QuantityAfter, &m.Reason, &m.ReferenceNumber,
			&m.Notes, &m.CreatedAt, &m.ProductName, &m.Username); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
