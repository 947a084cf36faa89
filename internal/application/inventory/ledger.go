// Package inventory mantiene el libro de movimientos de stock: la secuencia
// append-only de registros que derivan de los cambios de cantidad de producto.
package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// Razones estándar de los movimientos derivados de mutaciones de producto.
const (
	ReasonInitialStock  = "Initial stock"
	ReasonProductUpdate = "Product update"
)

// DefaultListLimit límite por defecto del listado de movimientos.
const DefaultListLimit = 100

// MovementForChange deriva el registro de movimiento para un cambio de cantidad.
// Devuelve nil cuando before==after (sin cambio no hay registro) o cuando no hay
// actor: el libro exige un usuario responsable. El tipo sale del signo del delta;
// ADJUSTMENT queda reservado y esta ruta nunca lo produce.
func MovementForChange(productID int64, actorID string, before, after int, reason, notes string) *entity.StockMovement {
	if actorID == "" || before == after {
		return nil
	}
	change := after - before
	movementType := entity.MovementTypeIN
	if change < 0 {
		movementType = entity.MovementTypeOUT
	}
	return &entity.StockMovement{
		ProductID:       productID,
		UserID:          &actorID,
		MovementType:    movementType,
		QuantityChange:  change,
		QuantityBefore:  before,
		QuantityAfter:   after,
		Reason:          reason,
		ReferenceNumber: referenceNumber(movementType, productID),
		Notes:           notes,
	}
}

// referenceNumber sintetiza {TYPE}-{productID}-{epochMillis}. Unicidad best-effort:
// dos escrituras en el mismo milisegundo pueden colisionar.
func referenceNumber(movementType string, productID int64) string {
	return fmt.Sprintf("%s-%d-%d", movementType, productID, time.Now().UnixMilli())
}

// StockLedger caso de uso del libro de movimientos: alta best-effort fuera de
// transacción (ruta de creación de producto) y listado.
type StockLedger struct {
	movements repository.StockMovementRepository
	log       *logger.Logger
}

// NewStockLedger construye el caso de uso.
func NewStockLedger(movements repository.StockMovementRepository, log *logger.Logger) *StockLedger {
	return &StockLedger{movements: movements, log: log}
}

// RecordInitialStock registra la entrada IN del stock inicial de un producto recién
// creado. Sin actor o con cantidad 0 no se escribe nada. El insert del producto ya
// está confirmado cuando se llega aquí, así que un fallo del libro se loguea y se
// traga: la creación del producto sigue siendo exitosa.
func (l *StockLedger) RecordInitialStock(product *entity.Product, actorID string) {
	if actorID == "" || product.Quantity <= 0 {
		return
	}
	notes := fmt.Sprintf("Product created with initial stock of %d units", product.Quantity)
	mov := MovementForChange(product.ID, actorID, 0, product.Quantity, ReasonInitialStock, notes)
	if mov == nil {
		return
	}
	if err := l.movements.Create(mov); err != nil {
		l.log.Error().Err(err).Int64("product_id", product.ID).Msg("no se pudo registrar el stock inicial")
	}
}

// Movements lista el libro, opcionalmente filtrado por producto.
func (l *StockLedger) Movements(productID *int64, limit int) ([]dto.StockMovementResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	list, err := l.movements.List(productID, limit)
	if err != nil {
		l.log.Error().Err(err).Msg("listar movimientos de stock")
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:              m.ID,
			ProductID:       m.ProductID,
			ProductName:     m.ProductName,
			UserID:          m.UserID,
			Username:        m.Username,
			MovementType:    m.MovementType,
			QuantityChange:  m.QuantityChange,
			QuantityBefore:  m.QuantityBefore,
			QuantityAfter:   m.QuantityAfter,
			Reason:          m.Reason,
			ReferenceNumber: m.ReferenceNumber,
			Notes:           m.Notes,
			CreatedAt:       m.CreatedAt,
		})
	}
	return out, nil
}
