package inventory

import (
	"context"

	"github.com/jhoicas/invorya-panel/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la actualización de cantidad y el registro del
// movimiento se confirmen en un único commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error) error
}
