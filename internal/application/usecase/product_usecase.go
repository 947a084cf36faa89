package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/application/inventory"
	"github.com/jhoicas/invorya-panel/internal/domain"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/internal/domain/validation"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// ProductUseCase CRUD de productos. Los cambios de cantidad alimentan el libro de
// movimientos: el alta escribe el stock inicial best-effort y la edición registra
// el delta dentro de la misma transacción que la actualización.
type ProductUseCase struct {
	products repository.ProductRepository
	txRunner inventory.TxRunner
	ledger   *inventory.StockLedger
	audit    *audit.Recorder
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	txRunner inventory.TxRunner,
	ledger *inventory.StockLedger,
	recorder *audit.Recorder,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{products: products, txRunner: txRunner, ledger: ledger, audit: recorder, log: log}
}

// List devuelve todos los productos con su categoría.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar productos")
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// LowStock devuelve los productos con existencia bajo el umbral (default 10).
func (uc *ProductUseCase) LowStock(threshold int) ([]dto.ProductResponse, error) {
	if threshold <= 0 {
		threshold = entity.LowStockThreshold
	}
	list, err := uc.products.List()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar productos con stock bajo")
		return nil, err
	}
	out := make([]dto.ProductResponse, 0)
	for _, p := range list {
		if p.IsLowStock(threshold) {
			out = append(out, toProductResponse(p))
		}
	}
	return out, nil
}

// Create valida, persiste el producto y, con cantidad inicial > 0 y actor presente,
// registra la entrada "Initial stock" en el libro (best-effort, ya fuera del insert).
func (uc *ProductUseCase) Create(actor dto.Actor, in dto.SaveProductRequest, client dto.ClientInfo) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       strings.TrimSpace(in.Name),
		UnitPrice:  in.UnitPrice,
		Quantity:   in.Quantity,
		CategoryID: in.CategoryID,
	}
	if err := uc.products.Create(product); err != nil {
		uc.log.Error().Err(err).Msg("crear producto")
		return nil, err
	}

	uc.ledger.RecordInitialStock(product, actor.ID)
	uc.audit.Activity(actor, entity.ActionProductCreate, "PRODUCT", strconv.FormatInt(product.ID, 10),
		fmt.Sprintf("Created product %q", product.Name), client)

	resp := toProductResponse(product)
	return &resp, nil
}

// Update valida y aplica la edición en una única transacción: lee la cantidad
// previa con bloqueo de fila (SELECT FOR UPDATE), actualiza el producto y, si la
// cantidad cambió y hay actor, inserta el movimiento con el delta firmado. Un solo
// commit: si el registro del movimiento falla, la edición también se revierte.
func (uc *ProductUseCase) Update(ctx context.Context, actor dto.Actor, id int64, in dto.SaveProductRequest, client dto.ClientInfo) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error {
		product, err := products.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		before := product.Quantity
		product.Name = strings.TrimSpace(in.Name)
		product.UnitPrice = in.UnitPrice
		product.Quantity = in.Quantity
		product.CategoryID = in.CategoryID
		if err := products.Update(product); err != nil {
			return err
		}

		notes := fmt.Sprintf("Stock updated from %d to %d units", before, product.Quantity)
		if mov := inventory.MovementForChange(product.ID, actor.ID, before, product.Quantity, inventory.ReasonProductUpdate, notes); mov != nil {
			if err := movements.Create(mov); err != nil {
				return err
			}
		}

		updated = product
		return nil
	})
	if err != nil {
		if err != domain.ErrNotFound {
			uc.log.Error().Err(err).Int64("product_id", id).Msg("actualizar producto")
		}
		return nil, err
	}

	uc.audit.Activity(actor, entity.ActionProductUpdate, "PRODUCT", strconv.FormatInt(id, 10),
		fmt.Sprintf("Updated product %q", updated.Name), client)

	resp := toProductResponse(updated)
	return &resp, nil
}

// Delete elimina el producto. El borrado no genera movimiento en el libro.
func (uc *ProductUseCase) Delete(actor dto.Actor, id int64, client dto.ClientInfo) error {
	if err := uc.products.Delete(id); err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("eliminar producto")
		return err
	}
	uc.audit.Activity(actor, entity.ActionProductDelete, "PRODUCT", strconv.FormatInt(id, 10), "", client)
	return nil
}

func validateProduct(in dto.SaveProductRequest) error {
	if err := validation.ProductName(in.Name); err != nil {
		return err
	}
	if err := validation.Price(in.UnitPrice); err != nil {
		return err
	}
	return validation.Quantity(in.Quantity)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		Quantity:   p.Quantity,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Category != nil {
		resp.Category = &dto.CategoryResponse{
			ID:          p.Category.ID,
			Name:        p.Category.Name,
			Description: p.Category.Description,
			Color:       p.Category.Color,
			Icon:        p.Category.Icon,
		}
	}
	return resp
}
