package repository

import "github.com/jhoicas/invorya-panel/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Create persiste el producto y asigna ID y timestamps.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	// List devuelve todos los productos con su categoría, más recientes primero.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	// List devuelve las categorías ordenadas por nombre ascendente.
	List() ([]*entity.Category, error)
}
