package dto

import "time"

// SaveProductRequest entrada para crear o actualizar un producto.
// El alta y la edición reciben el mismo cuerpo completo.
type SaveProductRequest struct {
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	CategoryID *int64 `json:"category_id"`
}

// ProductResponse salida de un producto con su categoría resuelta.
type ProductResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	UnitPrice  int64             `json:"unit_price"`
	Quantity   int               `json:"quantity"`
	CategoryID *int64            `json:"category_id,omitempty"`
	Category   *CategoryResponse `json:"category,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
