package entity

import "time"

// Category agrupa productos. Color e Icon son metadatos de presentación
// que el panel consume tal cual.
type Category struct {
	ID          int64
	Name        string // único, 2-100 chars
	Description string
	Color       string
	Icon        string
	CreatedAt   time.Time
}
