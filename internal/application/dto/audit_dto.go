package dto

import "time"

// LoginHistoryResponse entrada del historial de logins.
type LoginHistoryResponse struct {
	ID            int64     `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	Username      string    `json:"username"`
	Success       bool      `json:"success"`
	FailureReason string    `json:"failure_reason,omitempty"`
	IPAddress     string    `json:"ip_address,omitempty"`
	UserAgent     string    `json:"user_agent,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ActivityLogResponse entrada del log de actividad.
type ActivityLogResponse struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Details      string    `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockMovementResponse entrada del libro de movimientos de stock.
type StockMovementResponse struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	ProductName     string    `json:"product_name,omitempty"`
	UserID          *string   `json:"user_id,omitempty"`
	Username        string    `json:"username,omitempty"`
	MovementType    string    `json:"movement_type"`
	QuantityChange  int       `json:"quantity_change"`
	QuantityBefore  int       `json:"quantity_before"`
	QuantityAfter   int       `json:"quantity_after"`
	Reason          string    `json:"reason,omitempty"`
	ReferenceNumber string    `json:"reference_number"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
