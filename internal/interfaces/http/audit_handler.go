package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/application/inventory"
)

// AuditHandler expone los listados de auditoría: historial de logins,
// log de actividad y libro de movimientos de stock.
type AuditHandler struct {
	recorder *audit.Recorder
	ledger   *inventory.StockLedger
}

// NewAuditHandler construye el handler de auditoría.
func NewAuditHandler(recorder *audit.Recorder, ledger *inventory.StockLedger) *AuditHandler {
	return &AuditHandler{recorder: recorder, ledger: ledger}
}

// LoginHistory godoc
// @Summary      Historial de intentos de login, más reciente primero
// @Tags         audit
// @Produce      json
// @Param        user_id  query  string  false  "filtrar por usuario"
// @Param        limit    query  int     false  "máximo de filas (default 50)"
// @Success      200  {array}  dto.LoginHistoryResponse
// @Router       /api/audit/login-history [get]
func (h *AuditHandler) LoginHistory(c *fiber.Ctx) error {
	entries, err := h.recorder.LoginHistory(optionalString(c, "user_id"), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to load login history"})
	}
	return c.JSON(entries)
}

// ActivityLogs godoc
// @Summary      Log de actividad administrativa, más reciente primero
// @Tags         audit
// @Produce      json
// @Param        user_id  query  string  false  "filtrar por usuario"
// @Param        limit    query  int     false  "máximo de filas (default 50)"
// @Success      200  {array}  dto.ActivityLogResponse
// @Router       /api/audit/activity [get]
func (h *AuditHandler) ActivityLogs(c *fiber.Ctx) error {
	entries, err := h.recorder.ActivityLogs(optionalString(c, "user_id"), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to load activity logs"})
	}
	return c.JSON(entries)
}

// StockMovements godoc
// @Summary      Libro de movimientos de stock, más reciente primero
// @Tags         audit
// @Produce      json
// @Param        product_id  query  int  false  "filtrar por producto"
// @Param        limit       query  int  false  "máximo de filas (default 100)"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/stock-movements [get]
func (h *AuditHandler) StockMovements(c *fiber.Ctx) error {
	var productID *int64
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "product_id inválido"})
		}
		productID = &id
	}
	movements, err := h.ledger.Movements(productID, c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to load stock movements"})
	}
	return c.JSON(movements)
}

func optionalString(c *fiber.Ctx, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
