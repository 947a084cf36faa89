package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorya-panel/internal/application/auth"
	"github.com/jhoicas/invorya-panel/internal/application/dto"
)

// AuthHandler maneja inicio de sesión y heartbeat de actividad.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "username, password"
// @Success      200   {object}  dto.SignInResult
// @Failure      401   {object}  dto.SignInResult
// @Failure      423   {object}  dto.SignInResult
// @Router       /api/auth/login [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result := h.uc.SignIn(in, GetClientInfo(c))
	if result.Success {
		return c.JSON(result)
	}
	// El cuerpo siempre lleva el resultado estructurado; el status solo lo clasifica.
	status := fiber.StatusUnauthorized
	if result.Locked {
		status = fiber.StatusLocked
	}
	return c.Status(status).JSON(result)
}

// Heartbeat godoc
// @Summary      Actualizar last_activity del usuario autenticado
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/heartbeat [post]
func (h *AuthHandler) Heartbeat(c *fiber.Ctx) error {
	h.uc.UpdateActivity(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
