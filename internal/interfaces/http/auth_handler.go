package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/infrastructure/metrics"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// AuthHandler maneja el login del personal.
type AuthHandler struct {
	uc *auth.AuthUseCase
	m  *metrics.Metrics
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, m: m}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validator.Struct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Login(in)
	if err != nil {
		h.m.RecordLogin(false)
		return respondError(c, err)
	}
	h.m.RecordLogin(true)
	return c.JSON(dto.OK(out))
}
