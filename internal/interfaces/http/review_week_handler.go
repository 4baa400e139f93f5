package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// ReviewWeekHandler maneja las notas de revisión semanal (protegido).
type ReviewWeekHandler struct {
	uc *usecase.ReviewWeekUseCase
}

// NewReviewWeekHandler construye el handler.
func NewReviewWeekHandler(uc *usecase.ReviewWeekUseCase) *ReviewWeekHandler {
	return &ReviewWeekHandler{uc: uc}
}

// Create godoc
// @Summary      Crear nota de revisión semanal
// @Tags         review-weeks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewWeekRequest  true  "Nota de revisión"
// @Success      201   {object}  dto.Envelope{data=dto.ReviewWeekResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/review-weeks [post]
func (h *ReviewWeekHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewWeekRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validator.Struct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar notas de revisión
// @Tags         review-weeks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.Envelope{data=dto.ReviewWeekListResponse}
// @Router       /api/review-weeks [get]
func (h *ReviewWeekHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar nota de revisión
// @Tags         review-weeks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/review-weeks/{id} [delete]
func (h *ReviewWeekHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(nil))
}
