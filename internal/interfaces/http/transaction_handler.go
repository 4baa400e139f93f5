package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/infrastructure/metrics"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// TransactionHandler maneja el libro de transacciones de almacén (protegido).
type TransactionHandler struct {
	record *ledger.RecordTransactionUseCase
	list   *ledger.ListTransactionsUseCase
	m      *metrics.Metrics
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(record *ledger.RecordTransactionUseCase, list *ledger.ListTransactionsUseCase, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{record: record, list: list, m: m}
}

// Record godoc
// @Summary      Registrar transacción de almacén
// @Description  Aplica los deltas de stock de todos los items en una sola operación atómica.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "Transacción con items"
// @Success      201   {object}  dto.Envelope{data=dto.RecordTransactionResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/warehouse-transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := validator.Struct(in); err != nil {
		return badRequest(c, err.Error())
	}
	id, err := h.record.RecordFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.m.RecordTransaction(in.Type, len(in.Items))
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.RecordTransactionResponse{ID: id}))
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.Envelope{data=dto.TransactionListResponse}
// @Router       /api/warehouse-transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.list.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.Envelope{data=dto.TransactionResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/warehouse-transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	out, err := h.list.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
