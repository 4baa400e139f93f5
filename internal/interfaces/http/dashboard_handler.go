package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// DashboardHandler maneja el tablero y el reporte de stock (protegido).
type DashboardHandler struct {
	uc     *usecase.DashboardUseCase
	report *reports.StockReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, report *reports.StockReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// Summary godoc
// @Summary      Métricas del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.DashboardResponse}
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// StockReport godoc
// @Summary      Descargar reporte de stock en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock [get]
func (h *DashboardHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("stock-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
