// Package pdf genera el reporte de stock del almacén en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Unidad | Cant | Umbral | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de productos / en alerta / agotados         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 60, Blue: 30}
)

var _ reports.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa reports.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// Generate genera el PDF del reporte de stock y devuelve sus bytes.
func (g *MarotoStockReport) Generate(_ context.Context, generatedAt time.Time, rows []reports.StockRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario completo del almacén", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Unidad", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableRows: una fila por producto; los estados de alerta van en color.
func tableRows(rows []reports.StockRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		statusColor := colorGray
		if r.Quantity <= r.AlertThreshold {
			statusColor = colorAlert
		}
		cell := func(value string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(value, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(r.Code, 2, align.Left),
			cell(r.Name, 4, align.Left),
			cell(r.Unit, 2, align.Left),
			cell(fmt.Sprintf("%d", r.Quantity), 1, align.Right),
			cell(fmt.Sprintf("%d", r.AlertThreshold), 1, align.Right),
			col.New(2).Add(text.New(r.Status, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return result
}

// summaryRow: conteos al pie del reporte.
func summaryRow(rows []reports.StockRow) core.Row {
	var low, out int
	for _, r := range rows {
		switch {
		case r.Quantity <= 0:
			out++
		case r.Quantity <= r.AlertThreshold:
			low++
		}
	}
	resumen := fmt.Sprintf("Productos: %d   |   En alerta: %d   |   Agotados: %d",
		len(rows), low, out)

	return row.New(10).Add(
		col.New(12).Add(
			text.New(resumen, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
