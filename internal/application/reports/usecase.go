package reports

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockRow un renglón del reporte de stock.
type StockRow struct {
	Code           string
	Name           string
	Unit           string
	Quantity       int64
	AlertThreshold int64
	Status         string // etiqueta legible del estado
}

// StockReportGenerator puerto de generación del PDF del reporte.
type StockReportGenerator interface {
	Generate(ctx context.Context, generatedAt time.Time, rows []StockRow) ([]byte, error)
}

// StockReportUseCase arma el reporte de stock a partir del inventario completo.
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	resolver    repository.ReferenceResolver
	generator   StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(productRepo repository.ProductRepository, resolver repository.ReferenceResolver, generator StockReportGenerator) *StockReportUseCase {
	return &StockReportUseCase{productRepo: productRepo, resolver: resolver, generator: generator}
}

// Generate devuelve los bytes del PDF con todos los productos, más críticos
// en el orden natural del listado (más recientes primero).
func (uc *StockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List(10000, 0)
	if err != nil {
		return nil, err
	}

	statusIDs := make([]string, 0, len(products))
	for _, p := range products {
		statusIDs = append(statusIDs, p.StatusID)
	}
	statuses, err := uc.resolver.StatusesByID(statusIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]StockRow, 0, len(products))
	for _, p := range products {
		label := p.StatusID
		if s := statuses[p.StatusID]; s != nil {
			label = s.Label
		}
		rows = append(rows, StockRow{
			Code:           p.Code,
			Name:           p.Name,
			Unit:           p.Unit,
			Quantity:       p.Quantity,
			AlertThreshold: p.AlertThreshold,
			Status:         label,
		})
	}
	return uc.generator.Generate(ctx, time.Now(), rows)
}
