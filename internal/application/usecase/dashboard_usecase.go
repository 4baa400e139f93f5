package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase métricas agregadas para el tablero principal.
type DashboardUseCase struct {
	repo     repository.DashboardRepository
	resolver repository.ReferenceResolver
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, resolver repository.ReferenceResolver) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, resolver: resolver}
}

// Summary arma el resumen: totales, productos por estado, transacciones de
// los últimos 7 días y los productos más críticos de stock.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	totalProducts, err := uc.repo.CountProducts()
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.repo.CountProductsByStatus()
	if err != nil {
		return nil, err
	}
	totalCategories, err := uc.repo.CountCategories()
	if err != nil {
		return nil, err
	}
	totalUsers, err := uc.repo.CountUsers()
	if err != nil {
		return nil, err
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	txWeek, err := uc.repo.CountTransactionsSince(weekAgo)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.LowStockProducts(10)
	if err != nil {
		return nil, err
	}
	lowStockItems, err := hydrateProducts(uc.resolver, lowStock)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalProducts:    totalProducts,
		TotalCategories:  totalCategories,
		TotalUsers:       totalUsers,
		ProductsByStatus: byStatus,
		TransactionsWeek: txWeek,
		LowStock:         lowStockItems,
	}, nil
}
