package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// DashboardRepository consultas agregadas para el tablero.
type DashboardRepository interface {
	CountProducts() (int64, error)
	CountProductsByStatus() (map[string]int64, error)
	CountCategories() (int64, error)
	CountUsers() (int64, error)
	CountTransactionsSince(t time.Time) (int64, error)
	// LowStockProducts lista productos en estado low u out, los más críticos primero.
	LowStockProducts(limit int) ([]*entity.Product, error)
}
