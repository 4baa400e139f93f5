package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para el tablero.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) count(query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("contar: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) CountProducts() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM products`)
}

func (r *DashboardRepo) CountProductsByStatus() (map[string]int64, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT status_id, COUNT(*) FROM products GROUP BY status_id`)
	if err != nil {
		return nil, fmt.Errorf("contar por estado: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64, 3)
	for rows.Next() {
		var statusID string
		var n int64
		if err := rows.Scan(&statusID, &n); err != nil {
			return nil, fmt.Errorf("scan conteo: %w", err)
		}
		counts[statusID] = n
	}
	return counts, rows.Err()
}

func (r *DashboardRepo) CountCategories() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM categories`)
}

func (r *DashboardRepo) CountUsers() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM users`)
}

func (r *DashboardRepo) CountTransactionsSince(t time.Time) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM warehouse_transactions WHERE created_at >= $1`, t)
}

// LowStockProducts lista productos en low/out, agotados primero y luego por
// cantidad ascendente.
func (r *DashboardRepo) LowStockProducts(limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE status_id IN ($1, $2)
		ORDER BY CASE status_id WHEN $2 THEN 0 ELSE 1 END, quantity ASC
		LIMIT $3`

	rows, err := r.q.Query(context.Background(), query, entity.StatusLow, entity.StatusOut, limit)
	if err != nil {
		return nil, fmt.Errorf("listar stock bajo: %w", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
