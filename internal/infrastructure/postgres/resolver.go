package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReferenceResolver = (*Resolver)(nil)

// Resolver resuelve referencias en lote con una sola consulta por tipo.
// Los ids inexistentes simplemente no aparecen en el mapa.
type Resolver struct {
	q Querier
}

func NewResolver(q Querier) *Resolver {
	return &Resolver{q: q}
}

func (r *Resolver) CategoriesByID(ids []string) (map[string]*entity.Category, error) {
	result := make(map[string]*entity.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT id, code, name, created_at FROM categories WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("resolver categorías: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		result[c.ID] = &c
	}
	return result, rows.Err()
}

func (r *Resolver) StatusesByID(ids []string) (map[string]*entity.Status, error) {
	result := make(map[string]*entity.Status, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT id, label FROM statuses WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("resolver estados: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s entity.Status
		if err := rows.Scan(&s.ID, &s.Label); err != nil {
			return nil, fmt.Errorf("scan estado: %w", err)
		}
		result[s.ID] = &s
	}
	return result, rows.Err()
}

func (r *Resolver) UsersByID(ids []string) (map[string]*entity.User, error) {
	result := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("resolver usuarios: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result[u.ID] = u
	}
	return result, rows.Err()
}

func (r *Resolver) ProductsByID(ids []string) (map[string]*entity.Product, error) {
	result := make(map[string]*entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("resolver productos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	return result, rows.Err()
}

// dedupe elimina duplicados y vacíos preservando el orden.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
