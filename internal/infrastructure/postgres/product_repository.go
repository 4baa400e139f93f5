package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación PostgreSQL del repositorio de productos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository crea el repositorio sobre un pool o una transacción.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, unit, quantity, alert_threshold, category_id, status_id, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Unit,
		&p.Quantity, &p.AlertThreshold,
		&categoryID, &p.StatusID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, code, name, unit, quantity, alert_threshold, category_id, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Unit,
		product.Quantity, product.AlertThreshold,
		nullableID(product.CategoryID), product.StatusID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila hasta el fin de la transacción en curso.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, unit = $3, alert_threshold = $4, category_id = $5, status_id = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Unit, product.AlertThreshold,
		nullableID(product.CategoryID), product.StatusID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) UpdateStock(id string, quantity int64, statusID string) error {
	query := `UPDATE products SET quantity = $2, status_id = $3, updated_at = NOW() WHERE id = $1`

	tag, err := r.q.Exec(context.Background(), query, id, quantity, statusID)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
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

func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MaxCodeForPrefix ordena por longitud antes que alfabéticamente para que
// AB1000 gane a AB999. Solo considera sufijos numéricos: con prefijos
// solapados (AB y ABC), ABC004 no debe ganar la búsqueda de AB.
func (r *ProductRepo) MaxCodeForPrefix(prefix string) (string, error) {
	query := `
		SELECT code FROM products
		WHERE code ~ ('^' || $1 || '[0-9]+$')
		ORDER BY length(code) DESC, code DESC
		LIMIT 1`

	var code string
	err := r.q.QueryRow(context.Background(), query, regexp.QuoteMeta(prefix)).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("buscar código máximo: %w", err)
	}
	return code, nil
}

// nullableID convierte "" en NULL para columnas FK opcionales.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
