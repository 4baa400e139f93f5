package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Quantity/StatusID solo se escriben vía UpdateStock (motor del libro de transacciones).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción SQL.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, quantity int64, statusID string) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
	// MaxCodeForPrefix devuelve el mayor código de producto con ese prefijo,
	// o "" si no existe ninguno.
	MaxCodeForPrefix(prefix string) (string, error)
}
