package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación PostgreSQL del libro de transacciones.
// Solo inserta y lee: las filas nunca se actualizan ni se borran.
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.WarehouseTransaction, error) {
	var tx entity.WarehouseTransaction
	var createdBy *string
	err := row.Scan(&tx.ID, &tx.Title, &tx.Type, &tx.Note, &createdBy, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan transacción: %w", err)
	}
	if createdBy != nil {
		tx.CreatedBy = *createdBy
	}
	return &tx, nil
}

func (r *TransactionRepo) CreateHeader(tx *entity.WarehouseTransaction) error {
	query := `
		INSERT INTO warehouse_transactions (id, title, type, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.Title, tx.Type, tx.Note, nullableID(tx.CreatedBy), tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insertar cabecera: %w", err)
	}
	return nil
}

func (r *TransactionRepo) CreateItem(item *entity.TransactionItem) error {
	query := `
		INSERT INTO transaction_items (id, transaction_id, product_id, before_quantity, quantity_change, after_quantity, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransactionID, item.ProductID,
		item.BeforeQuantity, item.QuantityChange, item.AfterQuantity, item.Position)
	if err != nil {
		return fmt.Errorf("insertar item: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(id string) (*entity.WarehouseTransaction, error) {
	query := `SELECT id, title, type, note, created_by, created_at FROM warehouse_transactions WHERE id = $1`
	return scanTransaction(r.q.QueryRow(context.Background(), query, id))
}

func (r *TransactionRepo) List(limit, offset int) ([]*entity.WarehouseTransaction, error) {
	query := `
		SELECT id, title, type, note, created_by, created_at
		FROM warehouse_transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	defer rows.Close()

	txs := make([]*entity.WarehouseTransaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *TransactionRepo) ItemsByTransactionIDs(ids []string) (map[string][]*entity.TransactionItem, error) {
	result := make(map[string][]*entity.TransactionItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		SELECT id, transaction_id, product_id, before_quantity, quantity_change, after_quantity, position
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position`

	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("consultar items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.TransactionItem
		err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID,
			&item.BeforeQuantity, &item.QuantityChange, &item.AfterQuantity, &item.Position)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		result[item.TransactionID] = append(result[item.TransactionID], &item)
	}
	return result, rows.Err()
}
