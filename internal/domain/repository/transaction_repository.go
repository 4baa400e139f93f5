package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// TransactionRepository puerto de persistencia del libro de transacciones.
// Solo inserciones y lecturas: las transacciones nunca se mutan ni se borran.
type TransactionRepository interface {
	CreateHeader(tx *entity.WarehouseTransaction) error
	CreateItem(item *entity.TransactionItem) error
	GetByID(id string) (*entity.WarehouseTransaction, error)
	List(limit, offset int) ([]*entity.WarehouseTransaction, error)
	// ItemsByTransactionIDs devuelve los items agrupados por transacción,
	// en su orden original (position).
	ItemsByTransactionIDs(ids []string) (map[string][]*entity.TransactionItem, error)
}
