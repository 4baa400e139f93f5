package entity

import "time"

// Tipos de transacción de almacén.
const (
	TransactionTypeImport = "IMPORT"
	TransactionTypeExport = "EXPORT"
	TransactionTypeAdjust = "ADJUST"
)

// WarehouseTransaction es la cabecera de una transacción de almacén.
// Se crea una sola vez junto con sus items y nunca se muta (libro append-only).
type WarehouseTransaction struct {
	ID        string
	Title     string
	Type      string // IMPORT, EXPORT, ADJUST
	Note      string
	CreatedBy string // UserID; vacío si el usuario fue eliminado
	CreatedAt time.Time
}

// TransactionItem registra el efecto de la transacción sobre un producto:
// cantidad antes, delta firmado y cantidad después. Siempre cumple
// BeforeQuantity + QuantityChange == AfterQuantity.
type TransactionItem struct {
	ID             string
	TransactionID  string
	ProductID      string
	BeforeQuantity int64
	QuantityChange int64
	AfterQuantity  int64
	Position       int // orden dentro de la transacción, según el caller
}
