package dto

import "time"

// RecordTransactionRequest entrada para registrar una transacción de almacén.
// created_by sale del token, no del body.
type RecordTransactionRequest struct {
	Title string                   `json:"title" validate:"required,min=1,max=200"`
	Type  string                   `json:"type" validate:"required,oneof=IMPORT EXPORT ADJUST"`
	Note  string                   `json:"note"`
	Items []TransactionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransactionItemRequest un renglón de la transacción: producto y delta firmado.
type TransactionItemRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid4"`
	QuantityChange int64  `json:"quantity_change" validate:"required"`
}

// RecordTransactionResponse salida del registro: id generado.
type RecordTransactionResponse struct {
	ID string `json:"id"`
}

// UserRef usuario embebido en respuestas hidratadas.
type UserRef struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProductRef producto embebido en items de transacción hidratados.
type ProductRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// TransactionItemResponse item hidratado. Product es null si el producto fue eliminado.
type TransactionItemResponse struct {
	ID             string      `json:"id"`
	Product        *ProductRef `json:"product"`
	BeforeQuantity int64       `json:"before_quantity"`
	QuantityChange int64       `json:"quantity_change"`
	AfterQuantity  int64       `json:"after_quantity"`
}

// TransactionResponse transacción hidratada con sus items en orden original.
// Creator es null si el usuario fue eliminado.
type TransactionResponse struct {
	ID        string                    `json:"id"`
	Title     string                    `json:"title"`
	Type      string                    `json:"type"`
	Note      string                    `json:"note"`
	Creator   *UserRef                  `json:"creator"`
	Items     []TransactionItemResponse `json:"items"`
	CreatedAt time.Time                 `json:"created_at"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
