package dto

import "time"

// CreateProductRequest entrada para crear un producto. El código se genera
// con el prefijo de la categoría; la cantidad inicial siempre es 0.
type CreateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Unit           string `json:"unit" validate:"max=50"`
	AlertThreshold int64  `json:"alert_threshold" validate:"min=0"`
	CategoryID     string `json:"category_id" validate:"required,uuid4"`
}

// UpdateProductRequest entrada para editar un producto (sin Quantity ni
// Status: esos solo cambian vía transacciones de almacén).
type UpdateProductRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit           *string `json:"unit" validate:"omitempty,max=50"`
	AlertThreshold *int64  `json:"alert_threshold" validate:"omitempty,min=0"`
	CategoryID     *string `json:"category_id" validate:"omitempty,uuid4"`
}

// CategoryRef categoría embebida en respuestas hidratadas.
type CategoryRef struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusRef estado embebido en respuestas hidratadas.
type StatusRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProductResponse salida de un producto con referencias hidratadas.
// Category/Status son null si la referencia falta o apunta a un documento inexistente.
type ProductResponse struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	Unit           string       `json:"unit"`
	Quantity       int64        `json:"quantity"`
	AlertThreshold int64        `json:"alert_threshold"`
	Category       *CategoryRef `json:"category"`
	Status         *StatusRef   `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
