package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Code es el prefijo
// de los códigos de producto (ej. "AB").
type CreateCategoryRequest struct {
	Code string `json:"code" validate:"required,alpha,uppercase,min=1,max=10"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateCategoryRequest entrada para editar una categoría. El código no se
// edita: los productos existentes ya lo llevan en su código.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
