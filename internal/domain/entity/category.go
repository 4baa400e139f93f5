package entity

import "time"

// Category representa una categoría de productos. Su Code es el prefijo de
// los códigos de producto generados.
type Category struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
}
