package entity

import "time"

// Product representa un producto del almacén. Quantity y StatusID se mutan
// únicamente vía el libro de transacciones; el resto por edición directa.
type Product struct {
	ID             string
	Code           string // código visible, ej. "AB007" (prefijo de categoría + secuencia)
	Name           string
	Unit           string // unidad o variante: "caja x12", "kg", etc.
	Quantity       int64
	AlertThreshold int64
	CategoryID     string // vacío si no tiene categoría
	StatusID       string // fine | low | out
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
