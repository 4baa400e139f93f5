package inventory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ClassifyStatus clasifica el estado de stock de un producto.
// El orden de evaluación es fijo: out tiene precedencia sobre low cuando
// ambos umbrales se cruzan a la vez, y la igualdad con el umbral es low.
func ClassifyStatus(quantity, alertThreshold int64) string {
	switch {
	case quantity <= 0:
		return entity.StatusOut
	case quantity <= alertThreshold:
		return entity.StatusLow
	default:
		return entity.StatusFine
	}
}
