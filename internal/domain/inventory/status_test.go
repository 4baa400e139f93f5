package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// Casos de borde de la clasificación tri-estado:
// quantity <= 0 -> out; 0 < quantity <= umbral -> low; quantity > umbral -> fine.
func TestClassifyStatus_Bordes(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int64
		threshold int64
		want      string
	}{
		{"cantidad cero es out", 0, 3, entity.StatusOut},
		{"cantidad negativa es out", -2, 3, entity.StatusOut},
		{"igual al umbral es low, no fine", 5, 5, entity.StatusLow},
		{"umbral más uno es fine", 6, 5, entity.StatusFine},
		{"entre cero y umbral es low", 4, 5, entity.StatusLow},
		{"muy por encima del umbral es fine", 10, 5, entity.StatusFine},
		{"umbral cero: cualquier positivo es fine", 1, 0, entity.StatusFine},
		{"cero con umbral cero sigue siendo out", 0, 0, entity.StatusOut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ClassifyStatus(tc.quantity, tc.threshold))
		})
	}
}

// Escenarios de movimiento: la clasificación se aplica sobre la cantidad resultante.
func TestClassifyStatus_Escenarios(t *testing.T) {
	// {quantity: 5, threshold: 5} con delta -5 -> 0 -> out
	assert.Equal(t, entity.StatusOut, inventory.ClassifyStatus(5-5, 5))
	// {quantity: 10, threshold: 5} con delta -6 -> 4 -> low
	assert.Equal(t, entity.StatusLow, inventory.ClassifyStatus(10-6, 5))
	// {quantity: 0, threshold: 3} con delta +10 -> 10 -> fine
	assert.Equal(t, entity.StatusFine, inventory.ClassifyStatus(0+10, 3))
}
