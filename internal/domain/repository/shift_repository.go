package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ShiftRepository puerto de persistencia del tablero de horarios.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	// List devuelve turnos cuyo rango de fechas se solapa con [from, to].
	// from/to nil = sin límite por ese lado.
	List(from, to *time.Time) ([]*entity.Shift, error)
	Delete(id string) error
}
