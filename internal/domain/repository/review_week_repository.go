package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ReviewWeekRepository puerto de persistencia para notas de revisión semanal.
type ReviewWeekRepository interface {
	Create(review *entity.ReviewWeek) error
	GetByID(id string) (*entity.ReviewWeek, error)
	List(limit, offset int) ([]*entity.ReviewWeek, error)
	Delete(id string) error
}
