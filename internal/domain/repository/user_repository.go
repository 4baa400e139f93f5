package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia para el personal.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// MaxCodeForPrefix devuelve el mayor código de miembro con ese prefijo, o "".
	MaxCodeForPrefix(prefix string) (string, error)
}

// RoleRepository consulta los roles sembrados.
type RoleRepository interface {
	Exists(id string) (bool, error)
}
