package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ReferenceResolver resuelve campos referencia en lote para la hidratación
// de listados. Los mapas omiten ids inexistentes: el caller hidrata esas
// referencias como null. Las lecturas no mutan nada.
type ReferenceResolver interface {
	CategoriesByID(ids []string) (map[string]*entity.Category, error)
	StatusesByID(ids []string) (map[string]*entity.Status, error)
	UsersByID(ids []string) (map[string]*entity.User, error)
	ProductsByID(ids []string) (map[string]*entity.Product, error)
}
