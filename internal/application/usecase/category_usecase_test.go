package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Código repetido rechaza el alta: el código es el prefijo de los productos.
func TestCategoryCreate_CodigoDuplicado(t *testing.T) {
	repo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		catBebidasID: {ID: catBebidasID, Code: "BE", Name: "Bebidas"},
	}}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Code: "BE", Name: "Bebidas frías"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// Un fallo real del store en la verificación de código se propaga, no se
// interpreta como "código libre".
func TestCategoryCreate_FalloDeStoreSePropaga(t *testing.T) {
	repo := &fakeCategoryRepo{
		categories: map[string]*entity.Category{},
		codeErr:    errors.New("conexión perdida"),
	}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Code: "BE", Name: "Bebidas"})
	require.EqualError(t, err, "conexión perdida")
	assert.Empty(t, repo.categories, "no debe quedar categoría creada")
}
