package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Quantity y Status solo cambian vía el
// libro de transacciones; aquí se generan el código secuencial y las
// ediciones directas (nombre, unidad, umbral, categoría).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	resolver     repository.ReferenceResolver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, resolver repository.ReferenceResolver) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, resolver: resolver}
}

// Create crea un producto con cantidad 0 y estado out. El código se genera a
// partir del mayor código existente con el prefijo de la categoría, así el
// sucesor nunca salta ni se repite aunque haya inserciones intercaladas de
// otras categorías.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("categoría %s: %w", in.CategoryID, domain.ErrNotFound)
		}
		return nil, err
	}

	last, err := uc.repo.MaxCodeForPrefix(category.Code)
	if err != nil {
		return nil, err
	}
	code, err := inventory.NextCode(category.Code, last)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Code:           code,
		Name:           in.Name,
		Unit:           in.Unit,
		Quantity:       0,
		AlertThreshold: in.AlertThreshold,
		CategoryID:     in.CategoryID,
		StatusID:       inventory.ClassifyStatus(0, in.AlertThreshold),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.hydrateOne(product)
}

// GetByID obtiene un producto hidratado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return uc.hydrateOne(product)
}

// Update edita nombre, unidad, umbral o categoría. Si cambia el umbral se
// reclasifica el estado para mantener la invariante tri-estado. El código no
// cambia al mover de categoría: es histórico.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(*in.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("categoría %s: %w", *in.CategoryID, domain.ErrNotFound)
			}
			return nil, err
		}
		product.CategoryID = *in.CategoryID
	}
	if in.AlertThreshold != nil {
		product.AlertThreshold = *in.AlertThreshold
		product.StatusID = inventory.ClassifyStatus(product.Quantity, product.AlertThreshold)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.hydrateOne(product)
}

// List lista productos (más recientes primero) con referencias hidratadas.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items, err := hydrateProducts(uc.resolver, list)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) hydrateOne(product *entity.Product) (*dto.ProductResponse, error) {
	items, err := hydrateProducts(uc.resolver, []*entity.Product{product})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}
