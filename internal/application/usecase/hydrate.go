package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// hydrateProducts resuelve en lote las referencias de categoría y estado de
// una lista de productos. Referencias ausentes o rotas quedan como null en la
// respuesta; la lectura no muta nada, así que hidratar dos veces da lo mismo.
func hydrateProducts(resolver repository.ReferenceResolver, products []*entity.Product) ([]dto.ProductResponse, error) {
	categoryIDs := make([]string, 0, len(products))
	statusIDs := make([]string, 0, len(products))
	for _, p := range products {
		if p.CategoryID != "" {
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
		if p.StatusID != "" {
			statusIDs = append(statusIDs, p.StatusID)
		}
	}

	categories, err := resolver.CategoriesByID(categoryIDs)
	if err != nil {
		return nil, err
	}
	statuses, err := resolver.StatusesByID(statusIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID:             p.ID,
			Code:           p.Code,
			Name:           p.Name,
			Unit:           p.Unit,
			Quantity:       p.Quantity,
			AlertThreshold: p.AlertThreshold,
			Category:       toCategoryRef(categories[p.CategoryID]),
			Status:         toStatusRef(statuses[p.StatusID]),
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}
	return out, nil
}

func toCategoryRef(c *entity.Category) *dto.CategoryRef {
	if c == nil {
		return nil
	}
	return &dto.CategoryRef{ID: c.ID, Code: c.Code, Name: c.Name, CreatedAt: c.CreatedAt}
}

func toStatusRef(s *entity.Status) *dto.StatusRef {
	if s == nil {
		return nil
	}
	return &dto.StatusRef{ID: s.ID, Label: s.Label}
}

func toUserRef(u *entity.User) *dto.UserRef {
	if u == nil {
		return nil
	}
	return &dto.UserRef{ID: u.ID, Code: u.Code, Name: u.Name, Email: u.Email, Role: u.Role}
}
