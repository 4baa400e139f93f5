package ledger

import (
	"errors"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ListTransactionsUseCase lado de lectura del libro: lista transacciones con
// sus items y resuelve las referencias (creador, producto de cada item) en
// lote vía el resolver inyectado. Referencias a documentos eliminados
// hidratan como null.
type ListTransactionsUseCase struct {
	txRepo   repository.TransactionRepository
	resolver repository.ReferenceResolver
}

// NewListTransactionsUseCase construye el caso de uso de lectura.
func NewListTransactionsUseCase(txRepo repository.TransactionRepository, resolver repository.ReferenceResolver) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{txRepo: txRepo, resolver: resolver}
}

// List devuelve transacciones ordenadas por fecha de creación descendente,
// hidratadas.
func (uc *ListTransactionsUseCase) List(limit, offset int) (*dto.TransactionListResponse, error) {
	headers, err := uc.txRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items, err := uc.hydrate(headers)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID devuelve una transacción hidratada.
func (uc *ListTransactionsUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	header, err := uc.txRepo.GetByID(id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("transacción %s: %w", id, domain.ErrNotFound)
	}
	hydrated, err := uc.hydrate([]*entity.WarehouseTransaction{header})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

func (uc *ListTransactionsUseCase) hydrate(headers []*entity.WarehouseTransaction) ([]dto.TransactionResponse, error) {
	txIDs := make([]string, 0, len(headers))
	userIDs := make([]string, 0, len(headers))
	for _, h := range headers {
		txIDs = append(txIDs, h.ID)
		if h.CreatedBy != "" {
			userIDs = append(userIDs, h.CreatedBy)
		}
	}

	itemsByTx, err := uc.txRepo.ItemsByTransactionIDs(txIDs)
	if err != nil {
		return nil, err
	}
	productIDs := make([]string, 0)
	for _, items := range itemsByTx {
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
	}

	users, err := uc.resolver.UsersByID(userIDs)
	if err != nil {
		return nil, err
	}
	products, err := uc.resolver.ProductsByID(productIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionResponse, 0, len(headers))
	for _, h := range headers {
		resp := dto.TransactionResponse{
			ID:        h.ID,
			Title:     h.Title,
			Type:      h.Type,
			Note:      h.Note,
			Creator:   toUserRef(users[h.CreatedBy]),
			Items:     make([]dto.TransactionItemResponse, 0, len(itemsByTx[h.ID])),
			CreatedAt: h.CreatedAt,
		}
		for _, item := range itemsByTx[h.ID] {
			resp.Items = append(resp.Items, dto.TransactionItemResponse{
				ID:             item.ID,
				Product:        toProductRef(products[item.ProductID]),
				BeforeQuantity: item.BeforeQuantity,
				QuantityChange: item.QuantityChange,
				AfterQuantity:  item.AfterQuantity,
			})
		}
		out = append(out, resp)
	}
	return out, nil
}

func toUserRef(u *entity.User) *dto.UserRef {
	if u == nil {
		return nil
	}
	return &dto.UserRef{ID: u.ID, Code: u.Code, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toProductRef(p *entity.Product) *dto.ProductRef {
	if p == nil {
		return nil
	}
	return &dto.ProductRef{ID: p.ID, Code: p.Code, Name: p.Name, Unit: p.Unit}
}
