package ledger

import (
	"context"
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

// RecordTransactionUseCase registra transacciones de almacén de forma
// transaccional (IMPORT, EXPORT, ADJUST) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. La cabecera entra en la misma
// transacción SQL que los items y las actualizaciones de producto: no
// pueden quedar cabeceras huérfanas.
type RecordTransactionUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
}

// NewRecordTransactionUseCase construye el caso de uso.
func NewRecordTransactionUseCase(txRunner TxRunner, userRepo repository.UserRepository) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{txRunner: txRunner, userRepo: userRepo}
}

// TransactionInput entrada para registrar una transacción.
type TransactionInput struct {
	Title     string
	Type      string
	Note      string
	CreatedBy string
	Items     []ItemInput
}

// ItemInput producto afectado y delta firmado (nunca cero).
type ItemInput struct {
	ProductID      string
	QuantityChange int64
}

// RecordTransaction valida la entrada, bloquea los productos afectados,
// calcula cantidad y estado resultantes por item y persiste cabecera, items
// y productos en una sola transacción SQL. Devuelve el id generado.
//
// Los items se procesan en el orden del caller; items repetidos sobre el
// mismo producto se acumulan secuencialmente (el before del segundo es el
// after del primero).
func (uc *RecordTransactionUseCase) RecordTransaction(ctx context.Context, input TransactionInput) (string, error) {
	if input.Title == "" || input.CreatedBy == "" {
		return "", domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.TransactionTypeImport, entity.TransactionTypeExport, entity.TransactionTypeAdjust:
	default:
		return "", domain.ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return "", domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.QuantityChange == 0 {
			return "", domain.ErrInvalidInput
		}
	}

	creator, err := uc.userRepo.GetByID(input.CreatedBy)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}
	if creator == nil {
		return "", fmt.Errorf("usuario %s: %w", input.CreatedBy, domain.ErrNotFound)
	}

	txID := uuid.New().String()
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Bloquear y cargar todos los productos antes de escribir nada:
		// un product_id inexistente aborta sin dejar mutación alguna.
		quantities := make(map[string]int64, len(input.Items))
		thresholds := make(map[string]int64, len(input.Items))
		for _, item := range input.Items {
			if _, ok := quantities[item.ProductID]; ok {
				continue
			}
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %s: %w", item.ProductID, domain.ErrNotFound)
			}
			quantities[item.ProductID] = product.Quantity
			thresholds[item.ProductID] = product.AlertThreshold
		}

		header := &entity.WarehouseTransaction{
			ID:        txID,
			Title:     input.Title,
			Type:      input.Type,
			Note:      input.Note,
			CreatedBy: input.CreatedBy,
			CreatedAt: now,
		}
		if err := txRepo.CreateHeader(header); err != nil {
			return err
		}

		for i, item := range input.Items {
			before := quantities[item.ProductID]
			after := before + item.QuantityChange
			statusID := inventory.ClassifyStatus(after, thresholds[item.ProductID])

			if err := productRepo.UpdateStock(item.ProductID, after, statusID); err != nil {
				return err
			}
			ledgerItem := &entity.TransactionItem{
				ID:             uuid.New().String(),
				TransactionID:  txID,
				ProductID:      item.ProductID,
				BeforeQuantity: before,
				QuantityChange: item.QuantityChange,
				AfterQuantity:  after,
				Position:       i,
			}
			if err := txRepo.CreateItem(ledgerItem); err != nil {
				return err
			}
			quantities[item.ProductID] = after
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return txID, nil
}

// RecordFromRequest adapta el request HTTP al caso de uso. userID viene del token.
func (uc *RecordTransactionUseCase) RecordFromRequest(ctx context.Context, userID string, in dto.RecordTransactionRequest) (string, error) {
	input := TransactionInput{
		Title:     in.Title,
		Type:      in.Type,
		Note:      in.Note,
		CreatedBy: userID,
		Items:     make([]ItemInput, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, ItemInput{
			ProductID:      item.ProductID,
			QuantityChange: item.QuantityChange,
		})
	}
	return uc.RecordTransaction(ctx, input)
}
