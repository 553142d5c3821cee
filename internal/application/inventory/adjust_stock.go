package inventory

import (
	"context"
	"fmt"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

// AdjustStockUseCase aplica un delta con signo al stock de un producto y
// reclasifica su estado, todo dentro de una transacción con bloqueo de
// fila (SELECT FOR UPDATE). Dos ajustes concurrentes sobre el mismo
// producto se serializan; sobre productos distintos no se bloquean.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustStock aplica el delta al producto indicado.
//
// Contrato:
//   - delta == 0                    → ErrInvalidInput
//   - producto inexistente          → ErrNotFound
//   - cantidad resultante negativa  → ErrInvalidInput (se rechaza, no se
//     recorta a 0; el registro queda intacto)
//   - éxito: cantidad = cantidad + delta, estado recalculado desde la
//     nueva cantidad, ambos confirmados como una sola unidad.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID string, delta int) (*dto.StockUpdateResult, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *dto.StockUpdateResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.TransactionRepository) error {
		// Bloquea la fila del producto para que la validación no lea una
		// cantidad obsoleta frente a otro ajuste en vuelo.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.Stock + delta
		if newQty < 0 {
			return domain.ErrInvalidInput
		}

		status := entity.StatusFromQuantity(newQty)
		if err := productRepo.UpdateStock(productID, newQty, status); err != nil {
			return err
		}

		result = &dto.StockUpdateResult{
			ProductID:   productID,
			Stock:       newQty,
			StockStatus: status,
			Message:     adjustMessage(delta),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// adjustMessage describe el delta aplicado con su signo.
func adjustMessage(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("added %d units", delta)
	}
	return fmt.Sprintf("removed %d units", -delta)
}
