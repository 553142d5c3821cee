// Package sales registra ventas de mostrador: descuenta stock y escribe
// las transacciones en la misma transacción de BD.
package sales

import (
	"context"
	"sort"
	"time"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/inventory"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

// SalesUseCase casos de uso de ventas: registrar una venta y listar el
// historial. La venta reutiliza la misma primitiva transaccional que el
// ajuste de stock (bloqueo de fila + commit conjunto).
type SalesUseCase struct {
	txRunner inventory.TxRunner
	txRepo   repository.TransactionRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(txRunner inventory.TxRunner, txRepo repository.TransactionRepository) *SalesUseCase {
	return &SalesUseCase{txRunner: txRunner, txRepo: txRepo}
}

// RecordSale descuenta `quantity` unidades del producto y escribe una
// transacción por unidad vendida al precio unitario vigente (las métricas
// cuentan transacciones, así que cada unidad vendida es un registro).
// Falla con ErrInsufficientStock si el stock disponible no alcanza; el
// descuento y los registros se confirman juntos o no se confirma nada.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}

		newQty := product.Stock - in.Quantity
		if err := productRepo.UpdateStock(product.ID, newQty, entity.StatusFromQuantity(newQty)); err != nil {
			return err
		}

		now := time.Now()
		price := product.Price
		for i := 0; i < in.Quantity; i++ {
			ts := now
			p := price
			if err := txRepo.Create(&entity.Transaction{
				UserID:      in.UserID,
				ProductName: product.Name,
				DateTime:    &ts,
				Price:       &p,
			}); err != nil {
				return err
			}
		}

		out = &dto.SaleResponse{
			UserID:      in.UserID,
			ProductName: product.Name,
			Price:       price,
			DateTime:    &now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetHistory devuelve el historial de ventas, más recientes primero
// (las transacciones sin fecha ordenan al final).
func (uc *SalesUseCase) GetHistory(ctx context.Context) (*dto.SalesHistoryResponse, error) {
	txs, err := uc.txRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sorted := make([]*entity.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].DateTime, sorted[j].DateTime
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})

	items := make([]dto.SaleResponse, 0, len(sorted))
	for _, tx := range sorted {
		items = append(items, dto.SaleResponse{
			UserID:      tx.UserID,
			ProductName: tx.ProductName,
			Price:       tx.Amount(),
			DateTime:    tx.DateTime,
		})
	}
	return &dto.SalesHistoryResponse{Total: len(items), Items: items}, nil
}
