// Package analytics contiene el núcleo de cómputo del dashboard: todas
// las métricas se recalculan completas desde las colecciones de
// productos y transacciones en cada invocación (sin agregados cacheados).
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

const recentPurchasesLimit = 5 // tamaño del widget de compras recientes

// ComputeDashboard ensambla un snapshot completo del dashboard a partir
// de las colecciones en memoria y un instante de referencia inyectado.
// Es una función total: registros malformados se toleran con valores
// neutros y la llamada nunca produce un snapshot parcial. Puede
// ejecutarse concurrentemente sin estado compartido.
func ComputeDashboard(products []*entity.Product, txs []*entity.Transaction, now time.Time) *dto.DashboardSnapshot {
	idx := NewProductIndex(products)

	return &dto.DashboardSnapshot{
		Metrics:         ComputeMetrics(txs, now),
		MonthlySales:    ComputeMonthlyTrend(txs),
		TopProducts:     RankTopSellers(txs, idx),
		StockAlerts:     ClassifyStockAlerts(products),
		RecentPurchases: recentPurchases(txs, idx),
	}
}

// recentPurchases selecciona las 5 transacciones más recientes por fecha
// descendente (las que no traen fecha ordenan al final) y las enriquece
// con la categoría del catálogo cuando el cruce por nombre resuelve.
func recentPurchases(txs []*entity.Transaction, idx *ProductIndex) []dto.RecentPurchaseDTO {
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
	if len(sorted) > recentPurchasesLimit {
		sorted = sorted[:recentPurchasesLimit]
	}

	recent := make([]dto.RecentPurchaseDTO, 0, len(sorted))
	for _, tx := range sorted {
		category := ""
		if p := idx.ByName(Normalize(tx.ProductName)); p != nil {
			category = p.Category
		}
		recent = append(recent, dto.RecentPurchaseDTO{
			UserID:      tx.UserID,
			ProductName: tx.ProductName,
			Category:    category,
			Price:       tx.Amount(),
			DateTime:    tx.DateTime,
		})
	}
	return recent
}

// DashboardUseCase expone el snapshot a la capa HTTP. Trae las dos
// colecciones del almacén (único punto de suspensión) y delega todo el
// cómputo en ComputeDashboard.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, txRepo: txRepo}
}

// GetSummary construye el DashboardSnapshot del momento actual.
//
// Las dos lecturas son independientes y van en paralelo:
//  1. GetAll productos     → índice, alertas
//  2. GetAll transacciones → métricas, tendencia, top sellers, recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSnapshot, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type txsResult struct {
		txs []*entity.Transaction
		err error
	}

	productsCh := make(chan productsResult, 1)
	txsCh := make(chan txsResult, 1)

	go func() {
		products, err := uc.productRepo.GetAll()
		productsCh <- productsResult{products, err}
	}()
	go func() {
		txs, err := uc.txRepo.GetAll()
		txsCh <- txsResult{txs, err}
	}()

	products := <-productsCh
	txs := <-txsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", txs.err)
	}

	return ComputeDashboard(products.products, txs.txs, time.Now()), nil
}
