package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// ComputeMonthlyTrend acumula el ingreso por mes calendario en 12 cubetas
// (índice = mes - 1). La agregación cruza todos los años presentes en los
// datos: marzo de 2024 y marzo de 2025 caen en la misma cubeta.
// Transacciones sin fecha o sin precio se omiten, no son un error.
func ComputeMonthlyTrend(txs []*entity.Transaction) [12]decimal.Decimal {
	var buckets [12]decimal.Decimal
	for _, tx := range txs {
		if tx.DateTime == nil || tx.Price == nil {
			continue
		}
		m := int(tx.DateTime.Month()) - 1
		buckets[m] = buckets[m].Add(*tx.Price)
	}
	return buckets
}
