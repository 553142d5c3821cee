package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

const topSellersLimit = 5 // tamaño del widget de más vendidos

// RankTopSellers cuenta transacciones por clave normalizada de producto y
// devuelve el top 5 por conteo descendente. Los empates conservan el
// orden de primera aparición en la colección (sort estable solo por
// conteo). El nombre canónico y las reseñas se resuelven contra el
// índice; si el cruce falla, se expone la clave normalizada con reseñas
// en 0 como señal visible del registro sin vincular.
func RankTopSellers(txs []*entity.Transaction, idx *ProductIndex) []dto.TopSellerDTO {
	counts := make(map[string]int)
	var order []string // claves en orden de primera aparición

	for _, tx := range txs {
		key := Normalize(tx.ProductName)
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topSellersLimit {
		order = order[:topSellersLimit]
	}

	top := make([]dto.TopSellerDTO, 0, len(order))
	for _, key := range order {
		entry := dto.TopSellerDTO{Name: key, Count: counts[key], Reviews: decimal.Zero}
		if p := idx.ByName(key); p != nil {
			entry.Name = p.Name
			entry.Reviews = p.Reviews
		}
		top = append(top, entry)
	}
	return top
}
