package analytics

import (
	"sort"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// Niveles de severidad de las alertas de stock.
const (
	AlertCritical = "critical" // stock agotado
	AlertWarning  = "warning"  // stock bajo (1-9)
)

// ClassifyStockAlerts clasifica cada producto por severidad de stock:
// cantidad 0 → critical, 1-9 → warning, >= 10 no genera alerta.
// El resultado va ordenado por urgencia: primero critical, luego warning,
// y dentro de cada nivel por cantidad ascendente. A diferencia de los
// widgets top-5, la lista no se recorta: se devuelve completa.
func ClassifyStockAlerts(products []*entity.Product) []dto.StockAlertDTO {
	alerts := make([]dto.StockAlertDTO, 0)
	for _, p := range products {
		if p.Stock >= entity.LowStockThreshold {
			continue
		}
		level := AlertWarning
		if p.Stock == 0 {
			level = AlertCritical
		}
		alerts = append(alerts, dto.StockAlertDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			Level:     level,
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Stock < alerts[j].Stock
	})
	return alerts
}

// RankProducts aplica el orden de urgencia de las alertas al catálogo
// completo: agotados primero, luego stock bajo, luego sanos; dentro de
// cada banda por cantidad ascendente. Lo usa el listado de inventario.
func RankProducts(products []*entity.Product) []*entity.Product {
	ranked := make([]*entity.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		bi, bj := severityBand(ranked[i].Stock), severityBand(ranked[j].Stock)
		if bi != bj {
			return bi < bj
		}
		return ranked[i].Stock < ranked[j].Stock
	})
	return ranked
}

// severityBand: 0 = agotado, 1 = bajo, 2 = sano.
func severityBand(qty int) int {
	switch {
	case qty == 0:
		return 0
	case qty < entity.LowStockThreshold:
		return 1
	default:
		return 2
	}
}
