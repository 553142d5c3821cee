package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSnapshot respuesta de GET /api/dashboard/summary.
// Es un valor derivado: se recalcula completo en cada llamada a partir de
// las colecciones de productos y transacciones; nunca se persiste.
type DashboardSnapshot struct {
	Metrics DashboardMetrics `json:"metrics"`

	// Ingresos acumulados por mes calendario (índice 0 = enero),
	// agregados a través de todos los años presentes en los datos.
	MonthlySales [12]decimal.Decimal `json:"monthly_sales"`

	// Top 5 productos por número de transacciones.
	TopProducts []TopSellerDTO `json:"top_products"`

	// Alertas de stock ordenadas por urgencia (sin tope de longitud).
	StockAlerts []StockAlertDTO `json:"stock_alerts"`

	// Últimas 5 compras por fecha descendente.
	RecentPurchases []RecentPurchaseDTO `json:"recent_purchases"`
}

// DashboardMetrics bloque de KPIs del dashboard.
type DashboardMetrics struct {
	TotalSales           decimal.Decimal `json:"total_sales"`            // suma de precios de todas las transacciones
	TotalProductsSold    int             `json:"total_products_sold"`    // número de transacciones
	TodaysSalesTotal     decimal.Decimal `json:"todays_sales_total"`     // suma de las ventas con fecha de hoy
	TodaysSalesCount     int             `json:"todays_sales_count"`     // conteo de las ventas con fecha de hoy
	RevenueChangePercent decimal.Decimal `json:"revenue_change_percent"` // hoy vs ayer; 0 si ayer fue 0
	SalesChangePercent   decimal.Decimal `json:"sales_change_percent"`   // mes actual vs mes anterior; 0 si el anterior fue 0
}

// TopSellerDTO entrada del widget de más vendidos.
// Si el nombre de la transacción no cruza con el catálogo, Name trae la
// clave normalizada y Reviews queda en 0 (señal visible de cruce fallido).
type TopSellerDTO struct {
	Name    string          `json:"product_name"`
	Count   int             `json:"sales_count"`
	Reviews decimal.Decimal `json:"reviews"`
}

// StockAlertDTO alerta de stock de un producto.
type StockAlertDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"product_name"`
	Stock     int    `json:"stock"`
	Level     string `json:"level"` // critical (stock 0) | warning (1-9)
}

// RecentPurchaseDTO compra reciente enriquecida con la categoría del
// catálogo cuando el cruce por nombre resuelve (vacía si no).
type RecentPurchaseDTO struct {
	UserID      string          `json:"user_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	DateTime    *time.Time      `json:"date_time"`
}
