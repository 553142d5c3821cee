package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/dto"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ComputeMetrics calcula el bloque de KPIs del dashboard sobre la
// colección completa de transacciones. El instante de referencia `now`
// se inyecta (no se lee del reloj del sistema) para que los cortes
// "hoy" / "mes actual" sean deterministas y testeables.
//
// Registros incompletos no abortan el cálculo: precio nil suma 0 y
// fecha nil queda fuera de los cortes por fecha.
func ComputeMetrics(txs []*entity.Transaction, now time.Time) dto.DashboardMetrics {
	var total, todayTotal, yesterdayTotal decimal.Decimal
	var monthTotal, prevMonthTotal decimal.Decimal
	todayCount := 0

	yesterday := now.AddDate(0, 0, -1)
	prevYear, prevMonth := previousMonth(now)

	for _, tx := range txs {
		amount := tx.Amount()
		total = total.Add(amount)

		if tx.DateTime == nil {
			continue
		}
		ts := *tx.DateTime
		if sameDay(ts, now) {
			todayTotal = todayTotal.Add(amount)
			todayCount++
		}
		if sameDay(ts, yesterday) {
			yesterdayTotal = yesterdayTotal.Add(amount)
		}
		if ts.Year() == now.Year() && ts.Month() == now.Month() {
			monthTotal = monthTotal.Add(amount)
		}
		if ts.Year() == prevYear && ts.Month() == prevMonth {
			prevMonthTotal = prevMonthTotal.Add(amount)
		}
	}

	return dto.DashboardMetrics{
		TotalSales:           total,
		TotalProductsSold:    len(txs),
		TodaysSalesTotal:     todayTotal,
		TodaysSalesCount:     todayCount,
		RevenueChangePercent: percentChange(todayTotal, yesterdayTotal),
		SalesChangePercent:   percentChange(monthTotal, prevMonthTotal),
	}
}

// percentChange devuelve la variación porcentual de current frente a
// previous, redondeada a 2 decimales. Si previous es 0 devuelve 0: no es
// un error de datos, solo evita la división por cero.
func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// sameDay compara por fecha calendario (año, mes, día).
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// previousMonth devuelve año y mes calendario anteriores a t,
// cruzando correctamente el límite diciembre→enero.
func previousMonth(t time.Time) (int, time.Month) {
	if t.Month() == time.January {
		return t.Year() - 1, time.December
	}
	return t.Year(), t.Month() - 1
}
