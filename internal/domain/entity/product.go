package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados de la cantidad. StockStatus nunca se asigna
// a mano: siempre sale de StatusFromQuantity.
const (
	StatusOutOfStock = "Out of Stock" // stock = 0
	StatusLowStock   = "Low Stock"    // 1 <= stock < 10
	StatusInStock    = "In Stock"     // stock >= 10
)

// Umbral por debajo del cual un producto entra en alerta de stock bajo.
const LowStockThreshold = 10

// Product representa un producto del catálogo (tabla product_info).
// Stock es un entero no negativo; StockStatus es función pura de Stock.
type Product struct {
	ID          string
	Name        string
	Category    string
	Stock       int
	StockStatus string
	Price       decimal.Decimal // precio unitario de venta
	Supplier    string
	CreatedAt   time.Time
	Reviews     decimal.Decimal // calificación promedio (0.0 – 5.0)
}

// StatusFromQuantity deriva el estado de stock desde la cantidad.
// Es la única regla de clasificación: cualquier cambio de cantidad debe
// pasar por aquí para recalcular el estado.
func StatusFromQuantity(qty int) string {
	switch {
	case qty <= 0:
		return StatusOutOfStock
	case qty < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
