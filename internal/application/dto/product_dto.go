package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price y Stock deben ser positivos; el estado de stock se deriva, nunca se envía.
type CreateProductRequest struct {
	Name     string          `json:"product_name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
	Reviews  decimal.Decimal `json:"reviews"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Stock no se toca por aquí: los ajustes van por el endpoint de stock.
type UpdateProductRequest struct {
	Name     *string          `json:"product_name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Supplier *string          `json:"supplier"`
	Reviews  *decimal.Decimal `json:"reviews"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"product_id"`
	Name        string          `json:"product_name"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	StockStatus string          `json:"stock_status"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	CreatedAt   time.Time       `json:"created_at"`
	Reviews     decimal.Decimal `json:"reviews"`
}

// ProductListResponse listado del catálogo, ordenado por urgencia de stock.
type ProductListResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}

// AdjustStockRequest entrada para ajustar stock (delta con signo, nunca 0).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// StockUpdateResult salida de un ajuste de stock aplicado.
type StockUpdateResult struct {
	ProductID   string `json:"product_id"`
	Stock       int    `json:"stock"`
	StockStatus string `json:"stock_status"`
	Message     string `json:"message"` // ej: "added 5 units" / "removed 3 units"
}
