package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta de mostrador.
type RecordSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	UserID    string `json:"user_id"`
}

// SaleResponse salida de una venta registrada o listada.
type SaleResponse struct {
	UserID      string          `json:"user_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"product_price"`
	DateTime    *time.Time      `json:"date_time"`
}

// SalesHistoryResponse historial de ventas, más recientes primero.
type SalesHistoryResponse struct {
	Total int            `json:"total"`
	Items []SaleResponse `json:"items"`
}
