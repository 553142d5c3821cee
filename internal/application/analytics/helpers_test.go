package analytics_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// tx construye una transacción completa para los tests.
func tx(name string, when time.Time, price float64) *entity.Transaction {
	p := decimal.NewFromFloat(price)
	return &entity.Transaction{
		UserID:      "u1",
		ProductName: name,
		DateTime:    &when,
		Price:       &p,
	}
}

// txSinFecha construye una transacción sin fecha (legajo incompleto).
func txSinFecha(name string, price float64) *entity.Transaction {
	p := decimal.NewFromFloat(price)
	return &entity.Transaction{UserID: "u1", ProductName: name, Price: &p}
}

// txSinPrecio construye una transacción sin precio.
func txSinPrecio(name string, when time.Time) *entity.Transaction {
	return &entity.Transaction{UserID: "u1", ProductName: name, DateTime: &when}
}
