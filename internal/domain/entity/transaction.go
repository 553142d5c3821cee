package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa una venta registrada (tabla transaction_info).
// ProductName es texto libre: NO es una foreign key hacia Product, así que
// el cruce con el catálogo se hace por nombre normalizado (best-effort).
//
// DateTime y Price son opcionales porque los registros históricos pueden
// venir incompletos. Política de valores neutros:
//   - Price nil cuenta como 0 en las sumas.
//   - DateTime nil se omite en los cortes por fecha y ordena al final
//     en listados por recencia.
//
// Una transacción es inmutable una vez creada.
type Transaction struct {
	UserID      string
	ProductName string
	DateTime    *time.Time
	Price       *decimal.Decimal // precio unitario pagado
}

// Amount devuelve el precio pagado o cero si el registro no lo trae.
func (t *Transaction) Amount() decimal.Decimal {
	if t.Price == nil {
		return decimal.Zero
	}
	return *t.Price
}
