package inventory

import (
	"context"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la primitiva de atomicidad por fila de
// la que depende el ajuste de stock: lectura, validación del delta y
// escritura de cantidad+estado se confirman o revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
