package repository

import (
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock confirma cantidad y estado como una sola escritura.
	// Es la primitiva atómica de la que depende el ajuste de stock.
	UpdateStock(productID string, quantity int, status string) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar ajustes concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	Delete(id string) error
}
