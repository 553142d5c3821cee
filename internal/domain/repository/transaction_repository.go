package repository

import (
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction.
// Las transacciones son inmutables: solo se crean y se leen.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetAll() ([]*entity.Transaction, error)
}
