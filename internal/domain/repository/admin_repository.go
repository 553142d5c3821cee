package repository

import (
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin.
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByEmail(email string) (*entity.Admin, error)
}
