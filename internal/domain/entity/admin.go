package entity

import "time"

// Admin usuario administrador del panel (tabla admin_info).
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
