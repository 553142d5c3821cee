package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL
// (tabla admin_info).
type AdminRepo struct {
	pool *pgxpool.Pool
}

// NewAdminRepository construye el adaptador de persistencia para admins.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// Create persiste un nuevo admin.
func (r *AdminRepo) Create(admin *entity.Admin) error {
	query := `
		INSERT INTO admin_info (admin_id, admin_email, password, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		admin.ID, admin.Email, admin.PasswordHash, admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByEmail obtiene un admin por email. nil si no existe.
func (r *AdminRepo) GetByEmail(email string) (*entity.Admin, error) {
	query := `
		SELECT admin_id, admin_email, password, created_at
		FROM admin_info WHERE admin_email = $1 LIMIT 1`
	var a entity.Admin
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return &a, nil
}
