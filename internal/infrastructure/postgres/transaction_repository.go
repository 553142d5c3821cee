package postgres

import (
	"context"
	"fmt"

	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/entity"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (tabla transaction_info; usable con pool o tx).
//
// date_time y product_price son nullable: los registros históricos pueden
// venir incompletos y el núcleo analítico los tolera con valores neutros.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva transacción de venta.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transaction_info (user_id, product_name, date_time, product_price)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		tx.UserID, tx.ProductName, tx.DateTime, tx.Price,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetAll devuelve la colección completa de transacciones.
func (r *TransactionRepo) GetAll() ([]*entity.Transaction, error) {
	query := `SELECT user_id, product_name, date_time, product_price FROM transaction_info`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.UserID, &t.ProductName, &t.DateTime, &t.Price); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
