package postgres

import (
	"context"
	"fmt"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.PointsTransactionRepository = (*PointsTransactionRepo)(nil)

// PointsTransactionRepo implementação do razão de pontos sobre PostgreSQL.
// A tabela é append-only: não existem UPDATE nem DELETE aqui.
type PointsTransactionRepo struct {
	q Querier
}

// NewPointsTransactionRepository constrói o adaptador do razão.
func NewPointsTransactionRepository(q Querier) *PointsTransactionRepo {
	return &PointsTransactionRepo{q: q}
}

// Create persiste um lançamento.
func (r *PointsTransactionRepo) Create(tx *entity.PointsTransaction) error {
	query := `
		INSERT INTO points_transactions (id, user_id, company_id, type, amount, description, order_number, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.UserID, tx.CompanyID, tx.Type, tx.Amount, tx.Description, tx.OrderNumber,
		tx.CreatedAt, tx.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert points transaction: %w", err)
	}
	return nil
}

// ListByUser lista lançamentos do usuário, mais recentes primeiro.
func (r *PointsTransactionRepo) ListByUser(userID string, limit, offset int) ([]*entity.PointsTransaction, error) {
	query := `
		SELECT id, user_id, company_id, type, amount, description, order_number, created_at, created_by
		FROM points_transactions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list points transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.PointsTransaction
	for rows.Next() {
		var t entity.PointsTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CompanyID, &t.Type, &t.Amount, &t.Description, &t.OrderNumber, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan points transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumByUser devolve créditos − débitos do usuário (fonte da verdade do saldo).
func (r *PointsTransactionRepo) SumByUser(userID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE -amount END), 0)
		FROM points_transactions WHERE user_id = $1`
	var sum int64
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum points transactions: %w", err)
	}
	return sum, nil
}
