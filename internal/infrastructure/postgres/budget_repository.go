package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.BudgetRepository = (*BudgetRepo)(nil)

// BudgetRepo implementação do porto BudgetRepository sobre PostgreSQL
// (cabeçalho + itens; usável com pool ou tx).
type BudgetRepo struct {
	q Querier
}

// NewBudgetRepository constrói o adaptador de persistência para verbas.
func NewBudgetRepository(q Querier) *BudgetRepo {
	return &BudgetRepo{q: q}
}

const budgetColumns = `id, company_id, title, status, total_cash, total_points, total_items,
	cost_center_id, requested_by, approved_by, rejected_by, rejection_reason, rejection_category,
	created_at, updated_at, submitted_at, reviewed_at, released_at, replicated_at`

func scanBudget(row pgx.Row) (*entity.Budget, error) {
	var b entity.Budget
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.Title, &b.Status, &b.TotalCash, &b.TotalPoints, &b.TotalItems,
		&b.CostCenterID, &b.RequestedBy, &b.ApprovedBy, &b.RejectedBy, &b.RejectionReason, &b.RejectionCategory,
		&b.CreatedAt, &b.UpdatedAt, &b.SubmittedAt, &b.ReviewedAt, &b.ReleasedAt, &b.ReplicatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste uma nova verba.
func (r *BudgetRepo) Create(budget *entity.Budget) error {
	query := `
		INSERT INTO budgets (id, company_id, title, status, total_cash, total_points, total_items,
			cost_center_id, requested_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		budget.ID, budget.CompanyID, budget.Title, budget.Status, budget.TotalCash, budget.TotalPoints,
		budget.TotalItems, budget.CostCenterID, budget.RequestedBy, budget.CreatedAt, budget.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	return nil
}

// GetByID obtém uma verba por ID.
func (r *BudgetRepo) GetByID(id string) (*entity.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`
	b, err := scanBudget(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget by id: %w", err)
	}
	return b, nil
}

// GetByIDForUpdate obtém a verba bloqueando a linha (SELECT FOR UPDATE).
// Transições e mutações de itens concorrentes se serializam aqui.
func (r *BudgetRepo) GetByIDForUpdate(id string) (*entity.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1 FOR UPDATE`
	b, err := scanBudget(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget for update: %w", err)
	}
	return b, nil
}

// Update grava o estado completo do cabeçalho.
func (r *BudgetRepo) Update(budget *entity.Budget) error {
	query := `
		UPDATE budgets SET title = $2, status = $3, total_cash = $4, total_points = $5, total_items = $6,
			cost_center_id = $7, approved_by = $8, rejected_by = $9, rejection_reason = $10,
			rejection_category = $11, updated_at = $12, submitted_at = $13, reviewed_at = $14,
			released_at = $15, replicated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		budget.ID, budget.Title, budget.Status, budget.TotalCash, budget.TotalPoints, budget.TotalItems,
		budget.CostCenterID, budget.ApprovedBy, budget.RejectedBy, budget.RejectionReason,
		budget.RejectionCategory, budget.UpdatedAt, budget.SubmittedAt, budget.ReviewedAt,
		budget.ReleasedAt, budget.ReplicatedAt,
	)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

// ListByCompany lista verbas da empresa, com filtro opcional por status.
func (r *BudgetRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets WHERE company_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// CreateItem persiste uma linha da verba.
func (r *BudgetRepo) CreateItem(item *entity.BudgetItem) error {
	query := `
		INSERT INTO budget_items (id, budget_id, base_product_id, qty, unit_price, unit_points,
			subtotal_cash, subtotal_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BudgetID, item.BaseProductID, item.Qty, item.UnitPrice, item.UnitPoints,
		item.SubtotalCash, item.SubtotalPoints, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert budget item: %w", err)
	}
	return nil
}

// GetItem obtém uma linha por ID.
func (r *BudgetRepo) GetItem(itemID string) (*entity.BudgetItem, error) {
	query := `
		SELECT id, budget_id, base_product_id, qty, unit_price, unit_points, subtotal_cash, subtotal_points, created_at, updated_at
		FROM budget_items WHERE id = $1`
	var it entity.BudgetItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&it.ID, &it.BudgetID, &it.BaseProductID, &it.Qty, &it.UnitPrice, &it.UnitPoints,
		&it.SubtotalCash, &it.SubtotalPoints, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget item: %w", err)
	}
	return &it, nil
}

// UpdateItem grava quantidade/valores/subtotais de uma linha.
func (r *BudgetRepo) UpdateItem(item *entity.BudgetItem) error {
	query := `
		UPDATE budget_items SET qty = $2, unit_price = $3, unit_points = $4,
			subtotal_cash = $5, subtotal_points = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Qty, item.UnitPrice, item.UnitPoints, item.SubtotalCash, item.SubtotalPoints, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update budget item: %w", err)
	}
	return nil
}

// DeleteItem exclui uma linha.
func (r *BudgetRepo) DeleteItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM budget_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}
	return nil
}

// ListItems lista as linhas de uma verba na ordem de criação.
func (r *BudgetRepo) ListItems(budgetID string) ([]*entity.BudgetItem, error) {
	query := `
		SELECT id, budget_id, base_product_id, qty, unit_price, unit_points, subtotal_cash, subtotal_points, created_at, updated_at
		FROM budget_items WHERE budget_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BudgetItem
	for rows.Next() {
		var it entity.BudgetItem
		if err := rows.Scan(&it.ID, &it.BudgetID, &it.BaseProductID, &it.Qty, &it.UnitPrice, &it.UnitPoints,
			&it.SubtotalCash, &it.SubtotalPoints, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
