package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/genautech/yoobe-store-api/internal/application/budget"
	"github.com/genautech/yoobe-store-api/internal/application/ledger"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and budget.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ budget.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação com os repositórios do razão de pontos atados a
// ela e faz Commit ou Rollback. Lançamento + saldo em cache mudam juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	pointsRepo repository.PointsTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	pointsRepo := NewPointsTransactionRepository(tx)

	if err := fn(userRepo, pointsRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBudget inicia uma transação com os repositórios do agregado de verbas
// (verba, fila de aprovação, catálogo da empresa, centros de custo).
func (r *TxRunner) RunBudget(ctx context.Context, fn func(
	budgetRepo repository.BudgetRepository,
	approvalRepo repository.ApprovalRequestRepository,
	companyProductRepo repository.CompanyProductRepository,
	costCenterRepo repository.CostCenterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	budgetRepo := NewBudgetRepository(tx)
	approvalRepo := NewApprovalRequestRepository(tx)
	companyProductRepo := NewCompanyProductRepository(tx)
	costCenterRepo := NewCostCenterRepository(tx)

	if err := fn(budgetRepo, approvalRepo, companyProductRepo, costCenterRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
