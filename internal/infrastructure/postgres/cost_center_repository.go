package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.CostCenterRepository = (*CostCenterRepo)(nil)

// CostCenterRepo implementação do porto CostCenterRepository sobre PostgreSQL.
// O disponível não tem coluna: é sempre allocated − used.
type CostCenterRepo struct {
	q Querier
}

// NewCostCenterRepository constrói o adaptador de centros de custo.
func NewCostCenterRepository(q Querier) *CostCenterRepo {
	return &CostCenterRepo{q: q}
}

const costCenterColumns = `id, company_id, name, allocated_budget, used_budget, created_at, updated_at`

func scanCostCenter(row pgx.Row) (*entity.CostCenter, error) {
	var cc entity.CostCenter
	err := row.Scan(&cc.ID, &cc.CompanyID, &cc.Name, &cc.AllocatedBudget, &cc.UsedBudget, &cc.CreatedAt, &cc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

// Create persiste um novo centro de custo.
func (r *CostCenterRepo) Create(cc *entity.CostCenter) error {
	query := `
		INSERT INTO cost_centers (id, company_id, name, allocated_budget, used_budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		cc.ID, cc.CompanyID, cc.Name, cc.AllocatedBudget, cc.UsedBudget, cc.CreatedAt, cc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

// GetByID obtém um centro de custo por ID.
func (r *CostCenterRepo) GetByID(id string) (*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE id = $1`
	cc, err := scanCostCenter(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center by id: %w", err)
	}
	return cc, nil
}

// GetByIDForUpdate obtém o centro de custo bloqueando a linha (SELECT FOR
// UPDATE). Liberações concorrentes de verbas se serializam aqui.
func (r *CostCenterRepo) GetByIDForUpdate(id string) (*entity.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE id = $1 FOR UPDATE`
	cc, err := scanCostCenter(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center for update: %w", err)
	}
	return cc, nil
}

// Update grava nome, alocação e consumo.
func (r *CostCenterRepo) Update(cc *entity.CostCenter) error {
	query := `
		UPDATE cost_centers SET name = $2, allocated_budget = $3, used_budget = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cc.ID, cc.Name, cc.AllocatedBudget, cc.UsedBudget, cc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cost center: %w", err)
	}
	return nil
}

// ListByCompany lista centros de custo da empresa com paginação.
func (r *CostCenterRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostCenter
	for rows.Next() {
		cc, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cost center: %w", err)
		}
		list = append(list, cc)
	}
	return list, rows.Err()
}
