package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.CompanyProductRepository = (*CompanyProductRepo)(nil)

// CompanyProductRepo implementação do catálogo por empresa sobre PostgreSQL.
type CompanyProductRepo struct {
	q Querier
}

// NewCompanyProductRepository constrói o adaptador do catálogo da empresa.
func NewCompanyProductRepository(q Querier) *CompanyProductRepo {
	return &CompanyProductRepo{q: q}
}

const companyProductColumns = `id, company_id, base_product_id, budget_id, name, price, points_cost,
	stock_quantity, is_active, created_at, updated_at`

func scanCompanyProduct(row pgx.Row) (*entity.CompanyProduct, error) {
	var cp entity.CompanyProduct
	err := row.Scan(
		&cp.ID, &cp.CompanyID, &cp.BaseProductID, &cp.BudgetID, &cp.Name, &cp.Price, &cp.PointsCost,
		&cp.StockQuantity, &cp.IsActive, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// Create persiste um clone (clonagem direta, aditiva).
func (r *CompanyProductRepo) Create(cp *entity.CompanyProduct) error {
	query := `
		INSERT INTO company_products (id, company_id, base_product_id, budget_id, name, price,
			points_cost, stock_quantity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.CompanyID, cp.BaseProductID, cp.BudgetID, cp.Name, cp.Price,
		cp.PointsCost, cp.StockQuantity, cp.IsActive, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company product: %w", err)
	}
	return nil
}

// CreateFromBudget persiste um clone vindo de replicação de verba. A unique
// key (base_product_id, company_id, budget_id) com ON CONFLICT DO NOTHING
// torna o replay idempotente; devolve false quando a linha já existia.
func (r *CompanyProductRepo) CreateFromBudget(cp *entity.CompanyProduct) (bool, error) {
	query := `
		INSERT INTO company_products (id, company_id, base_product_id, budget_id, name, price,
			points_cost, stock_quantity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (base_product_id, company_id, budget_id) DO NOTHING`
	tag, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.CompanyID, cp.BaseProductID, cp.BudgetID, cp.Name, cp.Price,
		cp.PointsCost, cp.StockQuantity, cp.IsActive, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert company product from budget: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID obtém um produto do catálogo da empresa.
func (r *CompanyProductRepo) GetByID(id string) (*entity.CompanyProduct, error) {
	query := `SELECT ` + companyProductColumns + ` FROM company_products WHERE id = $1`
	cp, err := scanCompanyProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company product by id: %w", err)
	}
	return cp, nil
}

// Update grava os overrides do clone. base_product_id não muda nunca.
func (r *CompanyProductRepo) Update(cp *entity.CompanyProduct) error {
	query := `
		UPDATE company_products SET name = $2, price = $3, points_cost = $4, stock_quantity = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.Name, cp.Price, cp.PointsCost, cp.StockQuantity, cp.IsActive, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company product: %w", err)
	}
	return nil
}

// ListByCompany lista o catálogo da empresa com paginação.
func (r *CompanyProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.CompanyProduct, error) {
	query := `
		SELECT ` + companyProductColumns + `
		FROM company_products WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list company products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyProduct
	for rows.Next() {
		cp, err := scanCompanyProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company product: %w", err)
		}
		list = append(list, cp)
	}
	return list, rows.Err()
}
