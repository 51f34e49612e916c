package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.LevelRepository = (*LevelRepo)(nil)

// LevelRepo implementação das personalizações de nível sobre PostgreSQL.
// Replace troca o conjunto da empresa dentro de uma transação própria, por
// isso o repo recebe o pool e não um Querier.
type LevelRepo struct {
	pool *pgxpool.Pool
}

// NewLevelRepository constrói o adaptador de personalizações de nível.
func NewLevelRepository(pool *pgxpool.Pool) *LevelRepo {
	return &LevelRepo{pool: pool}
}

// ListByCompany lista as personalizações da empresa (no máximo uma por tier).
func (r *LevelRepo) ListByCompany(companyID string) ([]*entity.LevelCustomization, error) {
	query := `
		SELECT company_id, tier, label, color, icon, min_points, multiplier, updated_at
		FROM level_customizations WHERE company_id = $1`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list level customizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.LevelCustomization
	for rows.Next() {
		var lc entity.LevelCustomization
		if err := rows.Scan(&lc.CompanyID, &lc.Tier, &lc.Label, &lc.Color, &lc.Icon, &lc.MinPoints, &lc.Multiplier, &lc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan level customization: %w", err)
		}
		list = append(list, &lc)
	}
	return list, rows.Err()
}

// Replace troca o conjunto inteiro de personalizações da empresa de forma
// atômica: DELETE + INSERTs na mesma transação.
func (r *LevelRepo) Replace(companyID string, rowsIn []*entity.LevelCustomization) error {
	ctx := context.Background()
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM level_customizations WHERE company_id = $1`, companyID); err != nil {
			return fmt.Errorf("delete level customizations: %w", err)
		}
		query := `
			INSERT INTO level_customizations (company_id, tier, label, color, icon, min_points, multiplier, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		for _, lc := range rowsIn {
			if _, err := tx.Exec(ctx, query,
				companyID, lc.Tier, lc.Label, lc.Color, lc.Icon, lc.MinPoints, lc.Multiplier, lc.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert level customization: %w", err)
			}
		}
		return nil
	})
}
