package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/genautech/yoobe-store-api/internal/domain/catalog"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.BaseProductRepository = (*BaseProductRepo)(nil)

// BaseProductRepo implementação do catálogo global sobre PostgreSQL.
// A coluna name_normalized (nome sem acentos, minúsculo) é mantida na escrita
// e alimenta a busca acento-insensível; price_tiers vive como JSONB.
type BaseProductRepo struct {
	q Querier
}

// NewBaseProductRepository constrói o adaptador do catálogo global.
func NewBaseProductRepository(q Querier) *BaseProductRepo {
	return &BaseProductRepo{q: q}
}

const baseProductColumns = `id, name, description, category, price, price_tiers, stock_available, is_digital, created_at, updated_at`

func scanBaseProduct(row pgx.Row) (*entity.BaseProduct, error) {
	var p entity.BaseProduct
	var tiers []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &tiers,
		&p.StockAvailable, &p.IsDigital, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(tiers) > 0 {
		if err := json.Unmarshal(tiers, &p.PriceTiers); err != nil {
			return nil, fmt.Errorf("decode price tiers: %w", err)
		}
	}
	return &p, nil
}

func encodeTiers(tiers []entity.PriceTier) ([]byte, error) {
	if len(tiers) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(tiers)
}

// Create persiste um item do catálogo global.
func (r *BaseProductRepo) Create(p *entity.BaseProduct) error {
	tiers, err := encodeTiers(p.PriceTiers)
	if err != nil {
		return fmt.Errorf("encode price tiers: %w", err)
	}
	query := `
		INSERT INTO base_products (id, name, name_normalized, description, category, price, price_tiers,
			stock_available, is_digital, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.Name, catalog.Normalize(p.Name), p.Description, p.Category, p.Price, tiers,
		p.StockAvailable, p.IsDigital, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert base product: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *BaseProductRepo) GetByID(id string) (*entity.BaseProduct, error) {
	query := `SELECT ` + baseProductColumns + ` FROM base_products WHERE id = $1`
	p, err := scanBaseProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get base product by id: %w", err)
	}
	return p, nil
}

// Update atualiza um item, mantendo name_normalized em sincronia com name.
func (r *BaseProductRepo) Update(p *entity.BaseProduct) error {
	tiers, err := encodeTiers(p.PriceTiers)
	if err != nil {
		return fmt.Errorf("encode price tiers: %w", err)
	}
	query := `
		UPDATE base_products SET name = $2, name_normalized = $3, description = $4, category = $5,
			price = $6, price_tiers = $7, stock_available = $8, is_digital = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.Name, catalog.Normalize(p.Name), p.Description, p.Category,
		p.Price, tiers, p.StockAvailable, p.IsDigital, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update base product: %w", err)
	}
	return nil
}

// Delete remove um item do catálogo global.
func (r *BaseProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM base_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete base product: %w", err)
	}
	return nil
}

// List lista o catálogo global, com filtro opcional por categoria.
func (r *BaseProductRepo) List(category string, limit, offset int) ([]*entity.BaseProduct, error) {
	query := `
		SELECT ` + baseProductColumns + `
		FROM base_products WHERE ($1 = '' OR category = $1)
		ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryList(query, category, limit, offset)
}

// Search busca por nome sobre a coluna normalizada. normTerm já chega
// normalizado (catalog.Normalize).
func (r *BaseProductRepo) Search(normTerm string, limit, offset int) ([]*entity.BaseProduct, error) {
	query := `
		SELECT ` + baseProductColumns + `
		FROM base_products WHERE name_normalized LIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryList(query, normTerm, limit, offset)
}

func (r *BaseProductRepo) queryList(query string, args ...any) ([]*entity.BaseProduct, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list base products: %w", err)
	}
	defer rows.Close()
	var list []*entity.BaseProduct
	for rows.Next() {
		p, err := scanBaseProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan base product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
