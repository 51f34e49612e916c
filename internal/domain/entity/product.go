package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceTier é uma faixa de preço por quantidade de um BaseProduct
// (ex.: 1-9 unidades a 25.00, 10-49 a 22.00).
type PriceTier struct {
	MinQty int             `json:"min_qty"`
	Price  decimal.Decimal `json:"price"`
}

// BaseProduct é o item do catálogo global: dado de referência compartilhado e
// somente leitura para as empresas. Clonagens criam CompanyProduct, nunca
// alteram o BaseProduct.
type BaseProduct struct {
	ID             string
	Name           string
	Description    string
	Category       string
	Price          decimal.Decimal
	PriceTiers     []PriceTier
	StockAvailable int
	IsDigital      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TierPrice devolve o preço unitário para a quantidade dada: a faixa de maior
// MinQty que ainda seja <= qty; sem faixas, vale Price.
func (p *BaseProduct) TierPrice(qty int) decimal.Decimal {
	price := p.Price
	best := 0
	for _, t := range p.PriceTiers {
		if t.MinQty <= qty && t.MinQty >= best {
			best = t.MinQty
			price = t.Price
		}
	}
	return price
}

// CompanyProduct é o clone de um BaseProduct no catálogo de uma empresa, com
// overrides de preço/pontos/estoque. BaseProductID é imutável após criado.
// BudgetID preenchido indica replicação originada de uma verba; a unique key
// (base_product_id, company_id, budget_id) torna o replay idempotente.
type CompanyProduct struct {
	ID            string
	CompanyID     string
	BaseProductID string
	BudgetID      *string
	Name          string
	Price         decimal.Decimal
	PointsCost    int64
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
