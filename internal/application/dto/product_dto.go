package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceTierDTO faixa de preço por quantidade.
type PriceTierDTO struct {
	MinQty int             `json:"min_qty" validate:"gte=1"`
	Price  decimal.Decimal `json:"price"`
}

// CreateBaseProductRequest entrada para criar um item do catálogo global.
type CreateBaseProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	PriceTiers     []PriceTierDTO  `json:"price_tiers"`
	StockAvailable int             `json:"stock_available" validate:"gte=0"`
	IsDigital      bool            `json:"is_digital"`
}

// UpdateBaseProductRequest entrada para atualizar um item do catálogo global.
type UpdateBaseProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Price          *decimal.Decimal `json:"price"`
	PriceTiers     *[]PriceTierDTO  `json:"price_tiers"`
	StockAvailable *int             `json:"stock_available" validate:"omitempty,gte=0"`
	IsDigital      *bool            `json:"is_digital"`
}

// BaseProductResponse saída de um item do catálogo global.
type BaseProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	PriceTiers     []PriceTierDTO  `json:"price_tiers"`
	StockAvailable int             `json:"stock_available"`
	IsDigital      bool            `json:"is_digital"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BaseProductListResponse lista paginada do catálogo global.
type BaseProductListResponse struct {
	Items []BaseProductResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// CloneProductRequest entrada para replicar um BaseProduct no catálogo da
// empresa. Overrides omitidos assumem os valores do produto base.
type CloneProductRequest struct {
	BaseProductID string           `json:"base_product_id" validate:"required,uuid"`
	Price         *decimal.Decimal `json:"price"`
	PointsCost    *int64           `json:"points_cost"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsActive      *bool            `json:"is_active"`
}

// UpdateCompanyProductRequest entrada para alterar overrides do clone
// (BaseProductID é imutável).
type UpdateCompanyProductRequest struct {
	Price         *decimal.Decimal `json:"price"`
	PointsCost    *int64           `json:"points_cost"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,gte=0"`
	IsActive      *bool            `json:"is_active"`
}

// CompanyProductResponse saída de um produto do catálogo da empresa.
type CompanyProductResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	BaseProductID string          `json:"base_product_id"`
	BudgetID      *string         `json:"budget_id,omitempty"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	PointsCost    int64           `json:"points_cost"`
	StockQuantity int             `json:"stock_quantity"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CompanyProductListResponse lista paginada do catálogo da empresa.
type CompanyProductListResponse struct {
	Items []CompanyProductResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
