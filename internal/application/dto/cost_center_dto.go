package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCostCenterRequest entrada para criar um centro de custo.
type CreateCostCenterRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	AllocatedBudget decimal.Decimal `json:"allocated_budget"`
}

// UpdateCostCenterRequest entrada para atualizar um centro de custo.
// AvailableBudget não é aceito: é sempre derivado (allocated − used).
type UpdateCostCenterRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	AllocatedBudget *decimal.Decimal `json:"allocated_budget"`
}

// CostCenterResponse saída de um centro de custo.
type CostCenterResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	AllocatedBudget decimal.Decimal `json:"allocated_budget"`
	UsedBudget      decimal.Decimal `json:"used_budget"`
	AvailableBudget decimal.Decimal `json:"available_budget"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CostCenterListResponse lista paginada de centros de custo.
type CostCenterListResponse struct {
	Items []CostCenterResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
