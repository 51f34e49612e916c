package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBudgetRequest entrada para criar uma verba em rascunho.
type CreateBudgetRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	CostCenterID *string `json:"cost_center_id"`
}

// UpdateBudgetRequest edição in-place do cabeçalho em rascunho
// (autotransição draft→draft: salvamento idempotente).
type UpdateBudgetRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	CostCenterID *string `json:"cost_center_id"`
}

// AddBudgetItemRequest entrada para anexar uma linha à verba (somente em draft).
// UnitPrice/UnitPoints omitidos assumem os valores do BaseProduct (preço por
// faixa de quantidade).
type AddBudgetItemRequest struct {
	BaseProductID string           `json:"base_product_id" validate:"required,uuid"`
	Qty           int              `json:"qty" validate:"required,gt=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	UnitPoints    *int64           `json:"unit_points"`
}

// UpdateBudgetItemRequest entrada para alterar uma linha (somente em draft).
type UpdateBudgetItemRequest struct {
	Qty        *int             `json:"qty" validate:"omitempty,gt=0"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	UnitPoints *int64           `json:"unit_points"`
}

// RejectBudgetRequest motivo + categoria obrigatórios na rejeição.
type RejectBudgetRequest struct {
	Reason   string `json:"reason" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// BudgetItemResponse linha da verba com subtotais derivados.
type BudgetItemResponse struct {
	ID             string          `json:"id"`
	BaseProductID  string          `json:"base_product_id"`
	Qty            int             `json:"qty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	UnitPoints     int64           `json:"unit_points"`
	SubtotalCash   decimal.Decimal `json:"subtotal_cash"`
	SubtotalPoints int64           `json:"subtotal_points"`
}

// BudgetResponse cabeçalho da verba + itens.
type BudgetResponse struct {
	ID                string               `json:"id"`
	CompanyID         string               `json:"company_id"`
	Title             string               `json:"title"`
	Status            string               `json:"status"`
	TotalCash         decimal.Decimal      `json:"total_cash"`
	TotalPoints       int64                `json:"total_points"`
	TotalItems        int                  `json:"total_items"`
	CostCenterID      *string              `json:"cost_center_id,omitempty"`
	RequestedBy       string               `json:"requested_by"`
	ApprovedBy        *string              `json:"approved_by,omitempty"`
	RejectedBy        *string              `json:"rejected_by,omitempty"`
	RejectionReason   string               `json:"rejection_reason,omitempty"`
	RejectionCategory string               `json:"rejection_category,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	SubmittedAt       *time.Time           `json:"submitted_at,omitempty"`
	ReviewedAt        *time.Time           `json:"reviewed_at,omitempty"`
	ReleasedAt        *time.Time           `json:"released_at,omitempty"`
	ReplicatedAt      *time.Time           `json:"replicated_at,omitempty"`
	Items             []BudgetItemResponse `json:"items"`
}

// BudgetListResponse lista paginada de verbas.
type BudgetListResponse struct {
	Items []BudgetResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
