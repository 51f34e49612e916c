package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma verba (Budget). A tabela de transições vive em
// internal/domain/budget.Transition.
const (
	BudgetStatusDraft      = "draft"
	BudgetStatusSubmitted  = "submitted"
	BudgetStatusReviewed   = "reviewed"
	BudgetStatusApproved   = "approved"
	BudgetStatusRejected   = "rejected"
	BudgetStatusReleased   = "released"
	BudgetStatusReplicated = "replicated"
)

// Budget representa uma solicitação de verba de um gestor: cabeçalho com totais
// derivados dos itens. Os totais são recalculados a cada mutação de item, na
// mesma transação SQL, para nunca expor um estado intermediário inconsistente.
type Budget struct {
	ID                string
	CompanyID         string
	Title             string
	Status            string // ver constantes BudgetStatus*
	TotalCash         decimal.Decimal
	TotalPoints       int64
	TotalItems        int
	CostCenterID      *string
	RequestedBy       string // UserID do solicitante
	ApprovedBy        *string
	RejectedBy        *string
	RejectionReason   string
	RejectionCategory string // ver RejectionCategory*
	CreatedAt         time.Time
	UpdatedAt         time.Time
	SubmittedAt       *time.Time
	ReviewedAt        *time.Time
	ReleasedAt        *time.Time
	ReplicatedAt      *time.Time
}

// BudgetItem é uma linha da verba. Subtotais são derivados (qty × unitário).
type BudgetItem struct {
	ID             string
	BudgetID       string
	BaseProductID  string
	Qty            int
	UnitPrice      decimal.Decimal
	UnitPoints     int64
	SubtotalCash   decimal.Decimal
	SubtotalPoints int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Recalc atualiza os subtotais da linha a partir de Qty e valores unitários.
func (i *BudgetItem) Recalc() {
	i.SubtotalCash = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
	i.SubtotalPoints = i.UnitPoints * int64(i.Qty)
}

// RecalcTotals recalcula TotalCash/TotalPoints/TotalItems a partir dos itens atuais.
// Vale para qualquer conjunto, inclusive vazio.
func (b *Budget) RecalcTotals(items []*BudgetItem) {
	total := decimal.Zero
	var points int64
	for _, it := range items {
		total = total.Add(it.SubtotalCash)
		points += it.SubtotalPoints
	}
	b.TotalCash = total
	b.TotalPoints = points
	b.TotalItems = len(items)
}
