package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de solicitação na fila de aprovação unificada.
const (
	ApprovalTypeOrder       = "order"
	ApprovalTypeBudget      = "budget"
	ApprovalTypeGift        = "gift"
	ApprovalTypeRequisition = "requisition"
)

// Prioridades de uma solicitação.
const (
	PriorityAlta  = "alta"
	PriorityMedia = "media"
	PriorityBaixa = "baixa"
)

// Status de uma solicitação de aprovação. info_requested não é terminal:
// um approve/reject posterior ainda é esperado.
const (
	ApprovalStatusPending       = "pending"
	ApprovalStatusApproved      = "approved"
	ApprovalStatusRejected      = "rejected"
	ApprovalStatusInfoRequested = "info_requested"
)

// Taxonomia fixa de categorias de rejeição.
const (
	RejectionCategoryMissingInfo     = "missing_info"
	RejectionCategoryBudgetExceeded  = "budget_exceeded"
	RejectionCategoryUnauthorized    = "unauthorized"
	RejectionCategoryPolicyViolation = "policy_violation"
	RejectionCategoryOther           = "other"
)

// ValidRejectionCategory verifica se a categoria pertence à taxonomia fixa.
func ValidRejectionCategory(c string) bool {
	switch c {
	case RejectionCategoryMissingInfo, RejectionCategoryBudgetExceeded,
		RejectionCategoryUnauthorized, RejectionCategoryPolicyViolation,
		RejectionCategoryOther:
		return true
	}
	return false
}

// ApprovalRequest é o item da fila de aprovação unificada (verbas, pedidos,
// presentes, requisições). Para type=budget o registro anda em sincronia com o
// Budget subjacente: decisão na fila e transição da verba acontecem na mesma
// transação SQL. Nunca é excluído (registro histórico).
type ApprovalRequest struct {
	ID                   string
	CompanyID            string
	Type                 string // order, budget, gift, requisition
	ReferenceID          string // ID do agregado subjacente
	Title                string
	RequesterName        string
	RequesterEmail       string
	RequesterPhone       string
	RequesterDepartment  string
	Priority             string // alta, media, baixa
	Value                decimal.Decimal
	Status               string // pending, approved, rejected, info_requested
	AttachedItems        json.RawMessage
	ApprovalNotes        string
	RejectionReason      string
	RejectionCategory    string
	InfoRequestedMessage string
	ReviewedBy           *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	ReviewedAt           *time.Time
}
