package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateApprovalRequest entrada para abrir uma solicitação genérica na fila
// (order, gift, requisition — verbas entram na fila automaticamente ao submeter).
type CreateApprovalRequest struct {
	Type                string          `json:"type" validate:"required"`
	ReferenceID         string          `json:"reference_id"`
	Title               string          `json:"title" validate:"required"`
	RequesterName       string          `json:"requester_name"`
	RequesterEmail      string          `json:"requester_email"`
	RequesterPhone      string          `json:"requester_phone"`
	RequesterDepartment string          `json:"requester_department"`
	Priority            string          `json:"priority"` // alta, media, baixa (padrão media)
	Value               decimal.Decimal `json:"value"`
	AttachedItems       json.RawMessage `json:"attached_items"`
}

// ApproveApprovalRequest notas opcionais do aprovador.
type ApproveApprovalRequest struct {
	Notes string `json:"notes"`
}

// RejectApprovalRequest motivo + categoria obrigatórios.
type RejectApprovalRequest struct {
	Reason   string `json:"reason" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// RequestInfoRequest mensagem pedindo informações adicionais.
type RequestInfoRequest struct {
	Message string `json:"message" validate:"required"`
}

// ApproveMultipleRequest aprova cada ID de forma independente.
type ApproveMultipleRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// ApproveMultipleResponse quantas solicitações de fato transicionaram.
type ApproveMultipleResponse struct {
	Approved int `json:"approved"`
}

// ApprovalResponse saída de uma solicitação da fila.
type ApprovalResponse struct {
	ID                   string          `json:"id"`
	CompanyID            string          `json:"company_id"`
	Type                 string          `json:"type"`
	ReferenceID          string          `json:"reference_id,omitempty"`
	Title                string          `json:"title"`
	RequesterName        string          `json:"requester_name,omitempty"`
	RequesterEmail       string          `json:"requester_email,omitempty"`
	RequesterPhone       string          `json:"requester_phone,omitempty"`
	RequesterDepartment  string          `json:"requester_department,omitempty"`
	Priority             string          `json:"priority"`
	Value                decimal.Decimal `json:"value"`
	Status               string          `json:"status"`
	AttachedItems        json.RawMessage `json:"attached_items,omitempty"`
	ApprovalNotes        string          `json:"approval_notes,omitempty"`
	RejectionReason      string          `json:"rejection_reason,omitempty"`
	RejectionCategory    string          `json:"rejection_category,omitempty"`
	InfoRequestedMessage string          `json:"info_requested_message,omitempty"`
	ReviewedBy           *string         `json:"reviewed_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	ReviewedAt           *time.Time      `json:"reviewed_at,omitempty"`
}

// ApprovalListResponse fila paginada ("pendentes" ou "historico").
type ApprovalListResponse struct {
	Items []ApprovalResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
