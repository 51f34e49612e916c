package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

var _ repository.ApprovalRequestRepository = (*ApprovalRequestRepo)(nil)

// ApprovalRequestRepo implementação da fila de aprovação sobre PostgreSQL.
// Registros nunca são excluídos: a fila é também o histórico.
type ApprovalRequestRepo struct {
	q Querier
}

// NewApprovalRequestRepository constrói o adaptador da fila.
func NewApprovalRequestRepository(q Querier) *ApprovalRequestRepo {
	return &ApprovalRequestRepo{q: q}
}

const approvalColumns = `id, company_id, type, reference_id, title, requester_name, requester_email,
	requester_phone, requester_department, priority, value, status, attached_items, approval_notes,
	rejection_reason, rejection_category, info_requested_message, reviewed_by, created_at, updated_at, reviewed_at`

func scanApproval(row pgx.Row) (*entity.ApprovalRequest, error) {
	var a entity.ApprovalRequest
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Type, &a.ReferenceID, &a.Title, &a.RequesterName, &a.RequesterEmail,
		&a.RequesterPhone, &a.RequesterDepartment, &a.Priority, &a.Value, &a.Status, &a.AttachedItems,
		&a.ApprovalNotes, &a.RejectionReason, &a.RejectionCategory, &a.InfoRequestedMessage,
		&a.ReviewedBy, &a.CreatedAt, &a.UpdatedAt, &a.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste uma nova solicitação.
func (r *ApprovalRequestRepo) Create(req *entity.ApprovalRequest) error {
	query := `
		INSERT INTO approval_requests (id, company_id, type, reference_id, title, requester_name,
			requester_email, requester_phone, requester_department, priority, value, status,
			attached_items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.CompanyID, req.Type, req.ReferenceID, req.Title, req.RequesterName,
		req.RequesterEmail, req.RequesterPhone, req.RequesterDepartment, req.Priority, req.Value,
		req.Status, req.AttachedItems, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert approval request: %w", err)
	}
	return nil
}

// GetByID obtém uma solicitação por ID.
func (r *ApprovalRequestRepo) GetByID(id string) (*entity.ApprovalRequest, error) {
	query := `SELECT ` + approvalColumns + ` FROM approval_requests WHERE id = $1`
	a, err := scanApproval(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get approval request by id: %w", err)
	}
	return a, nil
}

// GetByIDForUpdate obtém a solicitação bloqueando a linha (SELECT FOR UPDATE).
// Decisões concorrentes sobre a mesma solicitação se serializam aqui.
func (r *ApprovalRequestRepo) GetByIDForUpdate(id string) (*entity.ApprovalRequest, error) {
	query := `SELECT ` + approvalColumns + ` FROM approval_requests WHERE id = $1 FOR UPDATE`
	a, err := scanApproval(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get approval request for update: %w", err)
	}
	return a, nil
}

// GetByReference obtém a solicitação mais recente de um tipo para um agregado
// (uma verba reaberta pode acumular mais de uma).
func (r *ApprovalRequestRepo) GetByReference(reqType, referenceID string) (*entity.ApprovalRequest, error) {
	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests WHERE type = $1 AND reference_id = $2
		ORDER BY created_at DESC LIMIT 1`
	a, err := scanApproval(r.q.QueryRow(context.Background(), query, reqType, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get approval request by reference: %w", err)
	}
	return a, nil
}

// Update grava o estado de decisão da solicitação.
func (r *ApprovalRequestRepo) Update(req *entity.ApprovalRequest) error {
	query := `
		UPDATE approval_requests SET priority = $2, status = $3, approval_notes = $4,
			rejection_reason = $5, rejection_category = $6, info_requested_message = $7,
			reviewed_by = $8, updated_at = $9, reviewed_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Priority, req.Status, req.ApprovalNotes, req.RejectionReason,
		req.RejectionCategory, req.InfoRequestedMessage, req.ReviewedBy, req.UpdatedAt, req.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("update approval request: %w", err)
	}
	return nil
}

// ListByCompany lista a fila por agrupamento: "pendentes" (pending +
// info_requested, mais antigas primeiro) ou "historico" (decididas, mais
// recentes primeiro).
func (r *ApprovalRequestRepo) ListByCompany(companyID, group string, limit, offset int) ([]*entity.ApprovalRequest, error) {
	var query string
	switch group {
	case repository.ApprovalGroupPendentes:
		query = `
			SELECT ` + approvalColumns + `
			FROM approval_requests
			WHERE company_id = $1 AND status IN ('pending', 'info_requested')
			ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	case repository.ApprovalGroupHistorico:
		query = `
			SELECT ` + approvalColumns + `
			FROM approval_requests
			WHERE company_id = $1 AND status IN ('approved', 'rejected')
			ORDER BY reviewed_at DESC LIMIT $2 OFFSET $3`
	default:
		return nil, fmt.Errorf("grupo desconhecido: %s", group)
	}
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list approval requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.ApprovalRequest
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approval request: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
