// Package approval implementa a fila unificada de aprovações: verbas, pedidos,
// presentes e requisições passam pelo mesmo funil de decisão do admin.
package approval

import (
	"context"
	"time"

	"github.com/google/uuid"

	budgetuc "github.com/genautech/yoobe-store-api/internal/application/budget"
	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	budgetdomain "github.com/genautech/yoobe-store-api/internal/domain/budget"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// UseCase opera a fila de aprovação. Para solicitações do tipo budget, a
// decisão na fila e a transição da verba subjacente acontecem na mesma
// transação SQL: fila e verba nunca divergem.
type UseCase struct {
	txRunner     budgetuc.TxRunner
	approvalRepo repository.ApprovalRequestRepository
}

// NewUseCase constrói o caso de uso da fila.
func NewUseCase(txRunner budgetuc.TxRunner, approvalRepo repository.ApprovalRequestRepository) *UseCase {
	return &UseCase{txRunner: txRunner, approvalRepo: approvalRepo}
}

// Create abre uma solicitação genérica (order, gift, requisition). Verbas não
// entram por aqui: a solicitação type=budget nasce no Submit da verba.
func (uc *UseCase) Create(companyID string, in dto.CreateApprovalRequest) (*dto.ApprovalResponse, error) {
	switch in.Type {
	case entity.ApprovalTypeOrder, entity.ApprovalTypeGift, entity.ApprovalTypeRequisition:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	switch priority {
	case "":
		priority = entity.PriorityMedia
	case entity.PriorityAlta, entity.PriorityMedia, entity.PriorityBaixa:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	req := &entity.ApprovalRequest{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		Type:                in.Type,
		ReferenceID:         in.ReferenceID,
		Title:               in.Title,
		RequesterName:       in.RequesterName,
		RequesterEmail:      in.RequesterEmail,
		RequesterPhone:      in.RequesterPhone,
		RequesterDepartment: in.RequesterDepartment,
		Priority:            priority,
		Value:               in.Value,
		Status:              entity.ApprovalStatusPending,
		AttachedItems:       in.AttachedItems,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.approvalRepo.Create(req); err != nil {
		return nil, err
	}
	return toResponse(req), nil
}

// GetByID devolve uma solicitação.
func (uc *UseCase) GetByID(id string) (*dto.ApprovalResponse, error) {
	req, err := uc.approvalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(req), nil
}

// List lista a fila da empresa por agrupamento: "pendentes" (pending +
// info_requested) ou "historico" (approved + rejected).
func (uc *UseCase) List(companyID, group string, limit, offset int) (*dto.ApprovalListResponse, error) {
	switch group {
	case repository.ApprovalGroupPendentes, repository.ApprovalGroupHistorico:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.approvalRepo.ListByCompany(companyID, group, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApprovalResponse, 0, len(list))
	for _, req := range list {
		items = append(items, *toResponse(req))
	}
	return &dto.ApprovalListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Approve decide positivamente uma solicitação aberta. Para type=budget a
// verba transiciona até approved na mesma transação (passando por reviewed se
// ainda estava em submitted: decidir implica analisar).
func (uc *UseCase) Approve(ctx context.Context, id, actorID string, in dto.ApproveApprovalRequest) (*dto.ApprovalResponse, error) {
	return uc.decide(ctx, id, func(req *entity.ApprovalRequest, now time.Time, budgetRepo repository.BudgetRepository) error {
		req.Status = entity.ApprovalStatusApproved
		req.ApprovalNotes = in.Notes
		req.ReviewedBy = &actorID
		req.ReviewedAt = &now
		if req.Type != entity.ApprovalTypeBudget {
			return nil
		}
		return uc.syncBudget(req, budgetRepo, func(b *entity.Budget) error {
			if err := advance(b, entity.BudgetStatusApproved); err != nil {
				return err
			}
			b.ApprovedBy = &actorID
			b.ReviewedAt = &now
			b.UpdatedAt = now
			return nil
		})
	})
}

// Reject decide negativamente. Motivo e categoria (da taxonomia fixa) são
// obrigatórios e validados antes de qualquer mutação.
func (uc *UseCase) Reject(ctx context.Context, id, actorID string, in dto.RejectApprovalRequest) (*dto.ApprovalResponse, error) {
	if in.Reason == "" {
		return nil, domain.ErrRejectionReasonRequired
	}
	if in.Category == "" {
		return nil, domain.ErrRejectionCategoryRequired
	}
	if !entity.ValidRejectionCategory(in.Category) {
		return nil, domain.ErrRejectionCategoryInvalid
	}
	return uc.decide(ctx, id, func(req *entity.ApprovalRequest, now time.Time, budgetRepo repository.BudgetRepository) error {
		req.Status = entity.ApprovalStatusRejected
		req.RejectionReason = in.Reason
		req.RejectionCategory = in.Category
		req.ReviewedBy = &actorID
		req.ReviewedAt = &now
		if req.Type != entity.ApprovalTypeBudget {
			return nil
		}
		return uc.syncBudget(req, budgetRepo, func(b *entity.Budget) error {
			if err := advance(b, entity.BudgetStatusRejected); err != nil {
				return err
			}
			b.RejectedBy = &actorID
			b.ReviewedAt = &now
			b.RejectionReason = in.Reason
			b.RejectionCategory = in.Category
			b.UpdatedAt = now
			return nil
		})
	})
}

// RequestInfo marca a solicitação como info_requested. Não é terminal: um
// approve/reject posterior ainda é esperado, e a verba subjacente (se houver)
// não transiciona.
func (uc *UseCase) RequestInfo(ctx context.Context, id, actorID string, in dto.RequestInfoRequest) (*dto.ApprovalResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.decide(ctx, id, func(req *entity.ApprovalRequest, now time.Time, _ repository.BudgetRepository) error {
		req.Status = entity.ApprovalStatusInfoRequested
		req.InfoRequestedMessage = in.Message
		req.ReviewedBy = &actorID
		req.UpdatedAt = now
		return nil
	})
}

// ApproveMultiple aprova cada ID de forma independente: erro em um não afeta
// os demais e solicitações fora de pending/info_requested são puladas.
// Devolve quantas de fato transicionaram.
func (uc *UseCase) ApproveMultiple(ctx context.Context, actorID string, in dto.ApproveMultipleRequest) (*dto.ApproveMultipleResponse, error) {
	approved := 0
	for _, id := range in.IDs {
		if _, err := uc.Approve(ctx, id, actorID, dto.ApproveApprovalRequest{}); err == nil {
			approved++
		}
	}
	return &dto.ApproveMultipleResponse{Approved: approved}, nil
}

// decide aplica uma decisão com a linha da solicitação bloqueada. Apenas
// solicitações abertas (pending ou info_requested) aceitam decisão.
func (uc *UseCase) decide(ctx context.Context, id string, apply func(*entity.ApprovalRequest, time.Time, repository.BudgetRepository) error) (*dto.ApprovalResponse, error) {
	var out *entity.ApprovalRequest
	err := uc.txRunner.RunBudget(ctx, func(
		budgetRepo repository.BudgetRepository,
		approvalRepo repository.ApprovalRequestRepository,
		_ repository.CompanyProductRepository,
		_ repository.CostCenterRepository,
	) error {
		req, err := approvalRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.ApprovalStatusPending && req.Status != entity.ApprovalStatusInfoRequested {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		if err := apply(req, now, budgetRepo); err != nil {
			return err
		}
		req.UpdatedAt = now
		if err := approvalRepo.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(out), nil
}

// syncBudget carrega a verba referenciada com lock e grava a mutação.
func (uc *UseCase) syncBudget(req *entity.ApprovalRequest, budgetRepo repository.BudgetRepository, mutate func(*entity.Budget) error) error {
	b, err := budgetRepo.GetByIDForUpdate(req.ReferenceID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if err := mutate(b); err != nil {
		return err
	}
	return budgetRepo.Update(b)
}

// advance leva a verba até o status alvo, passando por reviewed quando a
// decisão chega com a verba ainda em submitted.
func advance(b *entity.Budget, to string) error {
	if b.Status == entity.BudgetStatusSubmitted {
		if err := budgetdomain.Transition(b.Status, entity.BudgetStatusReviewed); err != nil {
			return err
		}
		b.Status = entity.BudgetStatusReviewed
	}
	if err := budgetdomain.Transition(b.Status, to); err != nil {
		return err
	}
	b.Status = to
	return nil
}

func toResponse(req *entity.ApprovalRequest) *dto.ApprovalResponse {
	return &dto.ApprovalResponse{
		ID:                   req.ID,
		CompanyID:            req.CompanyID,
		Type:                 req.Type,
		ReferenceID:          req.ReferenceID,
		Title:                req.Title,
		RequesterName:        req.RequesterName,
		RequesterEmail:       req.RequesterEmail,
		RequesterPhone:       req.RequesterPhone,
		RequesterDepartment:  req.RequesterDepartment,
		Priority:             req.Priority,
		Value:                req.Value,
		Status:               req.Status,
		AttachedItems:        req.AttachedItems,
		ApprovalNotes:        req.ApprovalNotes,
		RejectionReason:      req.RejectionReason,
		RejectionCategory:    req.RejectionCategory,
		InfoRequestedMessage: req.InfoRequestedMessage,
		ReviewedBy:           req.ReviewedBy,
		CreatedAt:            req.CreatedAt,
		UpdatedAt:            req.UpdatedAt,
		ReviewedAt:           req.ReviewedAt,
	}
}
