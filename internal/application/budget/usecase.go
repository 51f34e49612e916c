package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	budgetdomain "github.com/genautech/yoobe-store-api/internal/domain/budget"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// UseCase implementa o agregado de verbas: CRUD de rascunho, itens com totais
// derivados e a máquina de estados draft→submitted→reviewed→approved→released→
// replicated (com reviewed→rejected→draft). Toda transição roda dentro do
// TxRunner: status, totais, overlay de aprovação e efeitos colaterais mudam na
// mesma transação SQL.
type UseCase struct {
	txRunner        TxRunner
	budgetRepo      repository.BudgetRepository
	baseProductRepo repository.BaseProductRepository
	costCenterRepo  repository.CostCenterRepository
	userRepo        repository.UserRepository
}

// NewUseCase constrói o caso de uso de verbas.
func NewUseCase(
	txRunner TxRunner,
	budgetRepo repository.BudgetRepository,
	baseProductRepo repository.BaseProductRepository,
	costCenterRepo repository.CostCenterRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		budgetRepo:      budgetRepo,
		baseProductRepo: baseProductRepo,
		costCenterRepo:  costCenterRepo,
		userRepo:        userRepo,
	}
}

// Create cria uma verba em rascunho, sem itens e com totais zerados.
func (uc *UseCase) Create(companyID, requestedBy string, in dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostCenterID != nil {
		cc, err := uc.costCenterRepo.GetByID(*in.CostCenterID)
		if err != nil {
			return nil, err
		}
		if cc == nil || cc.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	b := &entity.Budget{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Title:        in.Title,
		Status:       entity.BudgetStatusDraft,
		TotalCash:    decimal.Zero,
		CostCenterID: in.CostCenterID,
		RequestedBy:  requestedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.budgetRepo.Create(b); err != nil {
		return nil, err
	}
	return uc.toResponse(b, nil), nil
}

// GetByID devolve a verba com seus itens.
func (uc *UseCase) GetByID(id string) (*dto.BudgetResponse, error) {
	b, err := uc.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.budgetRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(b, items), nil
}

// List lista verbas da empresa, com filtro opcional por status.
func (uc *UseCase) List(companyID, status string, limit, offset int) (*dto.BudgetListResponse, error) {
	list, err := uc.budgetRepo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BudgetResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *uc.toResponse(b, nil))
	}
	return &dto.BudgetListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update edita título/centro de custo em rascunho (autotransição draft→draft).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateBudgetRequest) (*dto.BudgetResponse, error) {
	var out *entity.Budget
	err := uc.txRunner.RunBudget(ctx, func(
		budgetRepo repository.BudgetRepository,
		_ repository.ApprovalRequestRepository,
		_ repository.CompanyProductRepository,
		costCenterRepo repository.CostCenterRepository,
	) error {
		b, err := budgetRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if err := budgetdomain.Transition(b.Status, b.Status); err != nil {
			return err
		}
		if !budgetdomain.CanEditItems(b.Status) {
			return domain.ErrBudgetNotEditable
		}
		if in.Title != nil {
			if *in.Title == "" {
				return domain.ErrInvalidInput
			}
			b.Title = *in.Title
		}
		if in.CostCenterID != nil {
			cc, err := costCenterRepo.GetByID(*in.CostCenterID)
			if err != nil {
				return err
			}
			if cc == nil || cc.CompanyID != b.CompanyID {
				return domain.ErrNotFound
			}
			b.CostCenterID = in.CostCenterID
		}
		b.UpdatedAt = time.Now()
		out = b
		return budgetRepo.Update(b)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(out, nil), nil
}

// AddItem anexa uma linha à verba (somente em rascunho). UnitPrice omitido
// assume o preço por faixa do BaseProduct; UnitPoints omitido assume
// ceil(UnitPrice) na convenção 1 ponto = R$ 1. Os totais do cabeçalho são
// recalculados na mesma transação.
func (uc *UseCase) AddItem(ctx context.Context, budgetID string, in dto.AddBudgetItemRequest) (*dto.BudgetResponse, error) {
	if in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	base, err := uc.baseProductRepo.GetByID(in.BaseProductID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, domain.ErrNotFound
	}

	unitPrice := base.TierPrice(in.Qty)
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	unitPoints := unitPrice.Ceil().IntPart()
	if in.UnitPoints != nil {
		if *in.UnitPoints < 0 {
			return nil, domain.ErrInvalidInput
		}
		unitPoints = *in.UnitPoints
	}

	now := time.Now()
	item := &entity.BudgetItem{
		ID:            uuid.New().String(),
		BudgetID:      budgetID,
		BaseProductID: in.BaseProductID,
		Qty:           in.Qty,
		UnitPrice:     unitPrice,
		UnitPoints:    unitPoints,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	item.Recalc()

	return uc.mutateItems(ctx, budgetID, func(budgetRepo repository.BudgetRepository) error {
		return budgetRepo.CreateItem(item)
	})
}

// UpdateItem altera quantidade/valores de uma linha (somente em rascunho) e
// recalcula subtotais e totais na mesma transação.
func (uc *UseCase) UpdateItem(ctx context.Context, budgetID, itemID string, in dto.UpdateBudgetItemRequest) (*dto.BudgetResponse, error) {
	return uc.mutateItems(ctx, budgetID, func(budgetRepo repository.BudgetRepository) error {
		item, err := budgetRepo.GetItem(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.BudgetID != budgetID {
			return domain.ErrNotFound
		}
		if in.Qty != nil {
			if *in.Qty <= 0 {
				return domain.ErrInvalidInput
			}
			item.Qty = *in.Qty
		}
		if in.UnitPrice != nil {
			if in.UnitPrice.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			item.UnitPrice = *in.UnitPrice
		}
		if in.UnitPoints != nil {
			if *in.UnitPoints < 0 {
				return domain.ErrInvalidInput
			}
			item.UnitPoints = *in.UnitPoints
		}
		item.Recalc()
		item.UpdatedAt = time.Now()
		return budgetRepo.UpdateItem(item)
	})
}

// RemoveItem exclui uma linha (somente em rascunho) e recalcula os totais.
func (uc *UseCase) RemoveItem(ctx context.Context, budgetID, itemID string) (*dto.BudgetResponse, error) {
	return uc.mutateItems(ctx, budgetID, func(budgetRepo repository.BudgetRepository) error {
		item, err := budgetRepo.GetItem(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.BudgetID != budgetID {
			return domain.ErrNotFound
		}
		return budgetRepo.DeleteItem(itemID)
	})
}

// mutateItems aplica a mutação de item e o recálculo de totais dentro da mesma
// transação, com a linha da verba bloqueada. Totais obsoletos nunca ficam
// visíveis no meio da operação.
func (uc *UseCase) mutateItems(ctx context.Context, budgetID string, mutate func(repository.BudgetRepository) error) (*dto.BudgetResponse, error) {
	var (
		out      *entity.Budget
		outItems []*entity.BudgetItem
	)
	err := uc.txRunner.RunBudget(ctx, func(
		budgetRepo repository.BudgetRepository,
		_ repository.ApprovalRequestRepository,
		_ repository.CompanyProductRepository,
		_ repository.CostCenterRepository,
	) error {
		b, err := budgetRepo.GetByIDForUpdate(budgetID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if !budgetdomain.CanEditItems(b.Status) {
			return domain.ErrBudgetNotEditable
		}
		if err := mutate(budgetRepo); err != nil {
			return err
		}
		items, err := budgetRepo.ListItems(budgetID)
		if err != nil {
			return err
		}
		b.RecalcTotals(items)
		b.UpdatedAt = time.Now()
		if err := budgetRepo.Update(b); err != nil {
			return err
		}
		out, outItems = b, items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(out, outItems), nil
}

// Submit transiciona draft→submitted e abre a solicitação na fila de aprovação
// na mesma transação. Verba sem itens não pode ser submetida.
func (uc *UseCase) Submit(ctx context.Context, id, actorID string) (*dto.BudgetResponse, error) {
	requester, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	var out *entity.Budget
	err = uc.txRunner.RunBudget(ctx, func(
		budgetRepo repository.BudgetRepository,
		approvalRepo repository.ApprovalRequestRepository,
		_ repository.CompanyProductRepository,
		_ repository.CostCenterRepository,
	) error {
		b, err := budgetRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if err := budgetdomain.Transition(b.Status, entity.BudgetStatusSubmitted); err != nil {
			return err
		}
		if b.TotalItems == 0 {
			return domain.ErrBudgetNoItems
		}
		now := time.Now()
		b.Status = entity.BudgetStatusSubmitted
		b.SubmittedAt = &now
		b.UpdatedAt = now
		if err := budgetRepo.Update(b); err != nil {
			return err
		}

		req := &entity.ApprovalRequest{
			ID:          uuid.New().String(),
			CompanyID:   b.CompanyID,
			Type:        entity.ApprovalTypeBudget,
			ReferenceID: b.ID,
			Title:       b.Title,
			Priority:    entity.PriorityMedia,
			Value:       b.TotalCash,
			Status:      entity.ApprovalStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if requester != nil {
			req.RequesterName = requester.Name
			req.RequesterEmail = requester.Email
		}
		if err := approvalRepo.Create(req); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(out, nil), nil
}

// Review transiciona submitted→reviewed (verba entrou em análise).
func (uc *UseCase) Review(ctx context.Context, id string) (*dto.BudgetResponse, error) {
	return uc.transition(ctx, id, entity.BudgetStatusReviewed, func(b *entity.Budget, now time.Time, _ repos) error {
		return nil
	})
}

// Approve transiciona reviewed→approved, registra o aprovador e sincroniza o
// overlay da fila na mesma transação.
func (uc *UseCase) Approve(ctx context.Context, id, actorID, notes string) (*dto.BudgetResponse, error) {
	return uc.transition(ctx, id, entity.BudgetStatusApproved, func(b *entity.Budget, now time.Time, r repos) error {
		b.ApprovedBy = &actorID
		b.ReviewedAt = &now
		return uc.syncOverlay(r.approvalRepo, b, func(req *entity.ApprovalRequest) {
			req.Status = entity.ApprovalStatusApproved
			req.ApprovalNotes = notes
			req.ReviewedBy = &actorID
			req.ReviewedAt = &now
			req.UpdatedAt = now
		})
	})
}

// Reject transiciona reviewed→rejected. Motivo e categoria (da taxonomia fixa)
// são obrigatórios; a validação acontece antes de qualquer mutação.
func (uc *UseCase) Reject(ctx context.Context, id, actorID string, in dto.RejectBudgetRequest) (*dto.BudgetResponse, error) {
	if in.Reason == "" {
		return nil, domain.ErrRejectionReasonRequired
	}
	if in.Category == "" {
		return nil, domain.ErrRejectionCategoryRequired
	}
	if !entity.ValidRejectionCategory(in.Category) {
		return nil, domain.ErrRejectionCategoryInvalid
	}
	return uc.transition(ctx, id, entity.BudgetStatusRejected, func(b *entity.Budget, now time.Time, r repos) error {
		b.RejectedBy = &actorID
		b.ReviewedAt = &now
		b.RejectionReason = in.Reason
		b.RejectionCategory = in.Category
		return uc.syncOverlay(r.approvalRepo, b, func(req *entity.ApprovalRequest) {
			req.Status = entity.ApprovalStatusRejected
			req.RejectionReason = in.Reason
			req.RejectionCategory = in.Category
			req.ReviewedBy = &actorID
			req.ReviewedAt = &now
			req.UpdatedAt = now
		})
	})
}

// Restart transiciona rejected→draft para retrabalho, limpando os campos de
// decisão (a solicitação rejeitada permanece no histórico da fila).
func (uc *UseCase) Restart(ctx context.Context, id string) (*dto.BudgetResponse, error) {
	return uc.transition(ctx, id, entity.BudgetStatusDraft, func(b *entity.Budget, now time.Time, _ repos) error {
		b.ApprovedBy = nil
		b.RejectedBy = nil
		b.RejectionReason = ""
		b.RejectionCategory = ""
		b.SubmittedAt = nil
		b.ReviewedAt = nil
		return nil
	})
}

// Release transiciona approved→released. Com centro de custo vinculado, o
// consumo (used += totalCash) acontece na mesma transação e falha com
// ErrBudgetExceeded se o disponível for insuficiente.
func (uc *UseCase) Release(ctx context.Context, id string) (*dto.BudgetResponse, error) {
	return uc.transition(ctx, id, entity.BudgetStatusReleased, func(b *entity.Budget, now time.Time, r repos) error {
		b.ReleasedAt = &now
		if b.CostCenterID == nil {
			return nil
		}
		cc, err := r.costCenterRepo.GetByIDForUpdate(*b.CostCenterID)
		if err != nil {
			return err
		}
		if cc == nil {
			return domain.ErrNotFound
		}
		if cc.AvailableBudget().LessThan(b.TotalCash) {
			return domain.ErrBudgetExceeded
		}
		cc.UsedBudget = cc.UsedBudget.Add(b.TotalCash)
		cc.UpdatedAt = now
		return r.costCenterRepo.Update(cc)
	})
}

// Replicate transiciona released→replicated e clona cada item como
// CompanyProduct da empresa da verba, na mesma transação. A unique key
// (base_product_id, company_id, budget_id) torna o replay idempotente.
func (uc *UseCase) Replicate(ctx context.Context, id string) (*dto.BudgetResponse, error) {
	items, err := uc.budgetRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	// Itens são imutáveis fora de draft; os produtos base podem ser lidos fora da tx.
	bases := make(map[string]*entity.BaseProduct, len(items))
	for _, it := range items {
		if _, ok := bases[it.BaseProductID]; ok {
			continue
		}
		base, err := uc.baseProductRepo.GetByID(it.BaseProductID)
		if err != nil {
			return nil, err
		}
		if base == nil {
			return nil, domain.ErrNotFound
		}
		bases[it.BaseProductID] = base
	}

	return uc.transition(ctx, id, entity.BudgetStatusReplicated, func(b *entity.Budget, now time.Time, r repos) error {
		b.ReplicatedAt = &now
		for _, it := range items {
			base := bases[it.BaseProductID]
			cp := &entity.CompanyProduct{
				ID:            uuid.New().String(),
				CompanyID:     b.CompanyID,
				BaseProductID: it.BaseProductID,
				BudgetID:      &b.ID,
				Name:          base.Name,
				Price:         it.UnitPrice,
				PointsCost:    it.UnitPoints,
				StockQuantity: it.Qty,
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if _, err := r.companyProductRepo.CreateFromBudget(cp); err != nil {
				return err
			}
		}
		return nil
	})
}

// repos agrupa os repositórios da transação para os hooks de transição.
type repos struct {
	budgetRepo         repository.BudgetRepository
	approvalRepo       repository.ApprovalRequestRepository
	companyProductRepo repository.CompanyProductRepository
	costCenterRepo     repository.CostCenterRepository
}

// transition aplica uma transição da máquina de estados: valida contra a
// tabela com a linha bloqueada, roda o hook específico e grava o novo status.
// Falha em qualquer passo desfaz tudo (status permanece o de origem).
func (uc *UseCase) transition(ctx context.Context, id, to string, hook func(*entity.Budget, time.Time, repos) error) (*dto.BudgetResponse, error) {
	var out *entity.Budget
	err := uc.txRunner.RunBudget(ctx, func(
		budgetRepo repository.BudgetRepository,
		approvalRepo repository.ApprovalRequestRepository,
		companyProductRepo repository.CompanyProductRepository,
		costCenterRepo repository.CostCenterRepository,
	) error {
		b, err := budgetRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if err := budgetdomain.Transition(b.Status, to); err != nil {
			return err
		}
		now := time.Now()
		if err := hook(b, now, repos{budgetRepo, approvalRepo, companyProductRepo, costCenterRepo}); err != nil {
			return err
		}
		b.Status = to
		b.UpdatedAt = now
		if err := budgetRepo.Update(b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(out, nil), nil
}

// syncOverlay atualiza a solicitação da fila que espelha a verba, se ainda
// estiver aberta. A decisão e a transição ficam na mesma transação (sem drift).
func (uc *UseCase) syncOverlay(approvalRepo repository.ApprovalRequestRepository, b *entity.Budget, apply func(*entity.ApprovalRequest)) error {
	req, err := approvalRepo.GetByReference(entity.ApprovalTypeBudget, b.ID)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}
	if req.Status != entity.ApprovalStatusPending && req.Status != entity.ApprovalStatusInfoRequested {
		return nil
	}
	apply(req)
	return approvalRepo.Update(req)
}

func (uc *UseCase) toResponse(b *entity.Budget, items []*entity.BudgetItem) *dto.BudgetResponse {
	resp := &dto.BudgetResponse{
		ID:                b.ID,
		CompanyID:         b.CompanyID,
		Title:             b.Title,
		Status:            b.Status,
		TotalCash:         b.TotalCash,
		TotalPoints:       b.TotalPoints,
		TotalItems:        b.TotalItems,
		CostCenterID:      b.CostCenterID,
		RequestedBy:       b.RequestedBy,
		ApprovedBy:        b.ApprovedBy,
		RejectedBy:        b.RejectedBy,
		RejectionReason:   b.RejectionReason,
		RejectionCategory: b.RejectionCategory,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		SubmittedAt:       b.SubmittedAt,
		ReviewedAt:        b.ReviewedAt,
		ReleasedAt:        b.ReleasedAt,
		ReplicatedAt:      b.ReplicatedAt,
		Items:             []dto.BudgetItemResponse{},
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.BudgetItemResponse{
			ID:             it.ID,
			BaseProductID:  it.BaseProductID,
			Qty:            it.Qty,
			UnitPrice:      it.UnitPrice,
			UnitPoints:     it.UnitPoints,
			SubtotalCash:   it.SubtotalCash,
			SubtotalPoints: it.SubtotalPoints,
		})
	}
	return resp
}
