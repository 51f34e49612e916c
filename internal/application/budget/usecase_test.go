package budget_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	budgetuc "github.com/genautech/yoobe-store-api/internal/application/budget"
	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória: o store simula o banco e o fakeTxRunner simula
// Commit/Rollback restaurando o snapshot quando fn retorna erro.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	budgets     map[string]*entity.Budget
	items       map[string]*entity.BudgetItem
	approvals   map[string]*entity.ApprovalRequest
	products    map[string]*entity.BaseProduct
	company     map[string]*entity.CompanyProduct
	companyKeys map[string]bool // unique key (base, company, budget)
	costCenters map[string]*entity.CostCenter
	users       map[string]*entity.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		budgets:     map[string]*entity.Budget{},
		items:       map[string]*entity.BudgetItem{},
		approvals:   map[string]*entity.ApprovalRequest{},
		products:    map[string]*entity.BaseProduct{},
		company:     map[string]*entity.CompanyProduct{},
		companyKeys: map[string]bool{},
		costCenters: map[string]*entity.CostCenter{},
		users:       map[string]*entity.User{},
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for k, v := range s.budgets {
		c := *v
		cp.budgets[k] = &c
	}
	for k, v := range s.items {
		c := *v
		cp.items[k] = &c
	}
	for k, v := range s.approvals {
		c := *v
		cp.approvals[k] = &c
	}
	for k, v := range s.products {
		c := *v
		cp.products[k] = &c
	}
	for k, v := range s.company {
		c := *v
		cp.company[k] = &c
	}
	for k, v := range s.companyKeys {
		cp.companyKeys[k] = v
	}
	for k, v := range s.costCenters {
		c := *v
		cp.costCenters[k] = &c
	}
	for k, v := range s.users {
		c := *v
		cp.users[k] = &c
	}
	return cp
}

type fakeBudgetRepo struct{ s *fakeStore }

func (r *fakeBudgetRepo) Create(b *entity.Budget) error { cp := *b; r.s.budgets[b.ID] = &cp; return nil }
func (r *fakeBudgetRepo) GetByID(id string) (*entity.Budget, error) {
	b := r.s.budgets[id]
	if b == nil {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (r *fakeBudgetRepo) GetByIDForUpdate(id string) (*entity.Budget, error) { return r.GetByID(id) }
func (r *fakeBudgetRepo) Update(b *entity.Budget) error {
	cp := *b
	r.s.budgets[b.ID] = &cp
	return nil
}
func (r *fakeBudgetRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range r.s.budgets {
		if b.CompanyID == companyID && (status == "" || b.Status == status) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeBudgetRepo) CreateItem(it *entity.BudgetItem) error {
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}
func (r *fakeBudgetRepo) GetItem(itemID string) (*entity.BudgetItem, error) {
	it := r.s.items[itemID]
	if it == nil {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeBudgetRepo) UpdateItem(it *entity.BudgetItem) error {
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}
func (r *fakeBudgetRepo) DeleteItem(itemID string) error { delete(r.s.items, itemID); return nil }
func (r *fakeBudgetRepo) ListItems(budgetID string) ([]*entity.BudgetItem, error) {
	var out []*entity.BudgetItem
	for _, it := range r.s.items {
		if it.BudgetID == budgetID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeApprovalRepo struct{ s *fakeStore }

func (r *fakeApprovalRepo) Create(req *entity.ApprovalRequest) error {
	cp := *req
	r.s.approvals[req.ID] = &cp
	return nil
}
func (r *fakeApprovalRepo) GetByID(id string) (*entity.ApprovalRequest, error) {
	a := r.s.approvals[id]
	if a == nil {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
func (r *fakeApprovalRepo) GetByIDForUpdate(id string) (*entity.ApprovalRequest, error) {
	return r.GetByID(id)
}
func (r *fakeApprovalRepo) GetByReference(reqType, referenceID string) (*entity.ApprovalRequest, error) {
	var latest *entity.ApprovalRequest
	for _, a := range r.s.approvals {
		if a.Type == reqType && a.ReferenceID == referenceID {
			if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
				latest = a
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}
func (r *fakeApprovalRepo) Update(req *entity.ApprovalRequest) error {
	cp := *req
	r.s.approvals[req.ID] = &cp
	return nil
}
func (r *fakeApprovalRepo) ListByCompany(string, string, int, int) ([]*entity.ApprovalRequest, error) {
	return nil, nil
}

type fakeBaseProductRepo struct{ s *fakeStore }

func (r *fakeBaseProductRepo) Create(p *entity.BaseProduct) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *fakeBaseProductRepo) GetByID(id string) (*entity.BaseProduct, error) {
	p := r.s.products[id]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeBaseProductRepo) Update(*entity.BaseProduct) error { return nil }
func (r *fakeBaseProductRepo) Delete(string) error              { return nil }
func (r *fakeBaseProductRepo) List(string, int, int) ([]*entity.BaseProduct, error) {
	return nil, nil
}
func (r *fakeBaseProductRepo) Search(string, int, int) ([]*entity.BaseProduct, error) {
	return nil, nil
}

type fakeCompanyProductRepo struct{ s *fakeStore }

func budgetKey(cp *entity.CompanyProduct) string {
	bid := ""
	if cp.BudgetID != nil {
		bid = *cp.BudgetID
	}
	return fmt.Sprintf("%s|%s|%s", cp.BaseProductID, cp.CompanyID, bid)
}

func (r *fakeCompanyProductRepo) Create(cp *entity.CompanyProduct) error {
	c := *cp
	r.s.company[cp.ID] = &c
	return nil
}
func (r *fakeCompanyProductRepo) CreateFromBudget(cp *entity.CompanyProduct) (bool, error) {
	key := budgetKey(cp)
	if r.s.companyKeys[key] { // ON CONFLICT DO NOTHING
		return false, nil
	}
	r.s.companyKeys[key] = true
	c := *cp
	r.s.company[cp.ID] = &c
	return true, nil
}
func (r *fakeCompanyProductRepo) GetByID(id string) (*entity.CompanyProduct, error) {
	c := r.s.company[id]
	if c == nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCompanyProductRepo) Update(*entity.CompanyProduct) error { return nil }
func (r *fakeCompanyProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.CompanyProduct, error) {
	var out []*entity.CompanyProduct
	for _, c := range r.s.company {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCostCenterRepo struct{ s *fakeStore }

func (r *fakeCostCenterRepo) Create(cc *entity.CostCenter) error {
	c := *cc
	r.s.costCenters[cc.ID] = &c
	return nil
}
func (r *fakeCostCenterRepo) GetByID(id string) (*entity.CostCenter, error) {
	c := r.s.costCenters[id]
	if c == nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCostCenterRepo) GetByIDForUpdate(id string) (*entity.CostCenter, error) {
	return r.GetByID(id)
}
func (r *fakeCostCenterRepo) Update(cc *entity.CostCenter) error {
	c := *cc
	r.s.costCenters[cc.ID] = &c
	return nil
}
func (r *fakeCostCenterRepo) ListByCompany(string, int, int) ([]*entity.CostCenter, error) {
	return nil, nil
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u := r.s.users[id]
	if u == nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) GetByIDForUpdate(id string) (*entity.User, error) { return r.GetByID(id) }
func (r *fakeUserRepo) GetByEmailAndCompany(string, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error)               { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error                              { return nil }
func (r *fakeUserRepo) UpdatePoints(string, int64) error                       { return nil }
func (r *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) ListTags(string) ([]string, error)                      { return nil, nil }

type fakeTxRunner struct{ s *fakeStore }

func (f *fakeTxRunner) RunBudget(_ context.Context, fn func(
	budgetRepo repository.BudgetRepository,
	approvalRepo repository.ApprovalRequestRepository,
	companyProductRepo repository.CompanyProductRepository,
	costCenterRepo repository.CostCenterRepository,
) error) error {
	snap := f.s.snapshot()
	if err := fn(&fakeBudgetRepo{s: f.s}, &fakeApprovalRepo{s: f.s}, &fakeCompanyProductRepo{s: f.s}, &fakeCostCenterRepo{s: f.s}); err != nil {
		*f.s = *snap // rollback
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(s *fakeStore) *budgetuc.UseCase {
	return budgetuc.NewUseCase(
		&fakeTxRunner{s: s},
		&fakeBudgetRepo{s: s},
		&fakeBaseProductRepo{s: s},
		&fakeCostCenterRepo{s: s},
		&fakeUserRepo{s: s},
	)
}

func seedProduct(s *fakeStore, id string, price float64) {
	s.products[id] = &entity.BaseProduct{
		ID:    id,
		Name:  "Produto " + id,
		Price: decimal.NewFromFloat(price),
	}
}

func seedBudgetWithItems(t *testing.T, s *fakeStore) string {
	t.Helper()
	uc := newUseCase(s)
	s.users["u-gestor"] = &entity.User{ID: "u-gestor", Name: "Gestora", Email: "gestora@acme.com.br"}
	seedProduct(s, "p-caneca", 25)
	seedProduct(s, "p-mochila", 100)

	created, err := uc.Create("c-acme", "u-gestor", dto.CreateBudgetRequest{Title: "Kit onboarding"})
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), created.ID, dto.AddBudgetItemRequest{BaseProductID: "p-caneca", Qty: 10})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), created.ID, dto.AddBudgetItemRequest{BaseProductID: "p-mochila", Qty: 5})
	require.NoError(t, err)
	return created.ID
}

// advance leva a verba até o status desejado pelo caminho feliz.
func advance(t *testing.T, uc *budgetuc.UseCase, id, to string) {
	t.Helper()
	path := []string{
		entity.BudgetStatusSubmitted,
		entity.BudgetStatusReviewed,
		entity.BudgetStatusApproved,
		entity.BudgetStatusReleased,
		entity.BudgetStatusReplicated,
	}
	for _, st := range path {
		var err error
		switch st {
		case entity.BudgetStatusSubmitted:
			_, err = uc.Submit(context.Background(), id, "u-gestor")
		case entity.BudgetStatusReviewed:
			_, err = uc.Review(context.Background(), id)
		case entity.BudgetStatusApproved:
			_, err = uc.Approve(context.Background(), id, "u-admin", "")
		case entity.BudgetStatusReleased:
			_, err = uc.Release(context.Background(), id)
		case entity.BudgetStatusReplicated:
			_, err = uc.Replicate(context.Background(), id)
		}
		require.NoError(t, err)
		if st == to {
			return
		}
	}
	t.Fatalf("status alvo desconhecido: %s", to)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totais derivados
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_TotaisDerivados(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)

	// 10 × 25.00 + 5 × 100.00 = 750.00; pontos default = ceil(preço)
	b, err := newUseCase(s).GetByID(id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(750).Equal(b.TotalCash), "TotalCash = %s", b.TotalCash)
	assert.Equal(t, int64(750), b.TotalPoints)
	assert.Equal(t, 2, b.TotalItems)
}

func TestAddItem_PrecoPorFaixaDeQuantidade(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)
	s.products["p-camiseta"] = &entity.BaseProduct{
		ID:    "p-camiseta",
		Name:  "Camiseta",
		Price: decimal.NewFromInt(30),
		PriceTiers: []entity.PriceTier{
			{MinQty: 10, Price: decimal.NewFromInt(27)},
			{MinQty: 50, Price: decimal.NewFromInt(24)},
		},
	}
	created, err := uc.Create("c-acme", "u-gestor", dto.CreateBudgetRequest{Title: "Uniformes"})
	require.NoError(t, err)

	b, err := uc.AddItem(context.Background(), created.ID, dto.AddBudgetItemRequest{BaseProductID: "p-camiseta", Qty: 50})
	require.NoError(t, err)
	require.Len(t, b.Items, 1)
	assert.True(t, decimal.NewFromInt(24).Equal(b.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(1200).Equal(b.TotalCash))
}

func TestUpdateItem_RecalculaSubtotais(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)

	b, err := uc.GetByID(id)
	require.NoError(t, err)
	var itemID string
	for _, it := range b.Items {
		if it.BaseProductID == "p-caneca" {
			itemID = it.ID
		}
	}
	require.NotEmpty(t, itemID)

	qty := 20
	b, err = uc.UpdateItem(context.Background(), id, itemID, dto.UpdateBudgetItemRequest{Qty: &qty})
	require.NoError(t, err)
	// 20 × 25.00 + 5 × 100.00 = 1000.00
	assert.True(t, decimal.NewFromInt(1000).Equal(b.TotalCash), "TotalCash = %s", b.TotalCash)
}

func TestRemoveItem_RecalculaTotais(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)

	b, err := uc.GetByID(id)
	require.NoError(t, err)
	b, err = uc.RemoveItem(context.Background(), id, b.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.TotalItems)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_SemItensFalha(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)
	created, err := uc.Create("c-acme", "u-gestor", dto.CreateBudgetRequest{Title: "Vazia"})
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), created.ID, "u-gestor")
	assert.ErrorIs(t, err, domain.ErrBudgetNoItems)

	b, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusDraft, b.Status)
}

func TestSubmit_CriaSolicitacaoNaFila(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)

	b, err := uc.Submit(context.Background(), id, "u-gestor")
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusSubmitted, b.Status)
	require.NotNil(t, b.SubmittedAt)

	req, err := (&fakeApprovalRepo{s: s}).GetByReference(entity.ApprovalTypeBudget, id)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, entity.ApprovalStatusPending, req.Status)
	assert.Equal(t, "Kit onboarding", req.Title)
	assert.Equal(t, "gestora@acme.com.br", req.RequesterEmail)
	assert.True(t, decimal.NewFromInt(750).Equal(req.Value))
}

func TestTransicao_SubmittedParaApprovedFalha(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusSubmitted)

	// pular reviewed não é permitido
	_, err := uc.Approve(context.Background(), id, "u-admin", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	b, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusSubmitted, b.Status)
}

func TestEditarItens_ForaDeDraftFalha(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusSubmitted)

	_, err := uc.AddItem(context.Background(), id, dto.AddBudgetItemRequest{BaseProductID: "p-caneca", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrBudgetNotEditable)
}

func TestApprove_SincronizaFila(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusReviewed)

	b, err := uc.Approve(context.Background(), id, "u-admin", "ok para o trimestre")
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusApproved, b.Status)
	require.NotNil(t, b.ApprovedBy)
	assert.Equal(t, "u-admin", *b.ApprovedBy)

	req, err := (&fakeApprovalRepo{s: s}).GetByReference(entity.ApprovalTypeBudget, id)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, req.Status)
	assert.Equal(t, "ok para o trimestre", req.ApprovalNotes)
}

func TestReject_ValidaMotivoECategoria(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusReviewed)

	_, err := uc.Reject(context.Background(), id, "u-admin", dto.RejectBudgetRequest{Category: "other"})
	assert.ErrorIs(t, err, domain.ErrRejectionReasonRequired)

	_, err = uc.Reject(context.Background(), id, "u-admin", dto.RejectBudgetRequest{Reason: "fora da política"})
	assert.ErrorIs(t, err, domain.ErrRejectionCategoryRequired)

	_, err = uc.Reject(context.Background(), id, "u-admin", dto.RejectBudgetRequest{Reason: "x", Category: "inventada"})
	assert.ErrorIs(t, err, domain.ErrRejectionCategoryInvalid)

	b, err := uc.Reject(context.Background(), id, "u-admin", dto.RejectBudgetRequest{
		Reason:   "estourou o teto do trimestre",
		Category: entity.RejectionCategoryBudgetExceeded,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusRejected, b.Status)
	assert.Equal(t, "estourou o teto do trimestre", b.RejectionReason)
}

func TestRestart_LimpaCamposDeDecisao(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusReviewed)

	_, err := uc.Reject(context.Background(), id, "u-admin", dto.RejectBudgetRequest{
		Reason: "faltou detalhar", Category: entity.RejectionCategoryMissingInfo,
	})
	require.NoError(t, err)

	b, err := uc.Restart(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusDraft, b.Status)
	assert.Empty(t, b.RejectionReason)
	assert.Empty(t, b.RejectionCategory)
	assert.Nil(t, b.RejectedBy)
	assert.Nil(t, b.SubmittedAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Release: consumo do centro de custo
// ──────────────────────────────────────────────────────────────────────────────

func TestRelease_ConsomeCentroDeCusto(t *testing.T) {
	s := newFakeStore()
	s.costCenters["cc-mkt"] = &entity.CostCenter{
		ID: "cc-mkt", CompanyID: "c-acme", Name: "Marketing",
		AllocatedBudget: decimal.NewFromInt(1000),
	}
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	ccID := "cc-mkt"
	_, err := uc.Update(context.Background(), id, dto.UpdateBudgetRequest{CostCenterID: &ccID})
	require.NoError(t, err)
	advance(t, uc, id, entity.BudgetStatusReleased)

	cc := s.costCenters["cc-mkt"]
	assert.True(t, decimal.NewFromInt(750).Equal(cc.UsedBudget), "UsedBudget = %s", cc.UsedBudget)
	assert.True(t, decimal.NewFromInt(250).Equal(cc.AvailableBudget()))
}

func TestRelease_EstouraCentroDeCusto(t *testing.T) {
	s := newFakeStore()
	s.costCenters["cc-rh"] = &entity.CostCenter{
		ID: "cc-rh", CompanyID: "c-acme", Name: "RH",
		AllocatedBudget: decimal.NewFromInt(500),
	}
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	ccID := "cc-rh"
	_, err := uc.Update(context.Background(), id, dto.UpdateBudgetRequest{CostCenterID: &ccID})
	require.NoError(t, err)
	advance(t, uc, id, entity.BudgetStatusApproved)

	_, err = uc.Release(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrBudgetExceeded)

	// rollback: status e consumo intactos
	b, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusApproved, b.Status)
	assert.True(t, decimal.Zero.Equal(s.costCenters["cc-rh"].UsedBudget))
}

// ──────────────────────────────────────────────────────────────────────────────
// Replicação
// ──────────────────────────────────────────────────────────────────────────────

func TestReplicate_ClonaItensComOverrides(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusReplicated)

	b, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetStatusReplicated, b.Status)
	require.NotNil(t, b.ReplicatedAt)

	clones, err := (&fakeCompanyProductRepo{s: s}).ListByCompany("c-acme", 100, 0)
	require.NoError(t, err)
	require.Len(t, clones, 2)
	for _, c := range clones {
		require.NotNil(t, c.BudgetID)
		assert.Equal(t, id, *c.BudgetID)
		assert.True(t, c.IsActive)
		switch c.BaseProductID {
		case "p-caneca":
			assert.True(t, decimal.NewFromInt(25).Equal(c.Price))
			assert.Equal(t, 10, c.StockQuantity)
		case "p-mochila":
			assert.True(t, decimal.NewFromInt(100).Equal(c.Price))
			assert.Equal(t, 5, c.StockQuantity)
		default:
			t.Fatalf("clone inesperado: %s", c.BaseProductID)
		}
	}
}

func TestReplicate_EhTerminal(t *testing.T) {
	s := newFakeStore()
	id := seedBudgetWithItems(t, s)
	uc := newUseCase(s)
	advance(t, uc, id, entity.BudgetStatusReplicated)

	_, err := uc.Replicate(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// replay não duplicou clones (unique key no repositório)
	clones, err := (&fakeCompanyProductRepo{s: s}).ListByCompany("c-acme", 100, 0)
	require.NoError(t, err)
	assert.Len(t, clones, 2)
}
