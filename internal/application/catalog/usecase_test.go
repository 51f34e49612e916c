package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genautech/yoobe-store-api/internal/application/catalog"
	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	catalogdomain "github.com/genautech/yoobe-store-api/internal/domain/catalog"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeBaseRepo struct {
	rows map[string]*entity.BaseProduct
	norm map[string]string // id → name_normalized, mantido na escrita
}

func newFakeBaseRepo() *fakeBaseRepo {
	return &fakeBaseRepo{rows: map[string]*entity.BaseProduct{}, norm: map[string]string{}}
}

func (r *fakeBaseRepo) Create(p *entity.BaseProduct) error {
	cp := *p
	r.rows[p.ID] = &cp
	r.norm[p.ID] = catalogdomain.Normalize(p.Name)
	return nil
}
func (r *fakeBaseRepo) GetByID(id string) (*entity.BaseProduct, error) {
	p := r.rows[id]
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeBaseRepo) Update(p *entity.BaseProduct) error {
	cp := *p
	r.rows[p.ID] = &cp
	r.norm[p.ID] = catalogdomain.Normalize(p.Name)
	return nil
}
func (r *fakeBaseRepo) Delete(id string) error {
	delete(r.rows, id)
	delete(r.norm, id)
	return nil
}
func (r *fakeBaseRepo) List(category string, limit, offset int) ([]*entity.BaseProduct, error) {
	var out []*entity.BaseProduct
	for _, p := range r.rows {
		if category == "" || p.Category == category {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeBaseRepo) Search(normTerm string, limit, offset int) ([]*entity.BaseProduct, error) {
	var out []*entity.BaseProduct
	for id, p := range r.rows {
		if strings.Contains(r.norm[id], normTerm) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct{ rows map[string]*entity.CompanyProduct }

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{rows: map[string]*entity.CompanyProduct{}}
}

func (r *fakeCompanyRepo) Create(cp *entity.CompanyProduct) error {
	c := *cp
	r.rows[cp.ID] = &c
	return nil
}
func (r *fakeCompanyRepo) CreateFromBudget(cp *entity.CompanyProduct) (bool, error) {
	c := *cp
	r.rows[cp.ID] = &c
	return true, nil
}
func (r *fakeCompanyRepo) GetByID(id string) (*entity.CompanyProduct, error) {
	c := r.rows[id]
	if c == nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCompanyRepo) Update(cp *entity.CompanyProduct) error {
	c := *cp
	r.rows[cp.ID] = &c
	return nil
}
func (r *fakeCompanyRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.CompanyProduct, error) {
	var out []*entity.CompanyProduct
	for _, c := range r.rows {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newUseCase() (*catalog.UseCase, *fakeBaseRepo, *fakeCompanyRepo) {
	base := newFakeBaseRepo()
	company := newFakeCompanyRepo()
	return catalog.NewUseCase(base, company), base, company
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo global
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBase_EBusca(t *testing.T) {
	uc, _, _ := newUseCase()

	created, err := uc.CreateBase(dto.CreateBaseProductRequest{
		Name:     "Coleção Verão",
		Category: "vestuario",
		Price:    decimal.NewFromInt(89),
	})
	require.NoError(t, err)
	_, err = uc.CreateBase(dto.CreateBaseProductRequest{
		Name:  "Mochila Executiva",
		Price: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	// busca ignora acentos e caixa
	res, err := uc.SearchBase("colecao", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, created.ID, res.Items[0].ID)

	res, err = uc.SearchBase("COLEÇÃO", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	_, err = uc.SearchBase("", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateBase_CamposParciais(t *testing.T) {
	uc, _, _ := newUseCase()
	created, err := uc.CreateBase(dto.CreateBaseProductRequest{
		Name: "Caneca", Price: decimal.NewFromInt(25), StockAvailable: 100,
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(30)
	updated, err := uc.UpdateBase(created.ID, dto.UpdateBaseProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(updated.Price))
	assert.Equal(t, "Caneca", updated.Name)
	assert.Equal(t, 100, updated.StockAvailable)

	negativo := decimal.NewFromInt(-1)
	_, err = uc.UpdateBase(created.ID, dto.UpdateBaseProductRequest{Price: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteBase_NaoEncontrado(t *testing.T) {
	uc, _, _ := newUseCase()
	err := uc.DeleteBase("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clonagem para o catálogo da empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestClone_DefaultsDoProdutoBase(t *testing.T) {
	uc, _, _ := newUseCase()
	base, err := uc.CreateBase(dto.CreateBaseProductRequest{
		Name: "Garrafa Térmica", Price: decimal.NewFromFloat(79.90), StockAvailable: 40,
	})
	require.NoError(t, err)

	clone, err := uc.Clone("c-acme", dto.CloneProductRequest{BaseProductID: base.ID})
	require.NoError(t, err)
	assert.Equal(t, "c-acme", clone.CompanyID)
	assert.Equal(t, base.ID, clone.BaseProductID)
	assert.Equal(t, "Garrafa Térmica", clone.Name)
	assert.True(t, decimal.NewFromFloat(79.90).Equal(clone.Price))
	assert.Equal(t, int64(80), clone.PointsCost) // ceil(79.90): 1 ponto = R$ 1
	assert.Equal(t, 40, clone.StockQuantity)
	assert.True(t, clone.IsActive)
	assert.Nil(t, clone.BudgetID) // clonagem direta não vem de verba
}

func TestClone_ComOverrides(t *testing.T) {
	uc, _, _ := newUseCase()
	base, err := uc.CreateBase(dto.CreateBaseProductRequest{
		Name: "Fone Bluetooth", Price: decimal.NewFromInt(200), StockAvailable: 10,
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(180)
	points := int64(150)
	stock := 5
	clone, err := uc.Clone("c-acme", dto.CloneProductRequest{
		BaseProductID: base.ID,
		Price:         &price,
		PointsCost:    &points,
		StockQuantity: &stock,
	})
	require.NoError(t, err)
	assert.True(t, price.Equal(clone.Price))
	assert.Equal(t, points, clone.PointsCost)
	assert.Equal(t, stock, clone.StockQuantity)
}

func TestClone_EhAditiva(t *testing.T) {
	uc, _, _ := newUseCase()
	base, err := uc.CreateBase(dto.CreateBaseProductRequest{
		Name: "Kit Escritório", Price: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	_, err = uc.Clone("c-acme", dto.CloneProductRequest{BaseProductID: base.ID})
	require.NoError(t, err)
	_, err = uc.Clone("c-acme", dto.CloneProductRequest{BaseProductID: base.ID})
	require.NoError(t, err)

	list, err := uc.ListCompanyProducts("c-acme", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2) // repetir clona de novo
}

func TestUpdateCompanyProduct_IsolamentoPorEmpresa(t *testing.T) {
	uc, _, _ := newUseCase()
	base, err := uc.CreateBase(dto.CreateBaseProductRequest{
		Name: "Agenda", Price: decimal.NewFromInt(35),
	})
	require.NoError(t, err)
	clone, err := uc.Clone("c-acme", dto.CloneProductRequest{BaseProductID: base.ID})
	require.NoError(t, err)

	// outra empresa não enxerga nem altera o clone
	_, err = uc.GetCompanyProduct("c-outra", clone.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inactive := false
	_, err = uc.UpdateCompanyProduct("c-outra", clone.ID, dto.UpdateCompanyProductRequest{IsActive: &inactive})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := uc.UpdateCompanyProduct("c-acme", clone.ID, dto.UpdateCompanyProductRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
