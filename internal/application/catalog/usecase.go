// Package catalog implementa o catálogo global (BaseProduct, dado de
// referência somente leitura para as empresas) e o catálogo por empresa
// (CompanyProduct, clones com overrides).
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	catalogdomain "github.com/genautech/yoobe-store-api/internal/domain/catalog"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// UseCase opera os dois catálogos. Replicar nunca altera o BaseProduct:
// clonagens criam CompanyProducts independentes.
type UseCase struct {
	baseRepo    repository.BaseProductRepository
	companyRepo repository.CompanyProductRepository
}

// NewUseCase constrói o caso de uso do catálogo.
func NewUseCase(baseRepo repository.BaseProductRepository, companyRepo repository.CompanyProductRepository) *UseCase {
	return &UseCase{baseRepo: baseRepo, companyRepo: companyRepo}
}

// ── Catálogo global ───────────────────────────────────────────────────────────

// CreateBase cria um item do catálogo global.
func (uc *UseCase) CreateBase(in dto.CreateBaseProductRequest) (*dto.BaseProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.StockAvailable < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.BaseProduct{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Price:          in.Price,
		PriceTiers:     tiersFromDTO(in.PriceTiers),
		StockAvailable: in.StockAvailable,
		IsDigital:      in.IsDigital,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.baseRepo.Create(p); err != nil {
		return nil, err
	}
	return baseToResponse(p), nil
}

// GetBase devolve um item do catálogo global.
func (uc *UseCase) GetBase(id string) (*dto.BaseProductResponse, error) {
	p, err := uc.baseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return baseToResponse(p), nil
}

// UpdateBase atualiza campos de um item do catálogo global.
func (uc *UseCase) UpdateBase(id string, in dto.UpdateBaseProductRequest) (*dto.BaseProductResponse, error) {
	p, err := uc.baseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.PriceTiers != nil {
		p.PriceTiers = tiersFromDTO(*in.PriceTiers)
	}
	if in.StockAvailable != nil {
		if *in.StockAvailable < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.StockAvailable = *in.StockAvailable
	}
	if in.IsDigital != nil {
		p.IsDigital = *in.IsDigital
	}
	p.UpdatedAt = time.Now()
	if err := uc.baseRepo.Update(p); err != nil {
		return nil, err
	}
	return baseToResponse(p), nil
}

// DeleteBase remove um item do catálogo global. Clones existentes continuam
// válidos: carregam cópia dos dados no momento da clonagem.
func (uc *UseCase) DeleteBase(id string) error {
	p, err := uc.baseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.baseRepo.Delete(id)
}

// ListBase lista o catálogo global, com filtro opcional por categoria.
func (uc *UseCase) ListBase(category string, page dto.PageRequest) (*dto.BaseProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.baseRepo.List(category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return baseListResponse(list, page), nil
}

// SearchBase busca por nome ignorando acentuação e caixa
// ("colecao" encontra "Coleção").
func (uc *UseCase) SearchBase(term string, page dto.PageRequest) (*dto.BaseProductListResponse, error) {
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.baseRepo.Search(catalogdomain.Normalize(term), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return baseListResponse(list, page), nil
}

// ── Catálogo por empresa ──────────────────────────────────────────────────────

// Clone replica um BaseProduct no catálogo da empresa, com overrides opcionais
// de preço/pontos/estoque. Clonagem direta é aditiva: repetir cria outro clone
// (diferente da replicação por verba, que é idempotente).
func (uc *UseCase) Clone(companyID string, in dto.CloneProductRequest) (*dto.CompanyProductResponse, error) {
	base, err := uc.baseRepo.GetByID(in.BaseProductID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	cp := &entity.CompanyProduct{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		BaseProductID: base.ID,
		Name:          base.Name,
		Price:         base.Price,
		PointsCost:    base.Price.Ceil().IntPart(),
		StockQuantity: base.StockAvailable,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		cp.Price = *in.Price
	}
	if in.PointsCost != nil {
		if *in.PointsCost < 0 {
			return nil, domain.ErrInvalidInput
		}
		cp.PointsCost = *in.PointsCost
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		cp.StockQuantity = *in.StockQuantity
	}
	if in.IsActive != nil {
		cp.IsActive = *in.IsActive
	}
	if err := uc.companyRepo.Create(cp); err != nil {
		return nil, err
	}
	return companyToResponse(cp), nil
}

// GetCompanyProduct devolve um produto do catálogo da empresa.
func (uc *UseCase) GetCompanyProduct(companyID, id string) (*dto.CompanyProductResponse, error) {
	cp, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cp == nil || cp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return companyToResponse(cp), nil
}

// UpdateCompanyProduct altera overrides do clone. BaseProductID é imutável.
func (uc *UseCase) UpdateCompanyProduct(companyID, id string, in dto.UpdateCompanyProductRequest) (*dto.CompanyProductResponse, error) {
	cp, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cp == nil || cp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		cp.Price = *in.Price
	}
	if in.PointsCost != nil {
		if *in.PointsCost < 0 {
			return nil, domain.ErrInvalidInput
		}
		cp.PointsCost = *in.PointsCost
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		cp.StockQuantity = *in.StockQuantity
	}
	if in.IsActive != nil {
		cp.IsActive = *in.IsActive
	}
	cp.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(cp); err != nil {
		return nil, err
	}
	return companyToResponse(cp), nil
}

// ListCompanyProducts lista o catálogo da empresa.
func (uc *UseCase) ListCompanyProducts(companyID string, page dto.PageRequest) (*dto.CompanyProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.companyRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyProductResponse, 0, len(list))
	for _, cp := range list {
		items = append(items, *companyToResponse(cp))
	}
	return &dto.CompanyProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ── conversões ────────────────────────────────────────────────────────────────

func tiersFromDTO(in []dto.PriceTierDTO) []entity.PriceTier {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.PriceTier, 0, len(in))
	for _, t := range in {
		out = append(out, entity.PriceTier{MinQty: t.MinQty, Price: t.Price})
	}
	return out
}

func tiersToDTO(in []entity.PriceTier) []dto.PriceTierDTO {
	if len(in) == 0 {
		return nil
	}
	out := make([]dto.PriceTierDTO, 0, len(in))
	for _, t := range in {
		out = append(out, dto.PriceTierDTO{MinQty: t.MinQty, Price: t.Price})
	}
	return out
}

func baseToResponse(p *entity.BaseProduct) *dto.BaseProductResponse {
	return &dto.BaseProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price,
		PriceTiers:     tiersToDTO(p.PriceTiers),
		StockAvailable: p.StockAvailable,
		IsDigital:      p.IsDigital,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func baseListResponse(list []*entity.BaseProduct, page dto.PageRequest) *dto.BaseProductListResponse {
	items := make([]dto.BaseProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *baseToResponse(p))
	}
	return &dto.BaseProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func companyToResponse(cp *entity.CompanyProduct) *dto.CompanyProductResponse {
	return &dto.CompanyProductResponse{
		ID:            cp.ID,
		CompanyID:     cp.CompanyID,
		BaseProductID: cp.BaseProductID,
		BudgetID:      cp.BudgetID,
		Name:          cp.Name,
		Price:         cp.Price,
		PointsCost:    cp.PointsCost,
		StockQuantity: cp.StockQuantity,
		IsActive:      cp.IsActive,
		CreatedAt:     cp.CreatedAt,
		UpdatedAt:     cp.UpdatedAt,
	}
}
