package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// CostCenterUseCase aplica regras de negócio para centros de custo. O saldo
// disponível é sempre derivado (allocated − used); o consumo acontece na
// liberação de verbas, nunca por aqui.
type CostCenterUseCase struct {
	repo repository.CostCenterRepository
}

// NewCostCenterUseCase constrói o caso de uso com o porto de persistência.
func NewCostCenterUseCase(repo repository.CostCenterRepository) *CostCenterUseCase {
	return &CostCenterUseCase{repo: repo}
}

// Create cria um centro de custo com consumo zerado.
func (uc *CostCenterUseCase) Create(companyID string, in dto.CreateCostCenterRequest) (*dto.CostCenterResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AllocatedBudget.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cc := &entity.CostCenter{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		AllocatedBudget: in.AllocatedBudget,
		UsedBudget:      decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(cc); err != nil {
		return nil, err
	}
	return entityToCostCenterResponse(cc), nil
}

// GetByID obtém um centro de custo da empresa.
func (uc *CostCenterUseCase) GetByID(companyID, id string) (*dto.CostCenterResponse, error) {
	cc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cc == nil || cc.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return entityToCostCenterResponse(cc), nil
}

// Update atualiza nome/alocação. Reduzir a alocação abaixo do já consumido
// não é permitido (o disponível ficaria negativo).
func (uc *CostCenterUseCase) Update(companyID, id string, in dto.UpdateCostCenterRequest) (*dto.CostCenterResponse, error) {
	cc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cc == nil || cc.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		cc.Name = *in.Name
	}
	if in.AllocatedBudget != nil {
		if in.AllocatedBudget.LessThan(cc.UsedBudget) {
			return nil, domain.ErrInvalidInput
		}
		cc.AllocatedBudget = *in.AllocatedBudget
	}
	cc.UpdatedAt = time.Now()
	if err := uc.repo.Update(cc); err != nil {
		return nil, err
	}
	return entityToCostCenterResponse(cc), nil
}

// ListByCompany lista centros de custo da empresa com paginação.
func (uc *CostCenterUseCase) ListByCompany(companyID string, limit, offset int) (*dto.CostCenterListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostCenterResponse, 0, len(list))
	for _, cc := range list {
		items = append(items, *entityToCostCenterResponse(cc))
	}
	return &dto.CostCenterListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToCostCenterResponse(cc *entity.CostCenter) *dto.CostCenterResponse {
	if cc == nil {
		return nil
	}
	return &dto.CostCenterResponse{
		ID:              cc.ID,
		CompanyID:       cc.CompanyID,
		Name:            cc.Name,
		AllocatedBudget: cc.AllocatedBudget,
		UsedBudget:      cc.UsedBudget,
		AvailableBudget: cc.AvailableBudget(),
		CreatedAt:       cc.CreatedAt,
		UpdatedAt:       cc.UpdatedAt,
	}
}
