package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// CostCenterRepository porto de persistência para centros de custo (DIP).
type CostCenterRepository interface {
	Create(cc *entity.CostCenter) error
	GetByID(id string) (*entity.CostCenter, error)
	GetByIDForUpdate(id string) (*entity.CostCenter, error)
	Update(cc *entity.CostCenter) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.CostCenter, error)
}
