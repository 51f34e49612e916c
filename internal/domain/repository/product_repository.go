package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// BaseProductRepository porto do catálogo global (dado de referência).
// Search recebe o termo já normalizado (catalog.Normalize) e compara contra a
// coluna name_normalized mantida na escrita.
type BaseProductRepository interface {
	Create(p *entity.BaseProduct) error
	GetByID(id string) (*entity.BaseProduct, error)
	Update(p *entity.BaseProduct) error
	Delete(id string) error
	List(category string, limit, offset int) ([]*entity.BaseProduct, error)
	Search(normTerm string, limit, offset int) ([]*entity.BaseProduct, error)
}

// CompanyProductRepository porto do catálogo por empresa.
// CreateFromBudget usa a unique key (base_product_id, company_id, budget_id)
// com ON CONFLICT DO NOTHING: replay da replicação não duplica linhas.
type CompanyProductRepository interface {
	Create(cp *entity.CompanyProduct) error
	CreateFromBudget(cp *entity.CompanyProduct) (created bool, err error)
	GetByID(id string) (*entity.CompanyProduct, error)
	Update(cp *entity.CompanyProduct) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.CompanyProduct, error)
}
