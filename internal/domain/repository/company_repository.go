package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// CompanyRepository define o porto de persistência para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByCNPJ(cnpj string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
}
