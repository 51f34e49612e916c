package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// LevelRepository porto das personalizações de nível por empresa.
// Replace troca o conjunto inteiro de overrides da empresa de forma atômica.
type LevelRepository interface {
	ListByCompany(companyID string) ([]*entity.LevelCustomization, error)
	Replace(companyID string, rows []*entity.LevelCustomization) error
}
