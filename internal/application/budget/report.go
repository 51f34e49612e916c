package budget

import (
	"context"

	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// ReportUseCase monta o relatório em PDF de uma verba.
type ReportUseCase struct {
	budgetRepo      repository.BudgetRepository
	companyRepo     repository.CompanyRepository
	baseProductRepo repository.BaseProductRepository
	generator       PDFGenerator
}

// NewReportUseCase constrói o caso de uso do relatório.
func NewReportUseCase(
	budgetRepo repository.BudgetRepository,
	companyRepo repository.CompanyRepository,
	baseProductRepo repository.BaseProductRepository,
	generator PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		budgetRepo:      budgetRepo,
		companyRepo:     companyRepo,
		baseProductRepo: baseProductRepo,
		generator:       generator,
	}
}

// GeneratePDF carrega verba, empresa, itens e produtos e delega ao gerador.
// Leitura pura: qualquer status serve, inclusive rascunho.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, budgetID string) ([]byte, error) {
	b, err := uc.budgetRepo.GetByID(budgetID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(b.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.budgetRepo.ListItems(budgetID)
	if err != nil {
		return nil, err
	}
	products := make(map[string]*entity.BaseProduct, len(items))
	for _, it := range items {
		if _, ok := products[it.BaseProductID]; ok {
			continue
		}
		p, err := uc.baseProductRepo.GetByID(it.BaseProductID)
		if err != nil {
			return nil, err
		}
		products[it.BaseProductID] = p
	}
	return uc.generator.GenerateBudgetPDF(ctx, b, company, items, products)
}
