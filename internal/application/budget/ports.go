package budget

import (
	"context"

	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD com os
// repositórios do agregado de verbas atados a essa tx. Status + totais +
// overlay de aprovação + efeitos colaterais (centro de custo, replicação)
// mudam juntos ou não mudam.
type TxRunner interface {
	RunBudget(ctx context.Context, fn func(
		budgetRepo repository.BudgetRepository,
		approvalRepo repository.ApprovalRequestRepository,
		companyProductRepo repository.CompanyProductRepository,
		costCenterRepo repository.CostCenterRepository,
	) error) error
}

// PDFGenerator gera o relatório em PDF de uma verba para o console do gestor.
// products indexa os BaseProducts dos itens por ID (para exibir nomes).
type PDFGenerator interface {
	GenerateBudgetPDF(ctx context.Context, b *entity.Budget, company *entity.Company, items []*entity.BudgetItem, products map[string]*entity.BaseProduct) ([]byte, error)
}
