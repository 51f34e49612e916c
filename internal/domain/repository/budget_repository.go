package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// BudgetRepository porto de persistência para Budget e seus itens (DIP).
// Mutação de item e recálculo de totais acontecem na mesma transação SQL
// (via TxRunner), nunca isoladamente.
type BudgetRepository interface {
	Create(budget *entity.Budget) error
	GetByID(id string) (*entity.Budget, error)
	GetByIDForUpdate(id string) (*entity.Budget, error)
	Update(budget *entity.Budget) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Budget, error)

	CreateItem(item *entity.BudgetItem) error
	GetItem(itemID string) (*entity.BudgetItem, error)
	UpdateItem(item *entity.BudgetItem) error
	DeleteItem(itemID string) error
	ListItems(budgetID string) ([]*entity.BudgetItem, error)
}
