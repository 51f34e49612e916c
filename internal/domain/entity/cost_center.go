package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostCenter centro de custo de uma empresa. AvailableBudget é sempre derivado
// (allocated − used), nunca gravado de forma independente.
type CostCenter struct {
	ID              string
	CompanyID       string
	Name            string
	AllocatedBudget decimal.Decimal
	UsedBudget      decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AvailableBudget devolve o saldo disponível (allocated − used).
func (c *CostCenter) AvailableBudget() decimal.Decimal {
	return c.AllocatedBudget.Sub(c.UsedBudget)
}
