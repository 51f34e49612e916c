package entity

import "time"

// Tipos de transação do razão de pontos.
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// PointsTransaction é um lançamento imutável do razão de pontos (append-only).
// Correções nunca alteram lançamentos existentes: são novos lançamentos de estorno.
type PointsTransaction struct {
	ID          string
	UserID      string
	CompanyID   string
	Type        string // credit, debit
	Amount      int64  // sempre positivo; o tipo define o sinal
	Description string
	OrderNumber string // referência opcional de pedido
	CreatedAt   time.Time
	CreatedBy   string // UserID do ator (ajuste manual) ou o próprio usuário (checkout)
}
