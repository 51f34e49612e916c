package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditRequest entrada para crédito de pontos.
type CreditRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
	OrderNumber string `json:"order_number"`
}

// DebitRequest entrada para débito de pontos (falha com saldo insuficiente).
type DebitRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
	OrderNumber string `json:"order_number"`
}

// CashbackRequest entrada para cashback de compra: credita
// floor(order_value × multiplicador do nível atual do usuário).
type CashbackRequest struct {
	UserID      string          `json:"user_id" validate:"required,uuid"`
	OrderValue  decimal.Decimal `json:"order_value" validate:"required"`
	OrderNumber string          `json:"order_number" validate:"required"`
}

// TransactionResponse saída de um lançamento do razão.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	OrderNumber string    `json:"order_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse histórico paginado, mais recentes primeiro.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// BalanceResponse saldo atual + nível derivado do usuário.
type BalanceResponse struct {
	UserID string        `json:"user_id"`
	Points int64         `json:"points"`
	Level  LevelResponse `json:"level"`
}
