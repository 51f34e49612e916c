package domain

import "errors"

// Erros de domínio (sem dependências externas). A mensagem é o texto visível ao usuário.
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("o email já está cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrInsufficientBalance = errors.New("saldo insuficiente")
	ErrInvalidTransition   = errors.New("transição de status não permitida")
	ErrBudgetExceeded      = errors.New("verba do centro de custo excedida")
	ErrBudgetNotEditable   = errors.New("itens só podem ser alterados em rascunho")
	ErrBudgetNoItems       = errors.New("verba sem itens")

	// Validações de rejeição (fila de aprovação e verbas)
	ErrRejectionReasonRequired   = errors.New("motivo da rejeição obrigatório")
	ErrRejectionCategoryRequired = errors.New("selecione uma categoria de rejeição")
	ErrRejectionCategoryInvalid  = errors.New("categoria de rejeição inválida")
)
