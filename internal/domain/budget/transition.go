// Package budget concentra a máquina de estados das verbas (serviço de domínio).
// A tabela de transições é fechada: tudo que não está nela falha com
// domain.ErrInvalidTransition, sem mutação de estado.
package budget

import (
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
)

// allowed mapeia status de origem → destinos permitidos. Autotransições
// (draft→draft etc.) representam salvamento idempotente sem mudança de estado.
var allowed = map[string][]string{
	entity.BudgetStatusDraft:      {entity.BudgetStatusSubmitted, entity.BudgetStatusDraft},
	entity.BudgetStatusSubmitted:  {entity.BudgetStatusReviewed, entity.BudgetStatusSubmitted},
	entity.BudgetStatusReviewed:   {entity.BudgetStatusApproved, entity.BudgetStatusRejected, entity.BudgetStatusReviewed},
	entity.BudgetStatusApproved:   {entity.BudgetStatusReleased, entity.BudgetStatusApproved},
	entity.BudgetStatusRejected:   {entity.BudgetStatusDraft, entity.BudgetStatusRejected},
	entity.BudgetStatusReleased:   {entity.BudgetStatusReplicated, entity.BudgetStatusReleased},
	// replicated é terminal: nenhuma saída.
}

// Transition valida a transição from→to contra a tabela. Retorna
// domain.ErrInvalidTransition quando não permitida; o chamador não deve ter
// mutado nada antes de chamar.
func Transition(from, to string) error {
	for _, t := range allowed[from] {
		if t == to {
			return nil
		}
	}
	return domain.ErrInvalidTransition
}

// CanEditItems indica se os itens da verba ainda podem ser alterados
// (somente em rascunho).
func CanEditItems(status string) bool {
	return status == entity.BudgetStatusDraft
}
