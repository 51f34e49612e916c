package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/budget"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
)

var allStatuses = []string{
	entity.BudgetStatusDraft,
	entity.BudgetStatusSubmitted,
	entity.BudgetStatusReviewed,
	entity.BudgetStatusApproved,
	entity.BudgetStatusRejected,
	entity.BudgetStatusReleased,
	entity.BudgetStatusReplicated,
}

// tabela espelhada do fluxo: draft→submitted→reviewed→approved→released→replicated,
// com desvio reviewed→rejected→draft e autotransições de salvamento.
var allowedPairs = map[[2]string]bool{
	{entity.BudgetStatusDraft, entity.BudgetStatusSubmitted}:       true,
	{entity.BudgetStatusDraft, entity.BudgetStatusDraft}:           true,
	{entity.BudgetStatusSubmitted, entity.BudgetStatusReviewed}:    true,
	{entity.BudgetStatusSubmitted, entity.BudgetStatusSubmitted}:   true,
	{entity.BudgetStatusReviewed, entity.BudgetStatusApproved}:     true,
	{entity.BudgetStatusReviewed, entity.BudgetStatusRejected}:     true,
	{entity.BudgetStatusReviewed, entity.BudgetStatusReviewed}:     true,
	{entity.BudgetStatusApproved, entity.BudgetStatusReleased}:     true,
	{entity.BudgetStatusApproved, entity.BudgetStatusApproved}:     true,
	{entity.BudgetStatusRejected, entity.BudgetStatusDraft}:        true,
	{entity.BudgetStatusRejected, entity.BudgetStatusRejected}:     true,
	{entity.BudgetStatusReleased, entity.BudgetStatusReplicated}:   true,
	{entity.BudgetStatusReleased, entity.BudgetStatusReleased}:     true,
}

// TestTransition_Fechamento percorre o produto cartesiano de status: todo par
// fora da tabela deve falhar com ErrInvalidTransition.
func TestTransition_Fechamento(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			err := budget.Transition(from, to)
			if allowedPairs[[2]string{from, to}] {
				assert.NoError(t, err, "%s→%s deveria ser permitida", from, to)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s→%s deveria falhar", from, to)
			}
		}
	}
}

// TestTransition_PuloDireto cobre o cenário clássico: submitted→approved sem
// passar por reviewed é inválido.
func TestTransition_PuloDireto(t *testing.T) {
	assert.ErrorIs(t, budget.Transition(entity.BudgetStatusSubmitted, entity.BudgetStatusApproved), domain.ErrInvalidTransition)
}

// TestTransition_ReplicatedTerminal garante que replicated não tem saída.
func TestTransition_ReplicatedTerminal(t *testing.T) {
	for _, to := range allStatuses {
		assert.ErrorIs(t, budget.Transition(entity.BudgetStatusReplicated, to), domain.ErrInvalidTransition)
	}
}

// TestTransition_StatusDesconhecido: origem fora do enum nunca transiciona.
func TestTransition_StatusDesconhecido(t *testing.T) {
	assert.ErrorIs(t, budget.Transition("archived", entity.BudgetStatusDraft), domain.ErrInvalidTransition)
}

func TestCanEditItems(t *testing.T) {
	assert.True(t, budget.CanEditItems(entity.BudgetStatusDraft))
	for _, s := range allStatuses[1:] {
		assert.False(t, budget.CanEditItems(s), "itens não editáveis em %s", s)
	}
}
