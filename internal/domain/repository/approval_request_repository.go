package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// Agrupamentos da fila para projeção de leitura.
const (
	ApprovalGroupPendentes = "pendentes" // pending + info_requested
	ApprovalGroupHistorico = "historico" // approved + rejected
)

// ApprovalRequestRepository porto de persistência para a fila de aprovação.
// Registros nunca são excluídos (histórico).
type ApprovalRequestRepository interface {
	Create(req *entity.ApprovalRequest) error
	GetByID(id string) (*entity.ApprovalRequest, error)
	GetByIDForUpdate(id string) (*entity.ApprovalRequest, error)
	GetByReference(reqType, referenceID string) (*entity.ApprovalRequest, error)
	Update(req *entity.ApprovalRequest) error
	ListByCompany(companyID, group string, limit, offset int) ([]*entity.ApprovalRequest, error)
}
