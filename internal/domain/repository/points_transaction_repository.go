package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// PointsTransactionRepository porto do razão de pontos (append-only: sem
// update nem delete; correções são novos lançamentos).
type PointsTransactionRepository interface {
	Create(tx *entity.PointsTransaction) error
	ListByUser(userID string, limit, offset int) ([]*entity.PointsTransaction, error) // mais recentes primeiro
	SumByUser(userID string) (int64, error)                                           // créditos − débitos aplicados
}
