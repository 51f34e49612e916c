package repository

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// GetByIDForUpdate e UpdatePoints existem para o razão de pontos: a leitura
// bloqueia a linha (SELECT FOR UPDATE) e o novo saldo é gravado na mesma
// transação do lançamento.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByIDForUpdate(id string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePoints(userID string, points int64) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	ListTags(companyID string) ([]string, error)
}
