package ledger

import (
	"context"

	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que saldo em cache e lançamento do
// razão mudem juntos ou não mudem (sem estado rasgado).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		pointsRepo repository.PointsTransactionRepository,
	) error) error
}
