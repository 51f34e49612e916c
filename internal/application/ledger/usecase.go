package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/gamification"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// UseCase implementa o razão de pontos: créditos e débitos append-only com
// saldo em cache no usuário. Cada operação bloqueia a linha do usuário
// (SELECT FOR UPDATE) e grava lançamento + novo saldo na mesma transação.
type UseCase struct {
	txRunner   TxRunner
	userRepo   repository.UserRepository
	pointsRepo repository.PointsTransactionRepository
	levelRepo  repository.LevelRepository
}

// NewUseCase constrói o caso de uso do razão.
func NewUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	pointsRepo repository.PointsTransactionRepository,
	levelRepo repository.LevelRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, userRepo: userRepo, pointsRepo: pointsRepo, levelRepo: levelRepo}
}

// Credit lança um crédito e aumenta o saldo. Sempre bem-sucedido com amount > 0
// e usuário existente.
func (uc *UseCase) Credit(ctx context.Context, companyID, actorID string, in dto.CreditRequest) (*dto.TransactionResponse, error) {
	if in.Amount <= 0 || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.apply(ctx, companyID, actorID, entity.TransactionTypeCredit, in.UserID, in.Amount, in.Description, in.OrderNumber)
}

// Debit lança um débito e reduz o saldo. Falha com ErrInsufficientBalance se
// amount excede o saldo atual; nesse caso saldo e razão ficam intactos.
func (uc *UseCase) Debit(ctx context.Context, companyID, actorID string, in dto.DebitRequest) (*dto.TransactionResponse, error) {
	if in.Amount <= 0 || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.apply(ctx, companyID, actorID, entity.TransactionTypeDebit, in.UserID, in.Amount, in.Description, in.OrderNumber)
}

// Cashback credita floor(orderValue × multiplicador do nível atual) como
// cashback de compra. O multiplicador vem do lookup de níveis com os overrides
// da empresa.
func (uc *UseCase) Cashback(ctx context.Context, companyID, actorID string, in dto.CashbackRequest) (*dto.TransactionResponse, error) {
	if !in.OrderValue.GreaterThan(decimal.Zero) || in.OrderNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	overrides, err := uc.overridesFor(companyID)
	if err != nil {
		return nil, err
	}
	level := gamification.LevelFor(user.Points, overrides)
	amount := in.OrderValue.Mul(level.Multiplier).Floor().IntPart()
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	desc := fmt.Sprintf("cashback compra %s (nível %s)", in.OrderNumber, level.Label)
	return uc.apply(ctx, companyID, actorID, entity.TransactionTypeCredit, in.UserID, amount, desc, in.OrderNumber)
}

// History devolve o histórico do usuário, mais recentes primeiro.
func (uc *UseCase) History(userID string, limit, offset int) (*dto.TransactionListResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.pointsRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Balance devolve saldo atual + nível derivado (recalculado, nunca armazenado
// como autoritativo).
func (uc *UseCase) Balance(userID string) (*dto.BalanceResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	overrides, err := uc.overridesFor(user.CompanyID)
	if err != nil {
		return nil, err
	}
	level := gamification.LevelFor(user.Points, overrides)
	return &dto.BalanceResponse{
		UserID: user.ID,
		Points: user.Points,
		Level: dto.LevelResponse{
			Tier:       level.Tier,
			Label:      level.Label,
			Color:      level.Color,
			Icon:       level.Icon,
			MinPoints:  level.MinPoints,
			Multiplier: level.Multiplier,
		},
	}, nil
}

// apply executa crédito/débito dentro da transação: bloqueia a linha do
// usuário, valida o saldo no caso de débito e grava lançamento + saldo juntos.
func (uc *UseCase) apply(ctx context.Context, companyID, actorID, txType, userID string, amount int64, description, orderNumber string) (*dto.TransactionResponse, error) {
	now := time.Now()
	tx := &entity.PointsTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		CompanyID:   companyID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		OrderNumber: orderNumber,
		CreatedAt:   now,
		CreatedBy:   actorID,
	}

	err := uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		pointsRepo repository.PointsTransactionRepository,
	) error {
		user, err := userRepo.GetByIDForUpdate(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if companyID != "" && user.CompanyID != companyID {
			return domain.ErrForbidden
		}

		newBalance := user.Points
		switch txType {
		case entity.TransactionTypeCredit:
			newBalance += amount
		case entity.TransactionTypeDebit:
			if amount > user.Points {
				return domain.ErrInsufficientBalance
			}
			newBalance -= amount
		default:
			return domain.ErrInvalidInput
		}

		if err := pointsRepo.Create(tx); err != nil {
			return err
		}
		return userRepo.UpdatePoints(userID, newBalance)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

func (uc *UseCase) overridesFor(companyID string) ([]gamification.Override, error) {
	rows, err := uc.levelRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return gamification.FromCustomizations(rows), nil
}

func toTransactionResponse(t *entity.PointsTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		OrderNumber: t.OrderNumber,
		CreatedAt:   t.CreatedAt,
	}
}
