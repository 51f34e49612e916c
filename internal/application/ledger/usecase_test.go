package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/application/ledger"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória: o store simula o banco e o fakeTxRunner simula
// Commit/Rollback restaurando o snapshot quando fn retorna erro.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	users map[string]*entity.User
	txs   []*entity.PointsTransaction
}

func newFakeStore(users ...*entity.User) *fakeStore {
	s := &fakeStore{users: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		s.users[u.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{users: map[string]*entity.User{}, txs: append([]*entity.PointsTransaction(nil), s.txs...)}
	for id, u := range s.users {
		uc := *u
		cp.users[id] = &uc
	}
	return cp
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u := r.s.users[id]
	if u == nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) GetByIDForUpdate(id string) (*entity.User, error) { return r.GetByID(id) }
func (r *fakeUserRepo) GetByEmailAndCompany(string, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error              { r.s.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdatePoints(userID string, points int64) error {
	if u := r.s.users[userID]; u != nil {
		u.Points = points
	}
	return nil
}
func (r *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) ListTags(string) ([]string, error)                      { return nil, nil }

type fakePointsRepo struct{ s *fakeStore }

func (r *fakePointsRepo) Create(tx *entity.PointsTransaction) error {
	r.s.txs = append(r.s.txs, tx)
	return nil
}
func (r *fakePointsRepo) ListByUser(userID string, limit, offset int) ([]*entity.PointsTransaction, error) {
	var out []*entity.PointsTransaction
	for i := len(r.s.txs) - 1; i >= 0; i-- { // mais recentes primeiro
		if r.s.txs[i].UserID == userID {
			out = append(out, r.s.txs[i])
		}
	}
	return out, nil
}
func (r *fakePointsRepo) SumByUser(userID string) (int64, error) {
	var sum int64
	for _, t := range r.s.txs {
		if t.UserID != userID {
			continue
		}
		if t.Type == entity.TransactionTypeCredit {
			sum += t.Amount
		} else {
			sum -= t.Amount
		}
	}
	return sum, nil
}

type fakeLevelRepo struct{ rows []*entity.LevelCustomization }

func (r *fakeLevelRepo) ListByCompany(string) ([]*entity.LevelCustomization, error) {
	return r.rows, nil
}
func (r *fakeLevelRepo) Replace(string, []*entity.LevelCustomization) error { return nil }

type fakeTxRunner struct{ s *fakeStore }

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	userRepo repository.UserRepository,
	pointsRepo repository.PointsTransactionRepository,
) error) error {
	snap := f.s.snapshot()
	if err := fn(&fakeUserRepo{s: f.s}, &fakePointsRepo{s: f.s}); err != nil {
		*f.s = *snap // rollback
		return err
	}
	return nil
}

func buildUseCase(s *fakeStore, levels *fakeLevelRepo) *ledger.UseCase {
	if levels == nil {
		levels = &fakeLevelRepo{}
	}
	return ledger.NewUseCase(&fakeTxRunner{s: s}, &fakeUserRepo{s: s}, &fakePointsRepo{s: s}, levels)
}

const (
	companyID = "00000000-0000-0000-0000-0000000000aa"
	actorID   = "00000000-0000-0000-0000-0000000000ff"
	userID    = "00000000-0000-0000-0000-000000000001"
)

func member(points int64) *entity.User {
	return &entity.User{ID: userID, CompanyID: companyID, Points: points, Status: "active"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Débito e crédito
// ──────────────────────────────────────────────────────────────────────────────

// Cenário: saldo 500 → débito de 500 no checkout zera o saldo e gera um
// lançamento de débito.
func TestDebit_SaldoExato(t *testing.T) {
	s := newFakeStore(member(500))
	uc := buildUseCase(s, nil)

	out, err := uc.Debit(context.Background(), companyID, actorID, dto.DebitRequest{
		UserID: userID, Amount: 500, Description: "checkout",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeDebit, out.Type)
	assert.Equal(t, int64(500), out.Amount)
	assert.Equal(t, int64(0), s.users[userID].Points)
	assert.Len(t, s.txs, 1)
}

// Cenário: saldo 0 → débito de 1 falha com saldo insuficiente e nada muda
// (nem saldo nem razão).
func TestDebit_SaldoInsuficienteSemMutacao(t *testing.T) {
	s := newFakeStore(member(0))
	uc := buildUseCase(s, nil)

	_, err := uc.Debit(context.Background(), companyID, actorID, dto.DebitRequest{
		UserID: userID, Amount: 1, Description: "checkout",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, int64(0), s.users[userID].Points)
	assert.Empty(t, s.txs)
}

func TestCredit_AumentaSaldo(t *testing.T) {
	s := newFakeStore(member(100))
	uc := buildUseCase(s, nil)

	out, err := uc.Credit(context.Background(), companyID, actorID, dto.CreditRequest{
		UserID: userID, Amount: 250, Description: "ajuste manual",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeCredit, out.Type)
	assert.Equal(t, int64(350), s.users[userID].Points)
}

func TestCredit_ValidaEntrada(t *testing.T) {
	uc := buildUseCase(newFakeStore(member(0)), nil)

	_, err := uc.Credit(context.Background(), companyID, actorID, dto.CreditRequest{UserID: userID, Amount: 0, Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Credit(context.Background(), companyID, actorID, dto.CreditRequest{UserID: userID, Amount: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDebit_UsuarioInexistente(t *testing.T) {
	uc := buildUseCase(newFakeStore(), nil)
	_, err := uc.Debit(context.Background(), companyID, actorID, dto.DebitRequest{
		UserID: userID, Amount: 10, Description: "checkout",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Invariante do razão: após uma sequência de créditos e débitos (com falhas no
// meio), saldo final == soma(créditos) − soma(débitos aplicados).
func TestLedger_InvarianteDeSaldo(t *testing.T) {
	s := newFakeStore(member(0))
	uc := buildUseCase(s, nil)
	ctx := context.Background()

	ops := []struct {
		txType string
		amount int64
		ok     bool
	}{
		{entity.TransactionTypeCredit, 300, true},
		{entity.TransactionTypeDebit, 100, true},
		{entity.TransactionTypeDebit, 500, false}, // saldo 200, deve falhar
		{entity.TransactionTypeCredit, 50, true},
		{entity.TransactionTypeDebit, 250, true},
	}
	for i, op := range ops {
		var err error
		if op.txType == entity.TransactionTypeCredit {
			_, err = uc.Credit(ctx, companyID, actorID, dto.CreditRequest{UserID: userID, Amount: op.amount, Description: "op"})
		} else {
			_, err = uc.Debit(ctx, companyID, actorID, dto.DebitRequest{UserID: userID, Amount: op.amount, Description: "op"})
		}
		if op.ok {
			require.NoError(t, err, "operação %d", i)
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientBalance, "operação %d", i)
		}
	}

	sum, err := (&fakePointsRepo{s: s}).SumByUser(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
	assert.Equal(t, sum, s.users[userID].Points, "saldo em cache deve igualar a soma do razão")
	assert.Len(t, s.txs, 4, "o débito recusado não gera lançamento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cashback e saldo/nível
// ──────────────────────────────────────────────────────────────────────────────

// 5000 pontos = ouro (multiplicador 1.25): compra de 200.50 credita floor(250.625)=250.
func TestCashback_UsaMultiplicadorDoNivel(t *testing.T) {
	s := newFakeStore(member(5000))
	uc := buildUseCase(s, nil)

	out, err := uc.Cashback(context.Background(), companyID, actorID, dto.CashbackRequest{
		UserID: userID, OrderValue: decimal.RequireFromString("200.50"), OrderNumber: "PED-123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250), out.Amount)
	assert.Equal(t, "PED-123", out.OrderNumber)
	assert.Equal(t, int64(5250), s.users[userID].Points)
}

func TestCashback_ValorInvalido(t *testing.T) {
	uc := buildUseCase(newFakeStore(member(0)), nil)
	_, err := uc.Cashback(context.Background(), companyID, actorID, dto.CashbackRequest{
		UserID: userID, OrderValue: decimal.Zero, OrderNumber: "PED-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBalance_NivelDerivado(t *testing.T) {
	s := newFakeStore(member(49999))
	uc := buildUseCase(s, nil)

	out, err := uc.Balance(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(49999), out.Points)
	assert.Equal(t, "platinum", out.Level.Tier, "49999 ainda é platina, não diamante")
}

func TestHistory_MaisRecentesPrimeiro(t *testing.T) {
	s := newFakeStore(member(0))
	uc := buildUseCase(s, nil)
	ctx := context.Background()

	_, err := uc.Credit(ctx, companyID, actorID, dto.CreditRequest{UserID: userID, Amount: 10, Description: "primeiro"})
	require.NoError(t, err)
	_, err = uc.Credit(ctx, companyID, actorID, dto.CreditRequest{UserID: userID, Amount: 20, Description: "segundo"})
	require.NoError(t, err)

	out, err := uc.History(userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "segundo", out.Items[0].Description)
	assert.Equal(t, "primeiro", out.Items[1].Description)
}
