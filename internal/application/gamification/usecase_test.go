package gamification_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/application/gamification"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	gamif "github.com/genautech/yoobe-store-api/internal/domain/gamification"
)

type fakeLevelRepo struct {
	rows map[string][]*entity.LevelCustomization
}

func newFakeLevelRepo() *fakeLevelRepo {
	return &fakeLevelRepo{rows: map[string][]*entity.LevelCustomization{}}
}

func (r *fakeLevelRepo) ListByCompany(companyID string) ([]*entity.LevelCustomization, error) {
	return r.rows[companyID], nil
}
func (r *fakeLevelRepo) Replace(companyID string, rows []*entity.LevelCustomization) error {
	r.rows[companyID] = rows
	return nil
}

func TestGetLevels_SemOverridesDevolvePadrao(t *testing.T) {
	uc := gamification.NewUseCase(newFakeLevelRepo())

	res, err := uc.GetLevels("c-acme")
	require.NoError(t, err)
	require.Len(t, res.Items, 5)
	assert.Equal(t, gamif.TierBronze, res.Items[0].Tier)
	assert.Equal(t, int64(0), res.Items[0].MinPoints)
	assert.Equal(t, gamif.TierDiamond, res.Items[4].Tier)
	assert.Equal(t, int64(50000), res.Items[4].MinPoints)
}

func TestUpdateLevels_AplicaOverridesParciais(t *testing.T) {
	uc := gamification.NewUseCase(newFakeLevelRepo())

	label := "Prata Corporativa"
	min := int64(2000)
	res, err := uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{
			{Tier: gamif.TierSilver, Label: &label, MinPoints: &min},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Prata Corporativa", res.Items[1].Label)
	assert.Equal(t, int64(2000), res.Items[1].MinPoints)
	// demais tiers mantêm o padrão
	assert.Equal(t, "Ouro", res.Items[2].Label)
}

func TestUpdateLevels_BronzeFixadoEmZero(t *testing.T) {
	repo := newFakeLevelRepo()
	uc := gamification.NewUseCase(repo)

	min := int64(500)
	res, err := uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{
			{Tier: gamif.TierBronze, MinPoints: &min},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Items[0].MinPoints)
}

func TestUpdateLevels_LimiaresPrecisamCrescer(t *testing.T) {
	uc := gamification.NewUseCase(newFakeLevelRepo())

	// silver acima do gold padrão quebra a monotonicidade
	min := int64(6000)
	_, err := uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{
			{Tier: gamif.TierSilver, MinPoints: &min},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateLevels_ValidaTierEDuplicata(t *testing.T) {
	uc := gamification.NewUseCase(newFakeLevelRepo())

	_, err := uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{{Tier: "copper"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{{Tier: gamif.TierGold}, {Tier: gamif.TierGold}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-1)
	_, err = uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{{Tier: gamif.TierGold, Multiplier: &neg}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateLevels_SubstituiConjuntoInteiro(t *testing.T) {
	repo := newFakeLevelRepo()
	uc := gamification.NewUseCase(repo)

	label := "Ouro Premium"
	_, err := uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{{Tier: gamif.TierGold, Label: &label}},
	})
	require.NoError(t, err)

	// um novo Replace sem o gold remove o override anterior
	res, err := uc.UpdateLevels("c-acme", dto.UpdateLevelsRequest{
		Levels: []dto.LevelOverrideRequest{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ouro", res.Items[2].Label)
}
