package gamification_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genautech/yoobe-store-api/internal/domain/gamification"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestLevelFor_Limiares valida os limiares padrão exatos, inclusive as bordas
// (49999 ainda é platina; 50000 já é diamante).
// ──────────────────────────────────────────────────────────────────────────────

func TestLevelFor_Limiares(t *testing.T) {
	cases := []struct {
		points     int64
		tier       string
		multiplier string
	}{
		{0, gamification.TierBronze, "1"},
		{999, gamification.TierBronze, "1"},
		{1000, gamification.TierSilver, "1.1"},
		{4999, gamification.TierSilver, "1.1"},
		{5000, gamification.TierGold, "1.25"},
		{14999, gamification.TierGold, "1.25"},
		{15000, gamification.TierPlatinum, "1.5"},
		{49999, gamification.TierPlatinum, "1.5"},
		{50000, gamification.TierDiamond, "2"},
		{1_000_000, gamification.TierDiamond, "2"},
	}
	for _, c := range cases {
		lv := gamification.LevelFor(c.points, nil)
		assert.Equal(t, c.tier, lv.Tier, "pontos=%d", c.points)
		assert.True(t, lv.Multiplier.Equal(decimal.RequireFromString(c.multiplier)),
			"pontos=%d: multiplicador %s, esperado %s", c.points, lv.Multiplier, c.multiplier)
	}
}

// TestLevelFor_Monotonico garante que o nível nunca diminui quando os pontos
// aumentam, varrendo os limiares e seus vizinhos.
func TestLevelFor_Monotonico(t *testing.T) {
	rank := map[string]int{
		gamification.TierBronze:   0,
		gamification.TierSilver:   1,
		gamification.TierGold:     2,
		gamification.TierPlatinum: 3,
		gamification.TierDiamond:  4,
	}
	samples := []int64{0, 1, 999, 1000, 1001, 4999, 5000, 14999, 15000, 49999, 50000, 50001, 99999}
	prev := -1
	for _, p := range samples {
		lv := gamification.LevelFor(p, nil)
		r, ok := rank[lv.Tier]
		require.True(t, ok, "tier desconhecido %q", lv.Tier)
		assert.GreaterOrEqual(t, r, prev, "nível caiu ao passar para %d pontos", p)
		prev = r
	}
}

// TestLevelFor_Total garante que todo valor não-negativo mapeia para exatamente
// um tier válido (a função é total).
func TestLevelFor_Total(t *testing.T) {
	for p := int64(0); p <= 60000; p += 777 {
		lv := gamification.LevelFor(p, nil)
		assert.NotEmpty(t, lv.Tier)
		assert.True(t, lv.Multiplier.GreaterThan(decimal.Zero))
	}
}

// ── Overrides por empresa ─────────────────────────────────────────────────────

func TestLevels_OverrideSubstituiCampos(t *testing.T) {
	label := "Prata Corporativa"
	min := int64(2000)
	mult := decimal.NewFromFloat(1.15)
	levels := gamification.Levels([]gamification.Override{
		{Tier: gamification.TierSilver, Label: &label, MinPoints: &min, Multiplier: &mult},
	})

	var silver gamification.Level
	for _, lv := range levels {
		if lv.Tier == gamification.TierSilver {
			silver = lv
		}
	}
	assert.Equal(t, "Prata Corporativa", silver.Label)
	assert.Equal(t, int64(2000), silver.MinPoints)
	assert.True(t, silver.Multiplier.Equal(mult))
}

func TestLevelFor_OverrideDeslocaLimiar(t *testing.T) {
	min := int64(2000)
	overrides := []gamification.Override{{Tier: gamification.TierSilver, MinPoints: &min}}

	// Com o limiar da prata em 2000, 1500 pontos continuam bronze.
	assert.Equal(t, gamification.TierBronze, gamification.LevelFor(1500, overrides).Tier)
	assert.Equal(t, gamification.TierSilver, gamification.LevelFor(2000, overrides).Tier)
}

func TestLevels_OverrideTierDesconhecidoIgnorado(t *testing.T) {
	label := "x"
	levels := gamification.Levels([]gamification.Override{{Tier: "copper", Label: &label}})
	require.Len(t, levels, 5)
	for _, lv := range levels {
		assert.NotEqual(t, "x", lv.Label)
	}
}
