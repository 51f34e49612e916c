// Package gamification implementa o lookup de níveis de fidelidade (serviço de
// domínio puro): pontos acumulados → tier → multiplicador de cashback.
package gamification

import "github.com/shopspring/decimal"

// Tiers ordenados do programa de fidelidade.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
	TierDiamond  = "diamond"
)

// Level é um nível do programa: limiar de entrada e multiplicador de cashback.
type Level struct {
	Tier       string
	Label      string
	Color      string
	Icon       string
	MinPoints  int64
	Multiplier decimal.Decimal
}

// Override personalização por empresa de um tier. Campos nil mantêm o padrão.
// O MinPoints do bronze é fixado em 0 na camada de entrada (usecase), não aqui.
type Override struct {
	Tier       string
	Label      *string
	Color      *string
	Icon       *string
	MinPoints  *int64
	Multiplier *decimal.Decimal
}

// DefaultLevels devolve os cinco níveis padrão, em ordem ascendente de MinPoints.
func DefaultLevels() []Level {
	return []Level{
		{Tier: TierBronze, Label: "Bronze", Color: "#cd7f32", Icon: "medal", MinPoints: 0, Multiplier: decimal.NewFromFloat(1.0)},
		{Tier: TierSilver, Label: "Prata", Color: "#c0c0c0", Icon: "medal", MinPoints: 1000, Multiplier: decimal.NewFromFloat(1.1)},
		{Tier: TierGold, Label: "Ouro", Color: "#ffd700", Icon: "trophy", MinPoints: 5000, Multiplier: decimal.NewFromFloat(1.25)},
		{Tier: TierPlatinum, Label: "Platina", Color: "#e5e4e2", Icon: "crown", MinPoints: 15000, Multiplier: decimal.NewFromFloat(1.5)},
		{Tier: TierDiamond, Label: "Diamante", Color: "#b9f2ff", Icon: "gem", MinPoints: 50000, Multiplier: decimal.NewFromFloat(2.0)},
	}
}

// Levels aplica overrides sobre os níveis padrão, preservando a ordem dos tiers.
// Overrides de tiers desconhecidos são ignorados.
func Levels(overrides []Override) []Level {
	levels := DefaultLevels()
	for _, ov := range overrides {
		for i := range levels {
			if levels[i].Tier != ov.Tier {
				continue
			}
			if ov.Label != nil {
				levels[i].Label = *ov.Label
			}
			if ov.Color != nil {
				levels[i].Color = *ov.Color
			}
			if ov.Icon != nil {
				levels[i].Icon = *ov.Icon
			}
			if ov.MinPoints != nil {
				levels[i].MinPoints = *ov.MinPoints
			}
			if ov.Multiplier != nil {
				levels[i].Multiplier = *ov.Multiplier
			}
		}
	}
	return levels
}

// LevelFor devolve o nível do usuário: o tier de maior MinPoints com
// MinPoints <= points. Função total para todo points >= 0 (bronze tem MinPoints 0);
// pontos negativos caem no bronze por construção.
func LevelFor(points int64, overrides []Override) Level {
	levels := Levels(overrides)
	best := levels[0]
	for _, lv := range levels {
		if lv.MinPoints <= points && lv.MinPoints >= best.MinPoints {
			best = lv
		}
	}
	return best
}
