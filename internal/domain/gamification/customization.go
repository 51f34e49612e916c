package gamification

import "github.com/genautech/yoobe-store-api/internal/domain/entity"

// FromCustomizations converte as personalizações persistidas de uma empresa
// nos overrides aplicáveis ao lookup de níveis.
func FromCustomizations(rows []*entity.LevelCustomization) []Override {
	if len(rows) == 0 {
		return nil
	}
	out := make([]Override, 0, len(rows))
	for _, r := range rows {
		out = append(out, Override{
			Tier:       r.Tier,
			Label:      r.Label,
			Color:      r.Color,
			Icon:       r.Icon,
			MinPoints:  r.MinPoints,
			Multiplier: r.Multiplier,
		})
	}
	return out
}
