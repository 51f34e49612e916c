// Package gamification expõe os níveis efetivos de uma empresa e a
// administração das personalizações por tier.
package gamification

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	gamif "github.com/genautech/yoobe-store-api/internal/domain/gamification"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// UseCase resolve os níveis efetivos (padrão + overrides) e persiste as
// personalizações de uma empresa.
type UseCase struct {
	levelRepo repository.LevelRepository
}

// NewUseCase constrói o caso de uso de gamificação.
func NewUseCase(levelRepo repository.LevelRepository) *UseCase {
	return &UseCase{levelRepo: levelRepo}
}

// GetLevels devolve os cinco níveis efetivos da empresa, em ordem ascendente.
func (uc *UseCase) GetLevels(companyID string) (*dto.LevelListResponse, error) {
	rows, err := uc.levelRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	levels := gamif.Levels(gamif.FromCustomizations(rows))
	items := make([]dto.LevelResponse, 0, len(levels))
	for _, l := range levels {
		items = append(items, dto.LevelResponse{
			Tier:       l.Tier,
			Label:      l.Label,
			Color:      l.Color,
			Icon:       l.Icon,
			MinPoints:  l.MinPoints,
			Multiplier: l.Multiplier,
		})
	}
	return &dto.LevelListResponse{Items: items}, nil
}

// UpdateLevels substitui o conjunto de overrides da empresa de forma atômica.
// O MinPoints do bronze é fixado em 0 (todo usuário tem um nível) e os limiares
// efetivos precisam permanecer estritamente crescentes na ordem dos tiers.
func (uc *UseCase) UpdateLevels(companyID string, in dto.UpdateLevelsRequest) (*dto.LevelListResponse, error) {
	rows := make([]*entity.LevelCustomization, 0, len(in.Levels))
	seen := map[string]bool{}
	now := time.Now()
	for _, ov := range in.Levels {
		if !validTier(ov.Tier) || seen[ov.Tier] {
			return nil, domain.ErrInvalidInput
		}
		seen[ov.Tier] = true
		if ov.Multiplier != nil && ov.Multiplier.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if ov.MinPoints != nil && *ov.MinPoints < 0 {
			return nil, domain.ErrInvalidInput
		}
		row := &entity.LevelCustomization{
			CompanyID:  companyID,
			Tier:       ov.Tier,
			Label:      ov.Label,
			Color:      ov.Color,
			Icon:       ov.Icon,
			MinPoints:  ov.MinPoints,
			Multiplier: ov.Multiplier,
			UpdatedAt:  now,
		}
		if ov.Tier == gamif.TierBronze {
			zero := int64(0)
			row.MinPoints = &zero
		}
		rows = append(rows, row)
	}

	// valida os limiares efetivos antes de persistir
	levels := gamif.Levels(gamif.FromCustomizations(rows))
	for i := 1; i < len(levels); i++ {
		if levels[i].MinPoints <= levels[i-1].MinPoints {
			return nil, domain.ErrInvalidInput
		}
	}

	if err := uc.levelRepo.Replace(companyID, rows); err != nil {
		return nil, err
	}
	return uc.GetLevels(companyID)
}

func validTier(t string) bool {
	switch t {
	case gamif.TierBronze, gamif.TierSilver, gamif.TierGold, gamif.TierPlatinum, gamif.TierDiamond:
		return true
	}
	return false
}
