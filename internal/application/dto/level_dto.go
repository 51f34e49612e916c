package dto

import "github.com/shopspring/decimal"

// LevelResponse um nível do programa de fidelidade (padrão + overrides da empresa).
type LevelResponse struct {
	Tier       string          `json:"tier"`
	Label      string          `json:"label"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	MinPoints  int64           `json:"min_points"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// LevelListResponse os cinco níveis efetivos da empresa, em ordem ascendente.
type LevelListResponse struct {
	Items []LevelResponse `json:"items"`
}

// LevelOverrideRequest personalização de um tier. Campos omitidos mantêm o padrão.
type LevelOverrideRequest struct {
	Tier       string           `json:"tier" validate:"required"`
	Label      *string          `json:"label"`
	Color      *string          `json:"color"`
	Icon       *string          `json:"icon"`
	MinPoints  *int64           `json:"min_points"`
	Multiplier *decimal.Decimal `json:"multiplier"`
}

// UpdateLevelsRequest substitui o conjunto de overrides da empresa.
type UpdateLevelsRequest struct {
	Levels []LevelOverrideRequest `json:"levels" validate:"required"`
}
