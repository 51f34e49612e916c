package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LevelCustomization é a personalização persistida de um tier para uma empresa.
// Campos nil mantêm o padrão do programa. O MinPoints do bronze é fixado em 0
// pela camada de entrada.
type LevelCustomization struct {
	CompanyID  string
	Tier       string // bronze, silver, gold, platinum, diamond
	Label      *string
	Color      *string
	Icon       *string
	MinPoints  *int64
	Multiplier *decimal.Decimal
	UpdatedAt  time.Time
}
