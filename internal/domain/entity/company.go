package entity

import "time"

// Company representa uma empresa/tenant da plataforma de recompensas corporativas.
type Company struct {
	ID        string
	Name      string
	CNPJ      string // CNPJ brasileiro (com ou sem pontuação)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
