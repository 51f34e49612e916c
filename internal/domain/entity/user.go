package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin  = "admin"
	RoleGestor = "gestor"
	RoleMembro = "membro"
)

// User representa um usuário da loja (pertence a uma Company).
// Points é a projeção em cache do razão de pontos: a soma das transações em
// points_transactions é a fonte da verdade e as duas só mudam juntas (mesma transação SQL).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca em claro no domínio após persistir
	Name         string
	Role         string // admin, gestor, membro
	Status       string // active, inactive, suspended
	Points       int64  // saldo em cache, nunca negativo
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
