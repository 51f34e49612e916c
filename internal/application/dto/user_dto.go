package dto

import "time"

// UserResponse saída de um usuário com saldo e nível derivado.
type UserResponse struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"company_id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	Status    string         `json:"status"`
	Points    int64          `json:"points"`
	Level     *LevelResponse `json:"level,omitempty"` // recalculado dos pontos, nunca autoritativo
	Tags      []string       `json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UpdateUserRequest entrada para atualização de usuário (admin/gestor).
type UpdateUserRequest struct {
	Name   *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Role   *string   `json:"role"`
	Status *string   `json:"status"`
	Tags   *[]string `json:"tags"`
}

// UserListResponse lista paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// TagListResponse tags distintas em uso na empresa.
type TagListResponse struct {
	Tags []string `json:"tags"`
}
