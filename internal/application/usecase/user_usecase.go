package usecase

import (
	"time"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
	"github.com/genautech/yoobe-store-api/internal/domain/gamification"
	"github.com/genautech/yoobe-store-api/internal/domain/repository"
)

// UserUseCase aplica regras de negócio para usuários. O nível devolvido é
// sempre recalculado do saldo de pontos, nunca persistido.
type UserUseCase struct {
	repo      repository.UserRepository
	levelRepo repository.LevelRepository
}

// NewUserUseCase constrói o caso de uso com os portos de persistência.
func NewUserUseCase(repo repository.UserRepository, levelRepo repository.LevelRepository) *UserUseCase {
	return &UserUseCase{repo: repo, levelRepo: levelRepo}
}

// GetByID obtém um usuário por ID, com nível derivado dos pontos.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.withLevel(user)
}

// Update atualiza nome/papel/status/tags de um usuário (admin/gestor).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Role != nil {
		switch *in.Role {
		case entity.RoleAdmin, entity.RoleGestor, entity.RoleMembro:
			user.Role = *in.Role
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Status != nil {
		switch *in.Status {
		case "active", "inactive", "suspended":
			user.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Tags != nil {
		user.Tags = *in.Tags
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return uc.withLevel(user)
}

// ListByCompany lista usuários da empresa com paginação.
func (uc *UserUseCase) ListByCompany(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	overrides, err := uc.overridesFor(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		resp := entityToUserResponse(u)
		resp.Level = levelResponse(gamification.LevelFor(u.Points, overrides))
		items = append(items, *resp)
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListTags devolve as tags distintas em uso na empresa (para filtros do console).
func (uc *UserUseCase) ListTags(companyID string) (*dto.TagListResponse, error) {
	tags, err := uc.repo.ListTags(companyID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return &dto.TagListResponse{Tags: tags}, nil
}

func (uc *UserUseCase) withLevel(user *entity.User) (*dto.UserResponse, error) {
	overrides, err := uc.overridesFor(user.CompanyID)
	if err != nil {
		return nil, err
	}
	resp := entityToUserResponse(user)
	resp.Level = levelResponse(gamification.LevelFor(user.Points, overrides))
	return resp, nil
}

func (uc *UserUseCase) overridesFor(companyID string) ([]gamification.Override, error) {
	rows, err := uc.levelRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return gamification.FromCustomizations(rows), nil
}

func levelResponse(l gamification.Level) *dto.LevelResponse {
	return &dto.LevelResponse{
		Tier:       l.Tier,
		Label:      l.Label,
		Color:      l.Color,
		Icon:       l.Icon,
		MinPoints:  l.MinPoints,
		Multiplier: l.Multiplier,
	}
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	tags := u.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		Points:    u.Points,
		Tags:      tags,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
