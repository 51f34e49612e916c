package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/application/gamification"
	"github.com/genautech/yoobe-store-api/internal/domain"
)

// LevelHandler trata os níveis de gamificação da empresa (protegido).
type LevelHandler struct {
	uc *gamification.UseCase
}

// NewLevelHandler constrói o handler.
func NewLevelHandler(uc *gamification.UseCase) *LevelHandler {
	return &LevelHandler{uc: uc}
}

// List godoc
// @Summary      Níveis efetivos da empresa
// @Description  Os cinco níveis padrão com os overrides da empresa aplicados.
// @Tags         levels
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LevelListResponse
// @Router       /api/levels [get]
func (h *LevelHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	out, err := h.uc.GetLevels(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Substituir overrides de níveis
// @Description  Substitui o conjunto de overrides. Bronze sempre começa em 0 pontos
// @Description  e os limiares efetivos precisam crescer estritamente.
// @Tags         levels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateLevelsRequest  true  "Overrides por tier"
// @Success      200   {object}  dto.LevelListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/levels [put]
func (h *LevelHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.UpdateLevelsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateLevels(companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
