package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/application/usecase"
	"github.com/genautech/yoobe-store-api/internal/domain"
)

// CostCenterHandler trata os centros de custo (protegido).
type CostCenterHandler struct {
	uc *usecase.CostCenterUseCase
}

// NewCostCenterHandler constrói o handler.
func NewCostCenterHandler(uc *usecase.CostCenterUseCase) *CostCenterHandler {
	return &CostCenterHandler{uc: uc}
}

// Create godoc
// @Summary      Criar centro de custo
// @Tags         cost-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostCenterRequest  true  "Dados do centro de custo"
// @Success      201   {object}  dto.CostCenterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cost-centers [post]
func (h *CostCenterHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.CreateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return h.mapCostCenterError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter centro de custo por ID
// @Tags         cost-centers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do centro de custo"
// @Success      200  {object}  dto.CostCenterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cost-centers/{id} [get]
func (h *CostCenterHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(companyID, id)
	if err != nil {
		return h.mapCostCenterError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar centro de custo
// @Description  allocated_budget não pode ficar abaixo do valor já consumido.
// @Tags         cost-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do centro de custo"
// @Param        body  body  dto.UpdateCostCenterRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.CostCenterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cost-centers/{id} [put]
func (h *CostCenterHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(companyID, id, in)
	if err != nil {
		return h.mapCostCenterError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar centros de custo da empresa
// @Tags         cost-centers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CostCenterListResponse
// @Router       /api/cost-centers [get]
func (h *CostCenterHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByCompany(companyID, limit, offset)
	if err != nil {
		return h.mapCostCenterError(c, err)
	}
	return c.JSON(out)
}

func (h *CostCenterHandler) mapCostCenterError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "centro de custo não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
