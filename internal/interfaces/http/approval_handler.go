package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/approval"
	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
)

// ApprovalHandler trata a fila unificada de aprovações (protegido).
type ApprovalHandler struct {
	uc *approval.UseCase
}

// NewApprovalHandler constrói o handler.
func NewApprovalHandler(uc *approval.UseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir solicitação na fila
// @Description  Apenas order, gift e requisition; verbas entram na fila ao serem submetidas.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApprovalRequest  true  "Solicitação"
// @Success      201   {object}  dto.ApprovalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/approvals [post]
func (h *ApprovalHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.CreateApprovalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Type == "" || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type e title são obrigatórios"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter solicitação por ID
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da solicitação"
// @Success      200  {object}  dto.ApprovalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/approvals/{id} [get]
func (h *ApprovalHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fila de aprovações
// @Description  group=pendentes (pending + info_requested, mais antigas primeiro)
// @Description  ou group=historico (approved + rejected, decisões mais recentes primeiro).
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        group   query  string  false  "pendentes | historico"  default(pendentes)
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ApprovalListResponse
// @Router       /api/approvals [get]
func (h *ApprovalHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	group := c.Query("group", "pendentes")
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, group, limit, offset)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprovar solicitação
// @Description  Solicitações de verba sincronizam a verba referenciada na mesma transação.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da solicitação"
// @Param        body  body  dto.ApproveApprovalRequest  false  "Notas"
// @Success      200   {object}  dto.ApprovalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.ApproveApprovalRequest
	_ = c.BodyParser(&in) // corpo opcional
	out, err := h.uc.Approve(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rejeitar solicitação
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da solicitação"
// @Param        body  body  dto.RejectApprovalRequest  true  "Motivo da rejeição"
// @Success      200   {object}  dto.ApprovalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.RejectApprovalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Reject(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.JSON(out)
}

// RequestInfo godoc
// @Summary      Pedir informações adicionais
// @Description  pending→info_requested; a solicitação continua decidível.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da solicitação"
// @Param        body  body  dto.RequestInfoRequest  true  "Mensagem"
// @Success      200   {object}  dto.ApprovalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{id}/request-info [post]
func (h *ApprovalHandler) RequestInfo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.RequestInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message é obrigatório"})
	}
	out, err := h.uc.RequestInfo(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.JSON(out)
}

// ApproveMultiple godoc
// @Summary      Aprovar várias solicitações
// @Description  Cada ID é processado de forma independente; falhas individuais não
// @Description  abortam as demais.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApproveMultipleRequest  true  "IDs"
// @Success      200   {object}  dto.ApproveMultipleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/approvals/approve-multiple [post]
func (h *ApprovalHandler) ApproveMultiple(c *fiber.Ctx) error {
	var in dto.ApproveMultipleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids é obrigatório"})
	}
	out, err := h.uc.ApproveMultiple(c.Context(), GetUserID(c), in)
	if err != nil {
		return h.mapApprovalError(c, err)
	}
	return c.JSON(out)
}

func (h *ApprovalHandler) mapApprovalError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitação não encontrada"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case domain.ErrRejectionReasonRequired, domain.ErrRejectionCategoryRequired, domain.ErrRejectionCategoryInvalid:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
