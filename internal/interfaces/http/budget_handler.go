package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/budget"
	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
)

// BudgetHandler trata o ciclo de vida das verbas (protegido).
type BudgetHandler struct {
	uc     *budget.UseCase
	report *budget.ReportUseCase
}

// NewBudgetHandler constrói o handler.
func NewBudgetHandler(uc *budget.UseCase, report *budget.ReportUseCase) *BudgetHandler {
	return &BudgetHandler{uc: uc, report: report}
}

// Create godoc
// @Summary      Criar verba em rascunho
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBudgetRequest  true  "Dados da verba"
// @Success      201   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.CreateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title é obrigatório"})
	}
	out, err := h.uc.Create(companyID, GetUserID(c), in)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter verba por ID
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id} [get]
func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar verbas da empresa
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro por status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.BudgetListResponse
// @Router       /api/budgets [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, c.Query("status"), limit, offset)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cabeçalho da verba (rascunho)
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da verba"
// @Param        body  body  dto.UpdateBudgetRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id} [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Anexar item à verba (rascunho)
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da verba"
// @Param        body  body  dto.AddBudgetItemRequest  true  "Item"
// @Success      201   {object}  dto.BudgetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/items [post]
func (h *BudgetHandler) AddItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.AddBudgetItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.BaseProductID == "" || in.Qty <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "base_product_id e qty > 0 são obrigatórios"})
	}
	out, err := h.uc.AddItem(c.Context(), id, in)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Alterar item da verba (rascunho)
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID da verba"
// @Param        itemId  path  string  true  "ID do item"
// @Param        body    body  dto.UpdateBudgetItemRequest  true  "Campos do item"
// @Success      200     {object}  dto.BudgetResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/items/{itemId} [put]
func (h *BudgetHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	itemID := c.Params("itemId")
	if id == "" || itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id e itemId são obrigatórios"})
	}
	var in dto.UpdateBudgetItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateItem(c.Context(), id, itemID, in)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Remover item da verba (rascunho)
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID da verba"
// @Param        itemId  path  string  true  "ID do item"
// @Success      200     {object}  dto.BudgetResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/items/{itemId} [delete]
func (h *BudgetHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	itemID := c.Params("itemId")
	if id == "" || itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id e itemId são obrigatórios"})
	}
	out, err := h.uc.RemoveItem(c.Context(), id, itemID)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Submeter verba para aprovação
// @Description  draft→submitted. Cria a solicitação correspondente na fila de aprovação.
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/submit [post]
func (h *BudgetHandler) Submit(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.Submit(c.Context(), id, GetUserID(c))
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Review godoc
// @Summary      Marcar verba como analisada
// @Description  submitted→reviewed.
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/review [post]
func (h *BudgetHandler) Review(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.Review(c.Context(), id)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprovar verba
// @Description  reviewed→approved. Sincroniza a solicitação da fila.
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da verba"
// @Param        body  body  dto.ApproveApprovalRequest  false  "Notas do aprovador"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/approve [post]
func (h *BudgetHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.ApproveApprovalRequest
	_ = c.BodyParser(&in) // corpo opcional
	out, err := h.uc.Approve(c.Context(), id, GetUserID(c), in.Notes)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rejeitar verba
// @Description  reviewed→rejected. Motivo e categoria são obrigatórios.
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da verba"
// @Param        body  body  dto.RejectBudgetRequest  true  "Motivo da rejeição"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/reject [post]
func (h *BudgetHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.RejectBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Reject(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Restart godoc
// @Summary      Reiniciar verba rejeitada
// @Description  rejected→draft. Limpa os campos de decisão; itens são preservados.
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/restart [post]
func (h *BudgetHandler) Restart(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.Restart(c.Context(), id)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Release godoc
// @Summary      Liberar verba aprovada
// @Description  approved→released. Consome o centro de custo vinculado.
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/release [post]
func (h *BudgetHandler) Release(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.Release(c.Context(), id)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// Replicate godoc
// @Summary      Replicar verba liberada no catálogo da empresa
// @Description  released→replicated (terminal). Clona cada item como CompanyProduct;
// @Description  itens já replicados antes são ignorados (idempotente).
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/replicate [post]
func (h *BudgetHandler) Replicate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.Replicate(c.Context(), id)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Relatório PDF da verba
// @Tags         budgets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da verba"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/budgets/{id}/pdf [get]
func (h *BudgetHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	pdfBytes, err := h.report.GeneratePDF(c.Context(), id)
	if err != nil {
		return h.mapBudgetError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="verba-%s.pdf"`, id))
	return c.Send(pdfBytes)
}

func (h *BudgetHandler) mapBudgetError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound, domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrInvalidTransition, domain.ErrBudgetNotEditable, domain.ErrBudgetNoItems:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case domain.ErrBudgetExceeded:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BUDGET_EXCEEDED", Message: err.Error()})
	case domain.ErrRejectionReasonRequired, domain.ErrRejectionCategoryRequired, domain.ErrRejectionCategoryInvalid:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
