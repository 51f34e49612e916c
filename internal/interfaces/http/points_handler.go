package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/application/ledger"
	"github.com/genautech/yoobe-store-api/internal/domain"
)

// PointsHandler trata o razão de pontos (protegido).
type PointsHandler struct {
	uc *ledger.UseCase
}

// NewPointsHandler constrói o handler.
func NewPointsHandler(uc *ledger.UseCase) *PointsHandler {
	return &PointsHandler{uc: uc}
}

// Credit godoc
// @Summary      Creditar pontos
// @Tags         points
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreditRequest  true  "Crédito"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/points/credit [post]
func (h *PointsHandler) Credit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.CreditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" || in.Amount <= 0 || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id, amount > 0 e description são obrigatórios"})
	}
	out, err := h.uc.Credit(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Debit godoc
// @Summary      Debitar pontos
// @Tags         points
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DebitRequest  true  "Débito"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/points/debit [post]
func (h *PointsHandler) Debit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.DebitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" || in.Amount <= 0 || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id, amount > 0 e description são obrigatórios"})
	}
	out, err := h.uc.Debit(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cashback godoc
// @Summary      Cashback de compra
// @Description  Credita floor(order_value × multiplicador do nível atual do usuário).
// @Tags         points
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashbackRequest  true  "Pedido"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/points/cashback [post]
func (h *PointsHandler) Cashback(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.CashbackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" || in.OrderNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id e order_number são obrigatórios"})
	}
	out, err := h.uc.Cashback(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Histórico de pontos do usuário
// @Tags         points
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do usuário"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /api/users/{id}/points/history [get]
func (h *PointsHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.History(id, limit, offset)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo e nível do usuário
// @Tags         points
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/points/balance [get]
func (h *PointsHandler) Balance(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.Balance(id)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return c.JSON(out)
}

func (h *PointsHandler) mapLedgerError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUserNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
	case domain.ErrInsufficientBalance:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
