package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/catalog"
	"github.com/genautech/yoobe-store-api/internal/application/dto"
	"github.com/genautech/yoobe-store-api/internal/domain"
)

// CatalogHandler trata o catálogo global e o catálogo da empresa (protegido).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateBase godoc
// @Summary      Criar produto do catálogo global
// @Tags         base-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBaseProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.BaseProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/base-products [post]
func (h *CatalogHandler) CreateBase(c *fiber.Ctx) error {
	var in dto.CreateBaseProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.CreateBase(in)
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBase godoc
// @Summary      Obter produto do catálogo global
// @Tags         base-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.BaseProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/base-products/{id} [get]
func (h *CatalogHandler) GetBase(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetBase(id)
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateBase godoc
// @Summary      Atualizar produto do catálogo global
// @Tags         base-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateBaseProductRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.BaseProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/base-products/{id} [put]
func (h *CatalogHandler) UpdateBase(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateBaseProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateBase(id, in)
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// DeleteBase godoc
// @Summary      Remover produto do catálogo global
// @Tags         base-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      204  "Sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/base-products/{id} [delete]
func (h *CatalogHandler) DeleteBase(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.DeleteBase(id); err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBase godoc
// @Summary      Listar catálogo global
// @Tags         base-products
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtro por categoria"
// @Param        limit     query  int     false  "Limite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.BaseProductListResponse
// @Router       /api/base-products [get]
func (h *CatalogHandler) ListBase(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListBase(c.Query("category"), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// SearchBase godoc
// @Summary      Buscar no catálogo global
// @Description  Busca por nome, insensível a maiúsculas e acentos.
// @Tags         base-products
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  true   "Termo de busca"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.BaseProductListResponse
// @Router       /api/base-products/search [get]
func (h *CatalogHandler) SearchBase(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q é obrigatório"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.SearchBase(term, dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// Clone godoc
// @Summary      Replicar produto base no catálogo da empresa
// @Description  Clonagem direta, aditiva: cada chamada cria um novo CompanyProduct.
// @Description  Overrides omitidos assumem os valores do produto base.
// @Tags         replication
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloneProductRequest  true  "Produto base e overrides"
// @Success      201   {object}  dto.CompanyProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/replication [post]
func (h *CatalogHandler) Clone(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	var in dto.CloneProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.BaseProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "base_product_id é obrigatório"})
	}
	out, err := h.uc.Clone(companyID, in)
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCompanyProduct godoc
// @Summary      Obter produto do catálogo da empresa
// @Tags         company-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.CompanyProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company-products/{id} [get]
func (h *CatalogHandler) GetCompanyProduct(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetCompanyProduct(companyID, id)
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// UpdateCompanyProduct godoc
// @Summary      Atualizar overrides do produto da empresa
// @Tags         company-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateCompanyProductRequest  true  "Overrides"
// @Success      200   {object}  dto.CompanyProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company-products/{id} [put]
func (h *CatalogHandler) UpdateCompanyProduct(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateCompanyProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateCompanyProduct(companyID, id, in)
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// ListCompanyProducts godoc
// @Summary      Listar catálogo da empresa
// @Tags         company-products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CompanyProductListResponse
// @Router       /api/company-products [get]
func (h *CatalogHandler) ListCompanyProducts(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id obrigatório"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListCompanyProducts(companyID, dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return h.mapCatalogError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) mapCatalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
