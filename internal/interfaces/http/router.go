package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/genautech/yoobe-store-api/internal/application/approval"
	"github.com/genautech/yoobe-store-api/internal/application/auth"
	"github.com/genautech/yoobe-store-api/internal/application/budget"
	"github.com/genautech/yoobe-store-api/internal/application/catalog"
	"github.com/genautech/yoobe-store-api/internal/application/gamification"
	"github.com/genautech/yoobe-store-api/internal/application/ledger"
	"github.com/genautech/yoobe-store-api/internal/application/usecase"
	"github.com/genautech/yoobe-store-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	CostCenterUC *usecase.CostCenterUseCase
	LedgerUC     *ledger.UseCase
	LevelUC      *gamification.UseCase
	BudgetUC     *budget.UseCase
	BudgetReport *budget.ReportUseCase
	ApprovalUC   *approval.UseCase
	CatalogUC    *catalog.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleGestor)

	// Companies (protegido; criação restrita a admin)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", adminOnly, companyHandler.Create)
	companies.Get("/", adminOnly, companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", adminOnly, companyHandler.Update)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	pointsHandler := NewPointsHandler(deps.LedgerUC)
	users.Get("/", managers, userHandler.List)
	users.Get("/me", userHandler.GetMe)
	users.Get("/tags", managers, userHandler.ListTags)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", managers, userHandler.Update)
	users.Get("/:id/points/history", pointsHandler.History)
	users.Get("/:id/points/balance", pointsHandler.Balance)

	// Alias histórico do console: /api/tags
	protected.Get("/tags", managers, userHandler.ListTags)

	// Points (protegido; lançamentos restritos a admin/gestor)
	points := protected.Group("/points")
	points.Post("/credit", managers, pointsHandler.Credit)
	points.Post("/debit", managers, pointsHandler.Debit)
	points.Post("/cashback", managers, pointsHandler.Cashback)

	// Levels (protegido; overrides restritos a admin)
	levels := protected.Group("/levels")
	levelHandler := NewLevelHandler(deps.LevelUC)
	levels.Get("/", levelHandler.List)
	levels.Put("/", adminOnly, levelHandler.Update)

	// Budgets (protegido, admin/gestor)
	budgets := protected.Group("/budgets", managers)
	budgetHandler := NewBudgetHandler(deps.BudgetUC, deps.BudgetReport)
	budgets.Post("/", budgetHandler.Create)
	budgets.Get("/", budgetHandler.List)
	budgets.Get("/:id", budgetHandler.GetByID)
	budgets.Put("/:id", budgetHandler.Update)
	budgets.Post("/:id/items", budgetHandler.AddItem)
	budgets.Put("/:id/items/:itemId", budgetHandler.UpdateItem)
	budgets.Delete("/:id/items/:itemId", budgetHandler.RemoveItem)
	budgets.Post("/:id/submit", budgetHandler.Submit)
	budgets.Post("/:id/review", adminOnly, budgetHandler.Review)
	budgets.Post("/:id/approve", adminOnly, budgetHandler.Approve)
	budgets.Post("/:id/reject", adminOnly, budgetHandler.Reject)
	budgets.Post("/:id/restart", budgetHandler.Restart)
	budgets.Post("/:id/release", adminOnly, budgetHandler.Release)
	budgets.Post("/:id/replicate", adminOnly, budgetHandler.Replicate)
	budgets.Get("/:id/pdf", budgetHandler.DownloadPDF)

	// Approvals (protegido; decisões restritas a admin)
	approvals := protected.Group("/approvals")
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	approvals.Post("/", approvalHandler.Create)
	approvals.Get("/", managers, approvalHandler.List)
	approvals.Post("/approve-multiple", adminOnly, approvalHandler.ApproveMultiple)
	approvals.Get("/:id", approvalHandler.GetByID)
	approvals.Post("/:id/approve", adminOnly, approvalHandler.Approve)
	approvals.Post("/:id/reject", adminOnly, approvalHandler.Reject)
	approvals.Post("/:id/request-info", adminOnly, approvalHandler.RequestInfo)

	// Catálogo global (protegido; mutações restritas a admin)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	baseProducts := protected.Group("/base-products")
	baseProducts.Post("/", adminOnly, catalogHandler.CreateBase)
	baseProducts.Get("/", catalogHandler.ListBase)
	baseProducts.Get("/search", catalogHandler.SearchBase)
	baseProducts.Get("/:id", catalogHandler.GetBase)
	baseProducts.Put("/:id", adminOnly, catalogHandler.UpdateBase)
	baseProducts.Delete("/:id", adminOnly, catalogHandler.DeleteBase)

	// Replicação direta (protegido, admin/gestor)
	protected.Post("/replication", managers, catalogHandler.Clone)

	// Catálogo da empresa (protegido)
	companyProducts := protected.Group("/company-products")
	companyProducts.Get("/", catalogHandler.ListCompanyProducts)
	companyProducts.Get("/:id", catalogHandler.GetCompanyProduct)
	companyProducts.Put("/:id", managers, catalogHandler.UpdateCompanyProduct)

	// Centros de custo (protegido, admin/gestor)
	costCenters := protected.Group("/cost-centers", managers)
	costCenterHandler := NewCostCenterHandler(deps.CostCenterUC)
	costCenters.Post("/", costCenterHandler.Create)
	costCenters.Get("/", costCenterHandler.List)
	costCenters.Get("/:id", costCenterHandler.GetByID)
	costCenters.Put("/:id", costCenterHandler.Update)
}
