package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/genautech/yoobe-store-api/internal/application/approval"
	"github.com/genautech/yoobe-store-api/internal/application/auth"
	"github.com/genautech/yoobe-store-api/internal/application/budget"
	"github.com/genautech/yoobe-store-api/internal/application/catalog"
	"github.com/genautech/yoobe-store-api/internal/application/gamification"
	"github.com/genautech/yoobe-store-api/internal/application/ledger"
	"github.com/genautech/yoobe-store-api/internal/application/usecase"
	infrapdf "github.com/genautech/yoobe-store-api/internal/infrastructure/pdf"
	"github.com/genautech/yoobe-store-api/internal/infrastructure/postgres"
	httpRouter "github.com/genautech/yoobe-store-api/internal/interfaces/http"
	"github.com/genautech/yoobe-store-api/pkg/config"
	"github.com/genautech/yoobe-store-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	pointsRepo := postgres.NewPointsTransactionRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	approvalRepo := postgres.NewApprovalRequestRepository(pool)
	baseProductRepo := postgres.NewBaseProductRepository(pool)
	companyProductRepo := postgres.NewCompanyProductRepository(pool)
	costCenterRepo := postgres.NewCostCenterRepository(pool)
	levelRepo := postgres.NewLevelRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo, levelRepo)
	costCenterUC := usecase.NewCostCenterUseCase(costCenterRepo)
	ledgerUC := ledger.NewUseCase(txRunner, userRepo, pointsRepo, levelRepo)
	levelUC := gamification.NewUseCase(levelRepo)
	budgetUC := budget.NewUseCase(txRunner, budgetRepo, baseProductRepo, costCenterRepo, userRepo)
	approvalUC := approval.NewUseCase(txRunner, approvalRepo)
	catalogUC := catalog.NewUseCase(baseProductRepo, companyProductRepo)

	// PDF: relatório executivo da verba para impressão e auditoria
	pdfGenerator := infrapdf.NewMarotoBudgetReport()
	budgetReportUC := budget.NewReportUseCase(budgetRepo, companyRepo, baseProductRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Yoobe Store API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		UserUC:       userUC,
		CostCenterUC: costCenterUC,
		LedgerUC:     ledgerUC,
		LevelUC:      levelUC,
		BudgetUC:     budgetUC,
		BudgetReport: budgetReportUC,
		ApprovalUC:   approvalUC,
		CatalogUC:    catalogUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
