package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/projectflow/internal/application/analytics"
	"github.com/tu-usuario/projectflow/internal/application/auth"
	"github.com/tu-usuario/projectflow/internal/application/billing"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
	infrapdf "github.com/tu-usuario/projectflow/internal/infrastructure/pdf"
	"github.com/tu-usuario/projectflow/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/projectflow/internal/interfaces/http"
	"github.com/tu-usuario/projectflow/pkg/config"
	"github.com/tu-usuario/projectflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	tagRepo := postgres.NewProjectTagRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	timesheetRepo := postgres.NewTimesheetRepository(pool)
	skillRepo := postgres.NewUserSkillRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)
	purchaseOrderRepo := postgres.NewPurchaseOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	vendorBillRepo := postgres.NewVendorBillRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	tokenStore := postgres.NewTokenStore(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tokenStore, auth.JWTConfig{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     time.Duration(cfg.JWT.AccessExpMinutes) * time.Minute,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshExpDays) * 24 * time.Hour,
		Issuer:        cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, tagRepo, taskRepo, userRepo, txRunner)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo, timesheetRepo, userRepo)
	skillUC := usecase.NewSkillUseCase(skillRepo, userRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	salesOrderUC := billing.NewSalesOrderUseCase(salesOrderRepo, projectRepo)
	purchaseOrderUC := billing.NewPurchaseOrderUseCase(purchaseOrderRepo, projectRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, salesOrderRepo, projectRepo, pdfGenerator)
	vendorBillUC := billing.NewVendorBillUseCase(vendorBillRepo, purchaseOrderRepo, projectRepo)
	expenseUC := billing.NewExpenseUseCase(expenseRepo, projectRepo, userRepo)
	analyticsUC := appanalytics.NewSummaryUseCase(
		projectRepo, invoiceRepo, vendorBillRepo, expenseRepo, timesheetRepo, userRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ProjectFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		ProjectUC:       projectUC,
		TaskUC:          taskUC,
		SkillUC:         skillUC,
		SalesOrderUC:    salesOrderUC,
		PurchaseOrderUC: purchaseOrderUC,
		InvoiceUC:       invoiceUC,
		VendorBillUC:    vendorBillUC,
		ExpenseUC:       expenseUC,
		AnalyticsUC:     analyticsUC,
		UserRepo:        userRepo,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
