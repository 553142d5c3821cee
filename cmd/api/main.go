package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/analytics"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/auth"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/inventory"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/sales"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/application/usecase"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/internal/infrastructure/postgres"
	httpRouter "github.com/AiXTwilight/Inventory-Sales-Management-System/internal/interfaces/http"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/pkg/config"
	"github.com/AiXTwilight/Inventory-Sales-Management-System/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner)
	salesUC := sales.NewSalesUseCase(txRunner, transactionRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, transactionRepo)
	authUC := auth.NewAuthUseCase(adminRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		AdjustStock: adjustStockUC,
		SalesUC:     salesUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
