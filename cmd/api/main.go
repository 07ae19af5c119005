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

	"github.com/tu-usuario/controle-venda-api/internal/application/auth"
	appcurrency "github.com/tu-usuario/controle-venda-api/internal/application/currency"
	"github.com/tu-usuario/controle-venda-api/internal/application/inventory"
	"github.com/tu-usuario/controle-venda-api/internal/application/reports"
	"github.com/tu-usuario/controle-venda-api/internal/application/support"
	"github.com/tu-usuario/controle-venda-api/internal/infrastructure/authprovider"
	"github.com/tu-usuario/controle-venda-api/internal/infrastructure/exchangerate"
	infrapdf "github.com/tu-usuario/controle-venda-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/controle-venda-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/controle-venda-api/internal/infrastructure/rediscache"
	httpRouter "github.com/tu-usuario/controle-venda-api/internal/interfaces/http"
	"github.com/tu-usuario/controle-venda-api/pkg/config"
	"github.com/tu-usuario/controle-venda-api/pkg/logger"
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

	redisClient, err := rediscache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	supportRepo := postgres.NewSupportMessageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionProvider := authprovider.NewClient(cfg.Auth.ProviderURL)
	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, sessionProvider, cfg.Auth.SessionDays)

	productUC := inventory.NewProductUseCase(productRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	summaryUC := reports.NewSummaryUseCase(productRepo, movementRepo, cfg.Report.LowStockThreshold, pdfGenerator)

	rateProvider := exchangerate.NewClient(
		cfg.Rates.ProviderURL,
		time.Duration(cfg.Rates.TimeoutSecs)*time.Second,
	)
	rateCache := rediscache.NewRateCache(
		redisClient,
		time.Duration(cfg.Rates.CacheTTLMins)*time.Minute,
	)
	currencyUC := appcurrency.NewConvertUseCase(rateProvider, rateCache, log)

	supportUC := support.NewContactUseCase(supportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle Venda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		SummaryUC:        summaryUC,
		CurrencyUC:       currencyUC,
		SupportUC:        supportUC,
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
