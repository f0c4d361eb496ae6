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

	"github.com/Jeremytpk/storall/internal/application/auth"
	"github.com/Jeremytpk/storall/internal/application/cart"
	"github.com/Jeremytpk/storall/internal/application/receipt"
	"github.com/Jeremytpk/storall/internal/application/staff"
	"github.com/Jeremytpk/storall/internal/application/usecase"
	infrapdf "github.com/Jeremytpk/storall/internal/infrastructure/pdf"
	"github.com/Jeremytpk/storall/internal/infrastructure/postgres"
	httpRouter "github.com/Jeremytpk/storall/internal/interfaces/http"
	"github.com/Jeremytpk/storall/pkg/config"
	"github.com/Jeremytpk/storall/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	accountRepo := postgres.NewAccountRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool, logger.WithComponent(log, "store_repo"))
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	oosRepo := postgres.NewOutOfStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(accountRepo, storeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.Options{
		MinPasscodeLength: cfg.Auth.MinPasscodeLength,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
		DefaultPasscode:   cfg.Auth.DefaultPasscode,
	})
	staffUC := staff.NewStaffUseCase(storeRepo, staff.Options{DefaultPasscode: cfg.Auth.DefaultPasscode})
	storeUC := usecase.NewStoreUseCase(storeRepo)
	productUC := usecase.NewProductUseCase(productRepo, storeRepo)
	cartUC := cart.NewCartUseCase(cartRepo, productRepo, txRunner)
	orderUC := usecase.NewOrderUseCase(orderRepo, oosRepo)

	// PDF: comprobante descargable del pedido
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewReceiptUseCase(orderRepo, storeRepo, receiptGenerator)

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
		Title:    "Storall API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		StaffUC:   staffUC,
		StoreUC:   storeUC,
		ProductUC: productUC,
		CartUC:    cartUC,
		OrderUC:   orderUC,
		ReceiptUC: receiptUC,
		JWTSecret: cfg.JWT.Secret,
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
