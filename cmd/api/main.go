package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dahill/invoice-api/internal/application/auth"
	"github.com/dahill/invoice-api/internal/application/billing"
	"github.com/dahill/invoice-api/internal/application/dto"
	infrapdf "github.com/dahill/invoice-api/internal/infrastructure/pdf"
	"github.com/dahill/invoice-api/internal/infrastructure/postgres"
	httpRouter "github.com/dahill/invoice-api/internal/interfaces/http"
	"github.com/dahill/invoice-api/pkg/config"
	"github.com/dahill/invoice-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo)
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Fallos no clasificados: sobre genérico, sin filtrar internos.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.Response{Success: false, Message: fe.Message})
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{
				Success: false,
				Message: "Internal server error",
			})
		},
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Invoice API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.App.Env,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		InvoicePDF: invoicePDFUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
