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

	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/application/settings"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
	"github.com/mazzari/invoicing-api/internal/infrastructure/mailer"
	"github.com/mazzari/invoicing-api/internal/infrastructure/memstore"
	infrapdf "github.com/mazzari/invoicing-api/internal/infrastructure/pdf"
	"github.com/mazzari/invoicing-api/internal/infrastructure/postgres"
	"github.com/mazzari/invoicing-api/internal/infrastructure/storecache"
	httpRouter "github.com/mazzari/invoicing-api/internal/interfaces/http"
	"github.com/mazzari/invoicing-api/pkg/config"
	"github.com/mazzari/invoicing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting application")

	ctx := context.Background()

	var (
		invoiceRepo  repository.InvoiceRepository
		businessRepo repository.BusinessRepository
	)
	switch cfg.Store.Driver {
	case config.StoreMemory:
		store := memstore.New()
		invoiceRepo = store
		businessRepo = store
		log.Warn().Msg("using in-memory store, records will not survive a restart")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
		defer pool.Close()
		invoiceRepo = postgres.NewInvoiceRepository(pool)
		businessRepo = postgres.NewBusinessRepository(pool)
	}

	// Read-through cache in front of the store: list/detail reads are served
	// from memory until a write invalidates them.
	cachedInvoices := storecache.New(invoiceRepo)

	invoiceUC := invoicing.NewInvoiceUseCase(cachedInvoices, businessRepo)
	settingsUC := settings.NewUseCase(businessRepo)

	renderer := infrapdf.NewMarotoRenderer()
	pdfUC := invoicing.NewPDFUseCase(cachedInvoices, renderer)

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	sendUC := invoicing.NewSendUseCase(cachedInvoices, businessRepo, renderer, smtpMailer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF rendering of long invoices
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoicing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:  invoiceUC,
		PDFUC:      pdfUC,
		SendUC:     sendUC,
		SettingsUC: settingsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
