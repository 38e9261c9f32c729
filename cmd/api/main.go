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

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/ledger-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/ledger-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/ledger-api/internal/interfaces/http"
	"github.com/jhoicas/ledger-api/pkg/config"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Ledger.Location().String()).
		Msg("iniciando aplicación")

	// El store vive lo que vive el proceso: no hay persistencia.
	store := memory.NewCustomerStore()

	var m *metrics.Metrics
	var observer account.OperationObserver
	if cfg.Metrics.Enabled {
		m = metrics.New()
		observer = m
	}

	accountUC := account.NewAccountUseCase(store, observer, time.Now)
	statementPDFUC := account.NewStatementPDFUseCase(
		accountUC.Resolver(),
		infrapdf.NewMarotoStatementGenerator(cfg.Ledger.Location()),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Ledger API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:    accountUC,
		StatementPDF: statementPDFUC,
		Location:     cfg.Ledger.Location(),
		Logger:       log,
		Metrics:      m,
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

	log.Info().Int("customers", store.Len()).Msg("aplicación detenida, estado en memoria descartado")
}
