package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/infrastructure/metrics"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC    *account.AccountUseCase
	StatementPDF *account.StatementPDFUseCase
	Location     *time.Location
	Logger       *logger.Logger
	Metrics      *metrics.Metrics // nil = sin /metrics
}

// Router registra middlewares y rutas del ledger.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	h := NewAccountHandler(deps.AccountUC, deps.StatementPDF, deps.Location, deps.Logger)

	// Cuenta (POST es público; el resto resuelve el cliente por el header cpf)
	app.Post("/account", h.Open)
	app.Get("/account", h.Get)
	app.Put("/account", h.Update)
	app.Delete("/account", h.Delete)
	app.Get("/accounts", h.List)

	// Movimientos
	app.Post("/deposit", h.Deposit)
	app.Post("/withdraw", h.Withdraw)
	app.Get("/balance", h.Balance)

	// Extractos
	app.Get("/statement", h.Statement)
	app.Get("/statement/date", h.StatementByDate)
	app.Get("/statement/pdf", h.StatementPDF)
}
