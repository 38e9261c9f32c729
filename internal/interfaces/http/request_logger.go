package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/pkg/logger"
)

// RequestLogger registra una línea por petición (método, ruta, estado, latencia).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}
