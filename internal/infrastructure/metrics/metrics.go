// Package metrics expone métricas Prometheus del ledger y su middleware HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores del servicio sobre un registry propio,
// de modo que varias instancias (p. ej. en tests) no colisionan.
type Metrics struct {
	registry            *prometheus.Registry
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	operationsTotal     *prometheus.CounterVec
	withdrawalsRejected prometheus.Counter
}

// New registra los colectores del ledger y los del runtime de Go.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_http_requests_total",
				Help: "Total de peticiones HTTP",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		operationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Operaciones registradas en extractos, por tipo",
			},
			[]string{"type"},
		),
		withdrawalsRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "ledger_withdrawals_rejected_total",
			Help: "Retiros rechazados por saldo insuficiente",
		}),
	}
}

// OperationRecorded implementa account.OperationObserver.
func (m *Metrics) OperationRecorded(opType string) {
	m.operationsTotal.WithLabelValues(opType).Inc()
}

// WithdrawalRejected implementa account.OperationObserver.
func (m *Metrics) WithdrawalRejected() {
	m.withdrawalsRejected.Inc()
}

// Middleware mide cada petición. La ruta se etiqueta con el patrón registrado,
// no con la URL, para acotar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.requestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler GET /metrics en formato de exposición Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Registry acceso directo al registry (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
