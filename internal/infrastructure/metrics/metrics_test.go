package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/infrastructure/metrics"
)

func TestMiddleware_CuentaPeticionesPorRuta(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/balance", func(c *fiber.Ctx) error { return c.SendString("0") })
	app.Get("/metrics", m.Handler())

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/balance", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `ledger_http_requests_total{method="GET",route="/balance",status="200"} 3`)
}

func TestObserver(t *testing.T) {
	m := metrics.New()
	m.OperationRecorded("credit")
	m.OperationRecorded("credit")
	m.OperationRecorded("debit")
	m.WithdrawalRejected()

	n, err := testutil.GatherAndCount(m.Registry(), "ledger_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por tipo de operación")

	n, err = testutil.GatherAndCount(m.Registry(), "ledger_withdrawals_rejected_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
