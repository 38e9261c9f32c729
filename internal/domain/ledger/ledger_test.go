package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
)

func credit(amount int64, at time.Time) entity.Operation {
	return entity.Operation{Type: entity.OperationTypeCredit, Amount: decimal.NewFromInt(amount), Description: "dep", CreatedAt: at}
}

func debit(amount int64, at time.Time) entity.Operation {
	return entity.Operation{Type: entity.OperationTypeDebit, Amount: decimal.NewFromInt(amount), CreatedAt: at}
}

func TestBalance_ExtractoVacioEsCero(t *testing.T) {
	assert.True(t, ledger.Balance(nil).IsZero())
}

// El acumulador debe actualizarse en cada paso (fold), no descartarse.
func TestBalance_AcumulaCreditosYDebitos(t *testing.T) {
	now := time.Now()
	ops := []entity.Operation{
		credit(500, now),
		debit(200, now),
		credit(50, now),
		debit(25, now),
	}
	assert.Equal(t, "325", ledger.Balance(ops).String())
}

func TestBalance_DecimalSinDerivaDeRedondeo(t *testing.T) {
	now := time.Now()
	ops := make([]entity.Operation, 0, 10)
	for i := 0; i < 10; i++ {
		ops = append(ops, entity.Operation{
			Type:      entity.OperationTypeCredit,
			Amount:    decimal.RequireFromString("0.1"),
			CreatedAt: now,
		})
	}
	assert.True(t, ledger.Balance(ops).Equal(decimal.NewFromInt(1)),
		"diez créditos de 0.1 deben sumar exactamente 1")
}

func TestCanWithdraw(t *testing.T) {
	now := time.Now()
	ops := []entity.Operation{credit(300, now)}

	assert.True(t, ledger.CanWithdraw(ops, decimal.NewFromInt(300)), "retirar el saldo exacto es válido")
	assert.False(t, ledger.CanWithdraw(ops, decimal.NewFromInt(301)))
	assert.False(t, ledger.CanWithdraw(nil, decimal.NewFromInt(1)))
}

func TestFilterByDay_MismoDiaConservaOrden(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2024, 3, 10, 8, 0, 0, 0, loc)
	d2 := time.Date(2024, 3, 11, 9, 30, 0, 0, loc)
	ops := []entity.Operation{
		credit(10, d1),
		credit(20, d2),
		debit(5, d1.Add(3*time.Hour)),
		credit(1, d2.Add(time.Hour)),
	}

	day, err := ledger.ParseDay("2024-03-10", loc)
	require.NoError(t, err)

	got := ledger.FilterByDay(ops, day)
	require.Len(t, got, 2)
	assert.Equal(t, "10", got[0].Amount.String())
	assert.Equal(t, "5", got[1].Amount.String())
}

func TestFilterByDay_DiaSinOperacionesDevuelveVacio(t *testing.T) {
	loc := time.UTC
	ops := []entity.Operation{credit(10, time.Date(2024, 3, 10, 8, 0, 0, 0, loc))}

	day, err := ledger.ParseDay("2024-03-12", loc)
	require.NoError(t, err)

	got := ledger.FilterByDay(ops, day)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// La comparación es por componentes de fecha en la zona del ledger, no por instante.
func TestFilterByDay_ComparaEnZonaDelDia(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 01:30 UTC del 11 de marzo = 22:30 del 10 de marzo en BRT.
	op := credit(10, time.Date(2024, 3, 11, 1, 30, 0, 0, time.UTC))

	day, err := ledger.ParseDay("2024-03-10", saoPaulo)
	require.NoError(t, err)
	assert.Len(t, ledger.FilterByDay([]entity.Operation{op}, day), 1)

	dayUTC, err := ledger.ParseDay("2024-03-10", time.UTC)
	require.NoError(t, err)
	assert.Empty(t, ledger.FilterByDay([]entity.Operation{op}, dayUTC))
}

func TestParseDay_FormatoInvalido(t *testing.T) {
	for _, s := range []string{"", "10/03/2024", "2024-13-01", "ayer"} {
		_, err := ledger.ParseDay(s, time.UTC)
		assert.Error(t, err, "fecha %q debe rechazarse", s)
	}
}
