package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":         "R$ 0,00",
		"20":        "R$ 20,00",
		"1234.5":    "R$ 1.234,50",
		"1234567.5": "R$ 1.234.567,50",
		"-300":      "-R$ 300,00",
		"-0":        "R$ 0,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatBRL(decimal.RequireFromString(in)), "monto %s", in)
	}
}

func TestGenerateStatementPDF(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	customer := &entity.Customer{
		ID:    "1",
		TaxID: "111",
		Name:  "Ana",
		Statement: []entity.Operation{
			{Type: entity.OperationTypeCredit, Amount: decimal.NewFromInt(500), Description: "salary", CreatedAt: now},
			{Type: entity.OperationTypeDebit, Amount: decimal.NewFromInt(200), CreatedAt: now.Add(time.Hour)},
		},
	}

	g := NewMarotoStatementGenerator(time.UTC)
	out, err := g.GenerateStatementPDF(context.Background(), customer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un documento PDF")
}

func TestGenerateStatementPDF_ExtractoVacio(t *testing.T) {
	g := NewMarotoStatementGenerator(nil)
	out, err := g.GenerateStatementPDF(context.Background(), &entity.Customer{TaxID: "111", Name: "Ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// Sin débitos el total de débitos se imprime sin signo.
func TestFormatBRL_TotalDeDebitosCero(t *testing.T) {
	assert.Equal(t, "R$ 0,00", formatBRL(decimal.Zero.Neg()))
	assert.Equal(t, "-R$ 200,00", formatBRL(decimal.NewFromInt(200).Neg()))
}
