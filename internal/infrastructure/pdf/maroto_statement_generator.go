// Package pdf implementa la representación gráfica del extracto de cuenta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Titular + CPF        │  EXTRATO + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Descripción | Valor                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Créditos / Débitos / SALDO                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
)

var _ account.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebit   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa account.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	loc *time.Location
	now func() time.Time
}

// NewMarotoStatementGenerator construye el generador. Las fechas se imprimen en loc.
func NewMarotoStatementGenerator(loc *time.Location) *MarotoStatementGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &MarotoStatementGenerator{loc: loc, now: time.Now}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, customer *entity.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extrato de conta", true).
		WithAuthor(customer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(customer, g.now().In(g.loc)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(customer.Statement, g.loc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(customer.Statement))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: titular + CPF (izq) y título + fecha de emisión (der).
func headerRow(customer *entity.Customer, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CPF: "+customer.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EXTRATO DE CONTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de operaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 3, align.Left),
		h("Tipo", 2, align.Center),
		h("Descrição", 4, align.Left),
		h("Valor", 3, align.Right),
	)
}

// tableRows: una fila por operación, en orden de registro.
func tableRows(ops []entity.Operation, loc *time.Location) []core.Row {
	if len(ops) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sem movimentações.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(ops))
	for _, op := range ops {
		label, sign, color := "Crédito", "", colorPrimary
		if !op.IsCredit() {
			label, sign, color = "Débito", "-", colorDebit
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				op.CreatedAt.In(loc).Format("02/01/2006 15:04"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(
				nonEmpty(op.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				sign+formatBRL(op.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color},
			)),
		))
	}
	return result
}

// totalsRow: créditos, débitos y saldo alineados a la derecha.
func totalsRow(ops []entity.Operation) core.Row {
	credits, debits := decimal.Zero, decimal.Zero
	for _, op := range ops {
		if op.IsCredit() {
			credits = credits.Add(op.Amount)
		} else {
			debits = debits.Add(op.Amount)
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Créditos:"),
			label("Débitos:"),
			text.New("SALDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2,
			}),
		),
		col.New(3).Add(
			value(formatBRL(credits)),
			value(formatBRL(debits.Neg())),
			text.New(formatBRL(ledger.Balance(ops)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL formatea un monto con separador de miles "." y decimales ",".
// Ej: 1234567.5 → "R$ 1.234.567,50", -20 → "-R$ 20,00"
func formatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
