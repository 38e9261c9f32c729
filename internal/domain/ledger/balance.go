// Package ledger contiene los servicios de dominio puros sobre el extracto:
// cálculo de saldo y filtrado por día. No tocan almacenamiento ni HTTP.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Balance pliega el extracto en un saldo neto partiendo de cero.
// Saldo = Σ créditos − Σ débitos, en el orden de inserción.
func Balance(ops []entity.Operation) decimal.Decimal {
	acc := decimal.Zero
	for _, op := range ops {
		if op.IsCredit() {
			acc = acc.Add(op.Amount)
		} else {
			acc = acc.Sub(op.Amount)
		}
	}
	return acc
}

// CanWithdraw indica si el saldo actual cubre el monto solicitado.
func CanWithdraw(ops []entity.Operation, amount decimal.Decimal) bool {
	return Balance(ops).GreaterThanOrEqual(amount)
}
