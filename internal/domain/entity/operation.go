package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación del extracto.
const (
	OperationTypeCredit = "credit" // depósito
	OperationTypeDebit  = "debit"  // retiro
)

// Operation es un asiento del extracto de un cliente. Nunca se modifica tras crearse.
type Operation struct {
	Type        string
	Amount      decimal.Decimal // siempre > 0; el signo lo define Type
	Description string          // solo en créditos
	CreatedAt   time.Time
}

// IsCredit indica si la operación suma al saldo.
func (o Operation) IsCredit() bool { return o.Type == OperationTypeCredit }
