package account

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// OperationObserver recibe notificaciones de operaciones registradas (métricas).
type OperationObserver interface {
	OperationRecorded(opType string)
	WithdrawalRejected()
}

// StatementPDFGenerator puerto para renderizar el extracto completo de un cliente.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, customer *entity.Customer) ([]byte, error)
}

type nopObserver struct{}

func (nopObserver) OperationRecorded(string) {}
func (nopObserver) WithdrawalRejected()      {}
