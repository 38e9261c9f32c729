// Package account implementa los casos de uso de cuentas del ledger:
// apertura, consulta, actualización, cierre, depósitos, retiros, saldo y extractos.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// AccountUseCase casos de uso sobre cuentas y su extracto.
type AccountUseCase struct {
	repo     repository.CustomerRepository
	resolver *Resolver
	observer OperationObserver
	now      func() time.Time
}

// NewAccountUseCase construye el caso de uso. observer y now son opcionales
// (nil usa un observador vacío y time.Now).
func NewAccountUseCase(repo repository.CustomerRepository, observer OperationObserver, now func() time.Time) *AccountUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	if now == nil {
		now = time.Now
	}
	return &AccountUseCase{
		repo:     repo,
		resolver: NewResolver(repo),
		observer: observer,
		now:      now,
	}
}

// Resolver expone el resolver de clientes compartido con otros casos de uso.
func (uc *AccountUseCase) Resolver() *Resolver { return uc.resolver }

// Open crea una cuenta nueva con extracto vacío.
func (uc *AccountUseCase) Open(ctx context.Context, in dto.OpenAccountRequest) (*dto.AccountResponse, error) {
	cpf := strings.TrimSpace(in.CPF)
	name := strings.TrimSpace(in.Name)
	if cpf == "" || name == "" {
		return nil, fmt.Errorf("%w: cpf y name son requeridos", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		TaxID:     cpf,
		Name:      name,
		Statement: []entity.Operation{},
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	out := toAccountResponse(customer)
	return &out, nil
}

// Get devuelve la cuenta completa del CPF, extracto incluido.
func (uc *AccountUseCase) Get(ctx context.Context, taxID string) (*dto.AccountResponse, error) {
	customer, err := uc.resolver.Resolve(ctx, taxID)
	if err != nil {
		return nil, err
	}
	out := toAccountResponse(customer)
	return &out, nil
}

// List lista las cuentas en orden de apertura.
func (uc *AccountUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.AccountListResponse, error) {
	page.DefaultPage()
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	total := len(all)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)
	return &dto.AccountListResponse{
		Items: toAccountResponses(all[start:end]),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Rename sobrescribe el nombre del titular.
// La búsqueda del cliente precede a la validación: un CPF desconocido es siempre ErrCustomerNotFound.
func (uc *AccountUseCase) Rename(ctx context.Context, taxID string, in dto.UpdateAccountRequest) error {
	name := strings.TrimSpace(in.Name)
	return uc.mutate(ctx, taxID, func(c *entity.Customer) error {
		if name == "" {
			return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
		}
		c.Name = name
		return nil
	})
}

// Close elimina la cuenta del CPF y devuelve las cuentas restantes.
func (uc *AccountUseCase) Close(ctx context.Context, taxID string) ([]dto.AccountResponse, error) {
	customer, err := uc.resolver.Resolve(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, customer.ID); err != nil {
		return nil, err
	}
	remaining, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toAccountResponses(remaining), nil
}

// Deposit registra un crédito. No tiene precondición de saldo.
func (uc *AccountUseCase) Deposit(ctx context.Context, taxID string, in dto.DepositRequest) error {
	err := uc.mutate(ctx, taxID, func(c *entity.Customer) error {
		if err := validateAmount(in.Amount); err != nil {
			return err
		}
		c.Append(entity.Operation{
			Type:        entity.OperationTypeCredit,
			Amount:      in.Amount,
			Description: in.Description,
			CreatedAt:   uc.now(),
		})
		return nil
	})
	if err != nil {
		return err
	}
	uc.observer.OperationRecorded(entity.OperationTypeCredit)
	return nil
}

// Withdraw registra un débito si el saldo cubre el monto.
// Verificación y registro ocurren en la misma sección crítica del store.
func (uc *AccountUseCase) Withdraw(ctx context.Context, taxID string, in dto.WithdrawRequest) error {
	err := uc.mutate(ctx, taxID, func(c *entity.Customer) error {
		if err := validateAmount(in.Amount); err != nil {
			return err
		}
		if !ledger.CanWithdraw(c.Statement, in.Amount) {
			return domain.ErrInsufficientFunds
		}
		c.Append(entity.Operation{
			Type:      entity.OperationTypeDebit,
			Amount:    in.Amount,
			CreatedAt: uc.now(),
		})
		return nil
	})
	if errors.Is(err, domain.ErrInsufficientFunds) {
		uc.observer.WithdrawalRejected()
		return err
	}
	if err != nil {
		return err
	}
	uc.observer.OperationRecorded(entity.OperationTypeDebit)
	return nil
}

// mutate resuelve al cliente dentro de la sección crítica del store y aplica fn.
// fn solo corre si el cliente existe.
func (uc *AccountUseCase) mutate(ctx context.Context, taxID string, fn repository.CustomerMutation) error {
	if strings.TrimSpace(taxID) == "" {
		return domain.ErrCustomerNotFound
	}
	return uc.repo.Mutate(ctx, taxID, fn)
}

// Balance saldo neto del cliente.
func (uc *AccountUseCase) Balance(ctx context.Context, taxID string) (decimal.Decimal, error) {
	customer, err := uc.resolver.Resolve(ctx, taxID)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.Balance(customer.Statement), nil
}

// Statement extracto completo en orden de registro.
func (uc *AccountUseCase) Statement(ctx context.Context, taxID string) ([]dto.OperationResponse, error) {
	customer, err := uc.resolver.Resolve(ctx, taxID)
	if err != nil {
		return nil, err
	}
	return toOperationResponses(customer.Statement), nil
}

// StatementByDate extracto restringido al día calendario de day (en su zona horaria).
func (uc *AccountUseCase) StatementByDate(ctx context.Context, taxID string, day time.Time) ([]dto.OperationResponse, error) {
	customer, err := uc.resolver.Resolve(ctx, taxID)
	if err != nil {
		return nil, err
	}
	return StatementOfDay(customer, day), nil
}

// StatementOfDay filtra el extracto de un cliente ya resuelto.
func StatementOfDay(customer *entity.Customer, day time.Time) []dto.OperationResponse {
	return toOperationResponses(ledger.FilterByDay(customer.Statement, day))
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return nil
}
