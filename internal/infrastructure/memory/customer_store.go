// Package memory implementa el Ledger Store en memoria del proceso.
// Todo el estado se pierde al reiniciar.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerStore)(nil)

// CustomerStore colección ordenada de clientes protegida por un RWMutex.
// Escrituras (create, mutate, delete) se serializan; lecturas copian bajo RLock.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []*entity.Customer
}

// NewCustomerStore crea un store vacío. Su ciclo de vida lo controla cmd/api.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{customers: make([]*entity.Customer, 0)}
}

// indexByTaxID debe llamarse con el lock tomado.
func (s *CustomerStore) indexByTaxID(taxID string) int {
	return slices.IndexFunc(s.customers, func(c *entity.Customer) bool { return c.TaxID == taxID })
}

func (s *CustomerStore) Create(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exists := slices.ContainsFunc(s.customers, func(c *entity.Customer) bool { return c.TaxID == customer.TaxID })
	if exists {
		return domain.ErrCustomerAlreadyExists
	}
	s.customers = append(s.customers, customer.Clone())
	return nil
}

func (s *CustomerStore) GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexByTaxID(taxID)
	if i < 0 {
		return nil, domain.ErrCustomerNotFound
	}
	return s.customers[i].Clone(), nil
}

func (s *CustomerStore) List(ctx context.Context) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c.Clone())
	}
	return out, nil
}

// Mutate aplica fn sobre una copia y la publica solo si fn no falla,
// de modo que un error deja el cliente intacto.
func (s *CustomerStore) Mutate(ctx context.Context, taxID string, fn repository.CustomerMutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexByTaxID(taxID)
	if i < 0 {
		return domain.ErrCustomerNotFound
	}
	draft := s.customers[i].Clone()
	if err := fn(draft); err != nil {
		return err
	}
	// ID y CPF son inmutables.
	draft.ID = s.customers[i].ID
	draft.TaxID = s.customers[i].TaxID
	s.customers[i] = draft
	return nil
}

func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.customers, func(c *entity.Customer) bool { return c.ID == id })
	if i < 0 {
		return domain.ErrCustomerNotFound
	}
	s.customers = slices.Delete(s.customers, i, i+1)
	return nil
}

// Len número de clientes almacenados.
func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}
