package repository

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// CustomerMutation modifica un cliente dentro de la sección crítica del store.
// Si devuelve error, el store descarta los cambios.
type CustomerMutation func(customer *entity.Customer) error

// CustomerRepository define el puerto de almacenamiento de clientes del ledger.
// Los valores devueltos son copias: el llamador puede leerlos sin sincronización.
type CustomerRepository interface {
	// Create agrega el cliente al final; domain.ErrCustomerAlreadyExists si el CPF ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByTaxID busca por coincidencia exacta de CPF; domain.ErrCustomerNotFound si no existe.
	GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)
	// List devuelve todos los clientes en orden de inserción.
	List(ctx context.Context) ([]*entity.Customer, error)
	// Mutate resuelve el CPF y aplica fn de forma atómica.
	Mutate(ctx context.Context, taxID string, fn CustomerMutation) error
	// Delete elimina por posición al cliente cuyo ID coincide.
	Delete(ctx context.Context, id string) error
}
