package account

import (
	"context"
	"strings"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// Resolver localiza al cliente de una petición por su CPF.
// Es el paso previo de todas las operaciones excepto la apertura de cuenta:
// si falla, la petición completa falla con domain.ErrCustomerNotFound.
type Resolver struct {
	repo repository.CustomerRepository
}

// NewResolver construye el resolver.
func NewResolver(repo repository.CustomerRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve busca por coincidencia exacta de CPF. Un CPF vacío nunca coincide.
func (r *Resolver) Resolve(ctx context.Context, taxID string) (*entity.Customer, error) {
	if strings.TrimSpace(taxID) == "" {
		return nil, domain.ErrCustomerNotFound
	}
	return r.repo.GetByTaxID(ctx, taxID)
}
