package account

import (
	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

func toOperationResponses(ops []entity.Operation) []dto.OperationResponse {
	out := make([]dto.OperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, dto.OperationResponse{
			Type:        op.Type,
			Amount:      op.Amount,
			Description: op.Description,
			CreatedAt:   op.CreatedAt,
		})
	}
	return out
}

func toAccountResponse(c *entity.Customer) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        c.ID,
		CPF:       c.TaxID,
		Name:      c.Name,
		Statement: toOperationResponses(c.Statement),
		CreatedAt: c.CreatedAt,
	}
}

func toAccountResponses(list []*entity.Customer) []dto.AccountResponse {
	out := make([]dto.AccountResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toAccountResponse(c))
	}
	return out
}
