package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los montos viajan como números JSON (500, no "500").
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// OpenAccountRequest body para POST /account.
type OpenAccountRequest struct {
	CPF  string `json:"cpf"`
	Name string `json:"name"`
}

// UpdateAccountRequest body para PUT /account.
type UpdateAccountRequest struct {
	Name string `json:"name"`
}

// DepositRequest body para POST /deposit.
type DepositRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// WithdrawRequest body para POST /withdraw.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// OperationResponse asiento del extracto. description se omite en débitos.
type OperationResponse struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AccountResponse cuenta completa para GET /account.
type AccountResponse struct {
	ID        string              `json:"id"`
	CPF       string              `json:"cpf"`
	Name      string              `json:"name"`
	Statement []OperationResponse `json:"statement"`
	CreatedAt time.Time           `json:"created_at"`
}

// AccountListResponse lista paginada de cuentas (GET /accounts).
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
