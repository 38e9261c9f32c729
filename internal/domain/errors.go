package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrCustomerNotFound      = errors.New("cliente no encontrado")
	ErrCustomerAlreadyExists = errors.New("ya existe un cliente con ese CPF")
	ErrInsufficientFunds     = errors.New("saldo insuficiente")
	ErrInvalidInput          = errors.New("entrada inválida")
)
