package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// Códigos de error del API.
const (
	CodeCustomerNotFound      = "CUSTOMER_NOT_FOUND"
	CodeCustomerAlreadyExists = "CUSTOMER_ALREADY_EXISTS"
	CodeInsufficientFunds     = "INSUFFICIENT_FUNDS"
	CodeValidation            = "VALIDATION"
	CodeInvalidBody           = "INVALID_BODY"
	CodeInvalidDate           = "INVALID_DATE"
	CodeInternal              = "INTERNAL"
)

// writeError traduce errores de dominio a 400 con su código; el resto es 500.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var code string
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		code = CodeCustomerNotFound
	case errors.Is(err, domain.ErrCustomerAlreadyExists):
		code = CodeCustomerAlreadyExists
	case errors.Is(err, domain.ErrInsufficientFunds):
		code = CodeInsufficientFunds
	case errors.Is(err, domain.ErrInvalidInput):
		code = CodeValidation
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno"})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
