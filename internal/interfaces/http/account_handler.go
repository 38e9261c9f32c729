package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/account"
	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

// HeaderCPF header que identifica al cliente en las rutas de cuenta.
const HeaderCPF = "cpf"

// AccountHandler maneja las peticiones HTTP de cuentas y extractos.
type AccountHandler struct {
	uc  *account.AccountUseCase
	pdf *account.StatementPDFUseCase
	loc *time.Location
	log *logger.Logger
}

// NewAccountHandler construye el handler. loc define el día calendario de /statement/date.
func NewAccountHandler(uc *account.AccountUseCase, pdf *account.StatementPDFUseCase, loc *time.Location, log *logger.Logger) *AccountHandler {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AccountHandler{uc: uc, pdf: pdf, loc: loc, log: log}
}

// Open POST /account
func (h *AccountHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, CodeInvalidBody, "cuerpo inválido")
	}
	acc, err := h.uc.Open(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(acc)
}

// Get GET /account
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	acc, err := h.uc.Get(c.UserContext(), c.Get(HeaderCPF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(acc)
}

// Update PUT /account
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidBody(c)
	}
	if err := h.uc.Rename(c.UserContext(), c.Get(HeaderCPF), in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Delete DELETE /account. Responde con las cuentas restantes.
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	remaining, err := h.uc.Close(c.UserContext(), c.Get(HeaderCPF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusOK).JSON(remaining)
}

// List GET /accounts?limit=20&offset=0
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, CodeValidation, "limit y offset deben ser enteros")
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Deposit POST /deposit
func (h *AccountHandler) Deposit(c *fiber.Ctx) error {
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidBody(c)
	}
	if err := h.uc.Deposit(c.UserContext(), c.Get(HeaderCPF), in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Withdraw POST /withdraw
func (h *AccountHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return h.invalidBody(c)
	}
	if err := h.uc.Withdraw(c.UserContext(), c.Get(HeaderCPF), in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Balance GET /balance. El cuerpo es el saldo como número JSON.
func (h *AccountHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.Balance(c.UserContext(), c.Get(HeaderCPF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(balance)
}

// Statement GET /statement
func (h *AccountHandler) Statement(c *fiber.Ctx) error {
	ops, err := h.uc.Statement(c.UserContext(), c.Get(HeaderCPF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(ops)
}

// StatementByDate GET /statement/date?date=YYYY-MM-DD
// El cliente se resuelve antes de validar la fecha: un CPF desconocido siempre es CUSTOMER_NOT_FOUND.
func (h *AccountHandler) StatementByDate(c *fiber.Ctx) error {
	customer, err := h.uc.Resolver().Resolve(c.UserContext(), c.Get(HeaderCPF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	day, err := ledger.ParseDay(c.Query("date"), h.loc)
	if err != nil {
		return badRequest(c, CodeInvalidDate, "date debe tener formato YYYY-MM-DD")
	}
	return c.JSON(account.StatementOfDay(customer, day))
}

// StatementPDF GET /statement/pdf
func (h *AccountHandler) StatementPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.DownloadStatementPDF(c.UserContext(), c.Get(HeaderCPF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// invalidBody responde a un cuerpo que no se pudo decodificar. Si el CPF no
// corresponde a ningún cliente la respuesta es CUSTOMER_NOT_FOUND.
func (h *AccountHandler) invalidBody(c *fiber.Ctx) error {
	if _, err := h.uc.Resolver().Resolve(c.UserContext(), c.Get(HeaderCPF)); err != nil {
		return writeError(c, h.log, err)
	}
	return badRequest(c, CodeInvalidBody, "cuerpo inválido")
}
