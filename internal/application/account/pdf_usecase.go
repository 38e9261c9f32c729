package account

import (
	"context"
	"fmt"
)

// StatementPDFUseCase genera el extracto del cliente en PDF.
type StatementPDFUseCase struct {
	resolver  *Resolver
	generator StatementPDFGenerator
}

// NewStatementPDFUseCase construye el caso de uso.
func NewStatementPDFUseCase(resolver *Resolver, generator StatementPDFGenerator) *StatementPDFUseCase {
	return &StatementPDFUseCase{resolver: resolver, generator: generator}
}

// DownloadStatementPDF resuelve el cliente y renderiza su extracto completo.
// Retorna (pdfBytes, filename, nil) o domain.ErrCustomerNotFound.
func (uc *StatementPDFUseCase) DownloadStatementPDF(ctx context.Context, taxID string) ([]byte, string, error) {
	customer, err := uc.resolver.Resolve(ctx, taxID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateStatementPDF(ctx, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar extracto: %w", err)
	}
	return pdf, fmt.Sprintf("extrato-%s.pdf", customer.TaxID), nil
}
