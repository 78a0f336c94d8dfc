package invoicing

import (
	"context"
	"fmt"

	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

// PDFUseCase exports stored invoices as PDF documents.
type PDFUseCase struct {
	invoices repository.InvoiceRepository
	renderer PDFRenderer
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(invoices repository.InvoiceRepository, renderer PDFRenderer) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, renderer: renderer}
}

// Download renders the invoice and returns the document bytes together with
// the download filename, which is always "<invoice number>.pdf".
func (uc *PDFUseCase) Download(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invoices.FetchOne(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("%w: fetch invoice: %v", domain.ErrStoreFailed, err)
	}
	if inv == nil {
		return nil, "", fmt.Errorf("%w: invoice %s", domain.ErrNotFound, id)
	}

	doc, err := uc.renderer.RenderInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", err
	}
	return doc, inv.InvoiceNumber + ".pdf", nil
}
