package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/billing"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/infrastructure/pdf"
)

func testInvoice(itemCount int) *entity.Invoice {
	items := make([]entity.ServiceItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, entity.ServiceItem{
			ID:          "it",
			Service:     "Lawn Maintanance",
			Description: "Lawn Maintainance of all areas cleaning all common areas and spraying of weeds",
			Dates: []time.Time{
				time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC),
				time.Date(2024, time.March, 18, 9, 0, 0, 0, time.UTC),
			},
			Quantity: decimal.NewFromInt(2),
			Rate:     decimal.NewFromInt(180),
			Total:    decimal.NewFromInt(360),
		})
	}
	totals := billing.ComputeTotals(items, decimal.NewFromInt(10), entity.DiscountPercentage, true, decimal.NewFromInt(10))
	biz := entity.DefaultBusinessInfo()
	biz.ABN = "51 824 753 556"
	biz.BankBSB = "064-000"
	biz.BankAccountNumber = "12345678"
	return &entity.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-TEST-001",
		IssueDate:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		PaymentTerms:  billing.TermNet14,
		Status:        entity.StatusDraft,
		BusinessInfo:  *biz,
		ClientInfo:    entity.ClientInfo{Name: "Strata Plan 1234", Email: "strata@example.com", Address: "Brisbane QLD"},
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      decimal.NewFromInt(10),
		DiscountType:  entity.DiscountPercentage,
		GSTEnabled:    true,
		GSTRate:       decimal.NewFromInt(10),
		GSTAmount:     totals.GSTAmount,
		Total:         totals.Total,
		Notes:         "Gate code is 4131.",
	}
}

func TestRenderInvoicePDF_ProducesDocument(t *testing.T) {
	g := pdf.NewMarotoRenderer()

	out, err := g.RenderInvoicePDF(context.Background(), testInvoice(3))

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF document")
}

// Tall invoices paginate: a document with many service lines must contain
// more page objects than a short one, never a scaled or clipped single page.
func TestRenderInvoicePDF_PaginatesOverflow(t *testing.T) {
	g := pdf.NewMarotoRenderer()

	short, err := g.RenderInvoicePDF(context.Background(), testInvoice(2))
	require.NoError(t, err)
	tall, err := g.RenderInvoicePDF(context.Background(), testInvoice(40))
	require.NoError(t, err)

	shortPages := bytes.Count(short, []byte("/Type /Page"))
	tallPages := bytes.Count(tall, []byte("/Type /Page"))
	assert.Greater(t, tallPages, shortPages, "40 service lines must flow onto additional pages")
}

func TestRenderInvoicePDF_NilInvoice(t *testing.T) {
	g := pdf.NewMarotoRenderer()

	_, err := g.RenderInvoicePDF(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}

func TestRenderInvoicePDF_NoItems(t *testing.T) {
	g := pdf.NewMarotoRenderer()
	inv := testInvoice(1)
	inv.Items = nil

	_, err := g.RenderInvoicePDF(context.Background(), inv)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}

// Exports are isolated per invocation: rendering the same invoice twice, or
// concurrently, must produce a valid document each time.
func TestRenderInvoicePDF_IndependentInvocations(t *testing.T) {
	g := pdf.NewMarotoRenderer()
	inv := testInvoice(2)

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			out, err := g.RenderInvoicePDF(context.Background(), inv)
			if err == nil && !bytes.HasPrefix(out, []byte("%PDF")) {
				err = assert.AnError
			}
			done <- err
		}()
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, <-done)
	}
}
