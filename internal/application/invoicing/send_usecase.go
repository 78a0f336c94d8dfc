package invoicing

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

// SendUseCase emails invoices as PDF attachments and advances their status.
type SendUseCase struct {
	invoices repository.InvoiceRepository
	business repository.BusinessRepository
	renderer PDFRenderer
	mailer   Mailer
}

// NewSendUseCase builds the use case.
func NewSendUseCase(invoices repository.InvoiceRepository, business repository.BusinessRepository, renderer PDFRenderer, mailer Mailer) *SendUseCase {
	return &SendUseCase{invoices: invoices, business: business, renderer: renderer, mailer: mailer}
}

// SendInvoices renders each requested invoice to PDF, attaches them all to a
// single message and dispatches it. Draft invoices advance to sent only after
// the dispatch succeeds; any earlier failure (unknown id, render error, mail
// error) leaves every status untouched.
func (uc *SendUseCase) SendInvoices(ctx context.Context, to, subject, body string, invoiceIDs []string) (string, error) {
	if strings.TrimSpace(to) == "" {
		return "", fmt.Errorf("%w: recipient address is required", domain.ErrValidation)
	}
	if len(invoiceIDs) == 0 {
		return "", fmt.Errorf("%w: at least one invoice id is required", domain.ErrValidation)
	}

	biz, err := uc.business.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: load business settings: %v", domain.ErrStoreFailed, err)
	}
	if biz == nil {
		biz = entity.DefaultBusinessInfo()
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceIDs))
	attachments := make([]Attachment, 0, len(invoiceIDs))
	for _, id := range invoiceIDs {
		inv, err := uc.invoices.FetchOne(ctx, id)
		if err != nil {
			return "", fmt.Errorf("%w: fetch invoice: %v", domain.ErrStoreFailed, err)
		}
		if inv == nil {
			return "", fmt.Errorf("%w: invoice %s", domain.ErrNotFound, id)
		}
		doc, err := uc.renderer.RenderInvoicePDF(ctx, inv)
		if err != nil {
			return "", err
		}
		invoices = append(invoices, inv)
		attachments = append(attachments, Attachment{Name: inv.InvoiceNumber + ".pdf", Data: doc})
	}

	if subject == "" {
		subject = "Invoice from " + biz.BusinessName
	}
	textBody, htmlBody := composeBodies(body, biz)

	messageID, err := uc.mailer.Send(ctx, to, subject, textBody, htmlBody, attachments)
	if err != nil {
		return "", err
	}

	for _, inv := range invoices {
		if inv.Status != entity.StatusDraft {
			continue
		}
		inv.Status = entity.StatusSent
		inv.UpdatedAt = time.Now().UTC()
		if err := uc.invoices.Upsert(ctx, inv); err != nil {
			// The mail is already out; report the bookkeeping failure.
			return messageID, fmt.Errorf("%w: mark invoice %s as sent: %v", domain.ErrStoreFailed, inv.ID, err)
		}
	}
	return messageID, nil
}

// SendRaw dispatches an arbitrary message with pre-built attachments. It
// backs the multipart relay endpoint, where the caller supplies the files.
func (uc *SendUseCase) SendRaw(ctx context.Context, to, subject, body string, attachments []Attachment) (string, error) {
	if strings.TrimSpace(to) == "" {
		return "", fmt.Errorf("%w: recipient address is required", domain.ErrValidation)
	}

	biz, err := uc.business.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: load business settings: %v", domain.ErrStoreFailed, err)
	}
	if biz == nil {
		biz = entity.DefaultBusinessInfo()
	}

	if subject == "" {
		subject = "Invoice from " + biz.BusinessName
	}
	textBody, htmlBody := composeBodies(body, biz)
	return uc.mailer.Send(ctx, to, subject, textBody, htmlBody, attachments)
}

// composeBodies appends the business signature to the caller-supplied body
// and produces both the plain-text and HTML variants.
func composeBodies(body string, biz *entity.BusinessInfo) (string, string) {
	signature := []string{biz.BusinessName}
	for _, line := range []string{biz.Phone, biz.Email, biz.Address} {
		if line != "" {
			signature = append(signature, line)
		}
	}

	text := strings.TrimSpace(body)
	if text == "" {
		text = "Please find your invoice attached."
	}
	text += "\n\nKind regards,\n" + strings.Join(signature, "\n")

	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(strings.ReplaceAll(html.EscapeString(strings.TrimSpace(body)), "\n", "<br/>"))
	if strings.TrimSpace(body) == "" {
		b.WriteString("Please find your invoice attached.")
	}
	b.WriteString("</p><p>Kind regards,<br/><strong>")
	b.WriteString(html.EscapeString(biz.BusinessName))
	b.WriteString("</strong>")
	for _, line := range signature[1:] {
		b.WriteString("<br/>")
		b.WriteString(html.EscapeString(line))
	}
	b.WriteString("</p>")

	return text, b.String()
}
