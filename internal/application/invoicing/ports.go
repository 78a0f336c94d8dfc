package invoicing

import (
	"context"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// Attachment is a named binary attached to an outgoing email.
type Attachment struct {
	Name string
	Data []byte
}

// PDFRenderer turns an invoice into document bytes.
type PDFRenderer interface {
	RenderInvoicePDF(ctx context.Context, inv *entity.Invoice) ([]byte, error)
}

// Mailer dispatches a single email and reports the provider message id.
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string, attachments []Attachment) (string, error)
}
