package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/mazzari/invoicing-api/internal/application/dto"
	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/domain"
)

// relayError matches the wire contract of the standalone mail relay this
// endpoint replaces: {"error": "...", "details": "..."}.
type relayError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MailHandler serves the multipart send-invoices relay.
type MailHandler struct {
	uc *invoicing.SendUseCase
}

// NewMailHandler builds the handler.
func NewMailHandler(uc *invoicing.SendUseCase) *MailHandler {
	return &MailHandler{uc: uc}
}

// SendMultipart dispatches an email with caller-supplied PDF attachments.
// Fields: to (required), body, subject (optional, defaults to the business
// greeting), files (repeated).
// POST /api/send-invoices
func (h *MailHandler) SendMultipart(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(relayError{Error: "invalid multipart form", Details: err.Error()})
	}

	to := firstValue(form.Value, "to")
	body := firstValue(form.Value, "body")
	subject := firstValue(form.Value, "subject")
	if to == "" || body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(relayError{Error: "Missing required fields: to, body"})
	}

	var attachments []invoicing.Attachment
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(relayError{Error: "unreadable attachment", Details: err.Error()})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(relayError{Error: "unreadable attachment", Details: err.Error()})
		}
		attachments = append(attachments, invoicing.Attachment{Name: header.Filename, Data: data})
	}

	messageID, err := h.uc.SendRaw(c.Context(), to, subject, body, attachments)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(relayError{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(relayError{Error: "failed to send email", Details: err.Error()})
	}
	return c.JSON(dto.SendResponse{Success: true, MessageID: messageID})
}

func firstValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
