package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mazzari/invoicing-api/internal/application/dto"
	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// InvoiceHandler serves the invoice endpoints.
type InvoiceHandler struct {
	uc     *invoicing.InvoiceUseCase
	pdfUC  *invoicing.PDFUseCase
	sendUC *invoicing.SendUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *invoicing.InvoiceUseCase, pdfUC *invoicing.PDFUseCase, sendUC *invoicing.SendUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC, sendUC: sendUC}
}

// List returns all invoices, optionally filtered by ?q= (invoice number,
// client name or client email, case-insensitive).
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.FromInvoice(inv))
	}
	return c.JSON(out)
}

// Save creates or replaces an invoice; derived fields are recomputed
// server-side.
// POST /api/invoices
func (h *InvoiceHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	return h.save(c, in)
}

// SaveByID replaces the invoice at the path id.
// PUT /api/invoices/:id
func (h *InvoiceHandler) SaveByID(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	in.ID = c.Params("id")
	return h.save(c, in)
}

func (h *InvoiceHandler) save(c *fiber.Ctx, in dto.SaveInvoiceRequest) error {
	inv, err := h.uc.Save(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "invoice number already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromInvoice(inv))
}

// GetByID returns one invoice.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(inv))
}

// UpdateStatus sets the invoice status.
// PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	inv, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.JSON(dto.FromInvoice(inv))
}

// Delete removes the invoice permanently.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats returns the dashboard summary.
// GET /api/invoices/stats
func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.JSON(stats)
}

// DownloadPDF renders the invoice and streams it as an attachment named
// <invoice number>.pdf.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	doc, filename, err := h.pdfUC.Download(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		if errors.Is(err, domain.ErrRenderFailed) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// Send emails the selected invoices as PDF attachments.
// POST /api/invoices/send
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	var in dto.SendInvoicesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	messageID, err := h.sendUC.SendInvoices(c.Context(), in.To, in.Subject, in.Body, in.InvoiceIDs)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrRenderFailed) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDispatchFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DISPATCH", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.JSON(dto.SendResponse{Success: true, MessageID: messageID})
}

// ServiceCatalogue returns the stock landscaping services with default rates.
// GET /api/services
func ServiceCatalogue(c *fiber.Ctx) error {
	catalogue := entity.DefaultServices()
	out := make([]dto.ServiceCatalogueResponse, 0, len(catalogue))
	for _, s := range catalogue {
		out = append(out, dto.ServiceCatalogueResponse{Service: s.Service, Description: s.Description, Rate: s.Rate})
	}
	return c.JSON(out)
}
