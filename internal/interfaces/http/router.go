package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/application/settings"
)

// RouterDeps holds the use cases the router wires into handlers.
type RouterDeps struct {
	InvoiceUC  *invoicing.InvoiceUseCase
	PDFUC      *invoicing.PDFUseCase
	SendUC     *invoicing.SendUseCase
	SettingsUC *settings.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, deps.SendUC)
	// Fixed paths before /:id so "stats" and "send" never match as ids.
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Post("/send", invoiceHandler.Send)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Save)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.SaveByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Delete("/:id", invoiceHandler.Delete)

	business := api.Group("/business")
	businessHandler := NewBusinessHandler(deps.SettingsUC)
	business.Get("/", businessHandler.Get)
	business.Put("/", businessHandler.Update)

	api.Get("/services", ServiceCatalogue)

	// Multipart relay used by mail clients that already hold the PDFs.
	mailHandler := NewMailHandler(deps.SendUC)
	api.Post("/send-invoices", mailHandler.SendMultipart)
}
