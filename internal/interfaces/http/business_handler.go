package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mazzari/invoicing-api/internal/application/dto"
	"github.com/mazzari/invoicing-api/internal/application/settings"
	"github.com/mazzari/invoicing-api/internal/domain"
)

// BusinessHandler serves the business settings endpoints.
type BusinessHandler struct {
	uc *settings.UseCase
}

// NewBusinessHandler builds the handler.
func NewBusinessHandler(uc *settings.UseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get returns the business settings (defaults when never saved).
// GET /api/business
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	info, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.JSON(dto.FromBusinessInfo(info))
}

// Update replaces the business settings. Existing invoices keep their frozen
// snapshot.
// PUT /api/business
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.BusinessInfoPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	info, err := h.uc.Save(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE", Message: err.Error()})
	}
	return c.JSON(dto.FromBusinessInfo(info))
}
