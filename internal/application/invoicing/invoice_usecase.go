// Package invoicing implements the application operations on invoices:
// save with server-side recomputation of derived fields, fetch, search,
// status updates, deletion, dashboard stats, PDF export and email dispatch.
package invoicing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mazzari/invoicing-api/internal/application/dto"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/billing"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

var defaultGSTRate = decimal.NewFromInt(10)

// InvoiceUseCase coordinates invoice persistence and the derived-field rules.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	business repository.BusinessRepository
}

// NewInvoiceUseCase builds the use case over the given stores.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, business repository.BusinessRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, business: business}
}

// Save validates the request, recomputes every derived field (line totals,
// subtotal, GST, total, due date unless overridden), freezes the current
// business settings into the invoice and upserts the record. Identifiers and
// the invoice number are generated when absent, so the same entry point
// serves create and full-record update.
func (uc *InvoiceUseCase) Save(ctx context.Context, req dto.SaveInvoiceRequest) (*entity.Invoice, error) {
	if strings.TrimSpace(req.ClientInfo.Name) == "" {
		return nil, fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one service line is required", domain.ErrValidation)
	}

	issueDate, err := time.Parse(dto.DateLayout, req.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: issueDate must be %s", domain.ErrValidation, dto.DateLayout)
	}

	status := req.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, req.Status)
	}

	discountType := req.DiscountType
	if discountType == "" {
		discountType = entity.DiscountPercentage
	}
	if discountType != entity.DiscountPercentage && discountType != entity.DiscountFixed {
		return nil, fmt.Errorf("%w: unknown discount type %q", domain.ErrValidation, req.DiscountType)
	}

	gstRate := defaultGSTRate
	if req.GSTRate != nil {
		gstRate = *req.GSTRate
	}

	items := make([]entity.ServiceItem, 0, len(req.Items))
	for _, p := range req.Items {
		item := entity.ServiceItem{
			ID:          p.ID,
			Service:     p.Service,
			Description: p.Description,
			Dates:       p.Dates,
			Quantity:    p.Quantity,
			Rate:        p.Rate,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.Total = billing.LineTotal(item)
		items = append(items, item)
	}

	totals := billing.ComputeTotals(items, req.Discount, discountType, req.GSTEnabled, gstRate)

	terms := req.PaymentTerms
	if terms == "" {
		terms = billing.TermNet14
	}
	dueDate := billing.ResolveDueDate(issueDate, terms)
	if req.DueDate != "" {
		dueDate, err = time.Parse(dto.DateLayout, req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dueDate must be %s", domain.ErrValidation, dto.DateLayout)
		}
	}

	biz, err := uc.business.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load business settings: %v", domain.ErrStoreFailed, err)
	}
	if biz == nil {
		biz = entity.DefaultBusinessInfo()
	}

	now := time.Now().UTC()
	inv := &entity.Invoice{
		ID:            req.ID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		PaymentTerms:  terms,
		Status:        status,
		BusinessInfo:  *biz,
		ClientInfo: entity.ClientInfo{
			ID:      req.ClientInfo.ID,
			Name:    strings.TrimSpace(req.ClientInfo.Name),
			Email:   req.ClientInfo.Email,
			Phone:   req.ClientInfo.Phone,
			Address: req.ClientInfo.Address,
		},
		Items:        items,
		Subtotal:     totals.Subtotal,
		Discount:     req.Discount,
		DiscountType: discountType,
		GSTEnabled:   req.GSTEnabled,
		GSTRate:      gstRate,
		GSTAmount:    totals.GSTAmount,
		Total:        totals.Total,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if inv.ID == "" {
		inv.ID = uuid.NewString()
	} else {
		existing, err := uc.invoices.FetchOne(ctx, inv.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: load existing invoice: %v", domain.ErrStoreFailed, err)
		}
		if existing != nil {
			inv.CreatedAt = existing.CreatedAt
		}
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = billing.GenerateInvoiceNumber()
	}

	if err := uc.invoices.Upsert(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: save invoice: %v", domain.ErrStoreFailed, err)
	}
	return inv, nil
}

// Get returns one invoice by id.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoices.FetchOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch invoice: %v", domain.ErrStoreFailed, err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice %s", domain.ErrNotFound, id)
	}
	return inv, nil
}

// List returns all invoices newest-first. A non-empty query filters by
// case-insensitive substring match on invoice number, client name and
// client email.
func (uc *InvoiceUseCase) List(ctx context.Context, query string) ([]*entity.Invoice, error) {
	all, err := uc.invoices.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices: %v", domain.ErrStoreFailed, err)
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}
	matched := make([]*entity.Invoice, 0, len(all))
	for _, inv := range all {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), query) ||
			strings.Contains(strings.ToLower(inv.ClientInfo.Name), query) ||
			strings.Contains(strings.ToLower(inv.ClientInfo.Email), query) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

// UpdateStatus sets the invoice status. Any of the four states may be set
// manually, independent of the usual draft → sent → paid flow.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Invoice, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	inv, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Status = status
	inv.UpdatedAt = time.Now().UTC()
	if err := uc.invoices.Upsert(ctx, inv); err != nil {
		return nil, fmt.Errorf("%w: update status: %v", domain.ErrStoreFailed, err)
	}
	return inv, nil
}

// Delete removes the invoice permanently. Deleting an unknown id fails with
// a not-found error so the caller can report it.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete invoice: %v", domain.ErrStoreFailed, err)
	}
	return nil
}

// Stats summarises the ledger for the dashboard: paid sums paid invoices,
// pending sums drafts and sent invoices, and the overdue count covers records
// whose status is overdue. Due dates do not reclassify anything here; a sent
// invoice past its due date stays pending until its status is updated.
func (uc *InvoiceUseCase) Stats(ctx context.Context) (dto.StatsResponse, error) {
	all, err := uc.invoices.FetchAll(ctx)
	if err != nil {
		return dto.StatsResponse{}, fmt.Errorf("%w: load invoices: %v", domain.ErrStoreFailed, err)
	}

	stats := dto.StatsResponse{
		TotalRevenue: decimal.Zero,
		Paid:         decimal.Zero,
		Pending:      decimal.Zero,
	}
	for _, inv := range all {
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
		switch inv.Status {
		case entity.StatusPaid:
			stats.Paid = stats.Paid.Add(inv.Total)
		case entity.StatusDraft, entity.StatusSent:
			stats.Pending = stats.Pending.Add(inv.Total)
		case entity.StatusOverdue:
			stats.OverdueCount++
		}
	}
	return stats, nil
}
