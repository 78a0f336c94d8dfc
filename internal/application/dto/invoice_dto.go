package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// DateLayout is the wire format for calendar dates (issue/due dates).
const DateLayout = "2006-01-02"

// ServiceItemPayload is one service line on the wire (camelCase, as the
// in-memory model; the store's lowercase transform lives elsewhere).
type ServiceItemPayload struct {
	ID          string          `json:"id,omitempty"`
	Service     string          `json:"service"`
	Description string          `json:"description,omitempty"`
	Dates       []time.Time     `json:"dates,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
}

// ClientInfoPayload is the bill-to block on the wire.
type ClientInfoPayload struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// BusinessInfoPayload is the business settings block on the wire.
type BusinessInfoPayload struct {
	ID                int    `json:"id,omitempty"`
	BusinessName      string `json:"businessName"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	ABN               string `json:"abn,omitempty"`
	LogoURL           string `json:"logoUrl,omitempty"`
	BankAccountNumber string `json:"bankAccountNumber,omitempty"`
	BankBSB           string `json:"bankBSB,omitempty"`
}

// SaveInvoiceRequest creates or replaces an invoice. Derived fields
// (item totals, subtotal, GST amount, total, due date unless overridden) are
// recomputed server-side on every save and cannot be supplied.
type SaveInvoiceRequest struct {
	ID            string               `json:"id,omitempty"`
	InvoiceNumber string               `json:"invoiceNumber,omitempty"` // generated when empty
	IssueDate     string               `json:"issueDate"`               // YYYY-MM-DD
	DueDate       string               `json:"dueDate,omitempty"`       // manual override; derived from terms when empty
	PaymentTerms  string               `json:"paymentTerms,omitempty"`
	Status        string               `json:"status,omitempty"` // defaults to draft
	ClientInfo    ClientInfoPayload    `json:"clientInfo"`
	Items         []ServiceItemPayload `json:"items"`
	Discount      decimal.Decimal      `json:"discount"`
	DiscountType  string               `json:"discountType,omitempty"` // defaults to percentage
	GSTEnabled    bool                 `json:"gstEnabled"`
	GSTRate       *decimal.Decimal     `json:"gstRate,omitempty"` // defaults to 10
	Notes         string               `json:"notes,omitempty"`
}

// UpdateStatusRequest sets an invoice's status (manual override allowed to
// any of the four states).
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SendInvoicesRequest emails the selected invoices as PDF attachments.
type SendInvoicesRequest struct {
	To         string   `json:"to"`
	Body       string   `json:"body"`
	Subject    string   `json:"subject,omitempty"`
	InvoiceIDs []string `json:"invoiceIds"`
}

// SendResponse reports a successful dispatch.
type SendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// InvoiceResponse is the full invoice on the wire.
type InvoiceResponse struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	IssueDate     string               `json:"issueDate"`
	DueDate       string               `json:"dueDate"`
	PaymentTerms  string               `json:"paymentTerms"`
	Status        string               `json:"status"`
	BusinessInfo  BusinessInfoPayload  `json:"businessInfo"`
	ClientInfo    ClientInfoPayload    `json:"clientInfo"`
	Items         []ServiceItemPayload `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Discount      decimal.Decimal      `json:"discount"`
	DiscountType  string               `json:"discountType"`
	GSTEnabled    bool                 `json:"gstEnabled"`
	GSTRate       decimal.Decimal      `json:"gstRate"`
	GSTAmount     decimal.Decimal      `json:"gstAmount"`
	Total         decimal.Decimal      `json:"total"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// StatsResponse is the dashboard summary over all invoices.
type StatsResponse struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	Paid         decimal.Decimal `json:"paid"`
	Pending      decimal.Decimal `json:"pending"`
	OverdueCount int             `json:"overdueCount"`
}

// ServiceCatalogueResponse is one stock service offered by the builder.
type ServiceCatalogueResponse struct {
	Service     string          `json:"service"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
}

// FromInvoice maps an entity to its wire representation.
func FromInvoice(inv *entity.Invoice) InvoiceResponse {
	items := make([]ServiceItemPayload, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, ServiceItemPayload{
			ID:          it.ID,
			Service:     it.Service,
			Description: it.Description,
			Dates:       it.Dates,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Total:       it.Total,
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(DateLayout),
		DueDate:       inv.DueDate.Format(DateLayout),
		PaymentTerms:  inv.PaymentTerms,
		Status:        inv.Status,
		BusinessInfo:  FromBusinessInfo(&inv.BusinessInfo),
		ClientInfo: ClientInfoPayload{
			ID:      inv.ClientInfo.ID,
			Name:    inv.ClientInfo.Name,
			Email:   inv.ClientInfo.Email,
			Phone:   inv.ClientInfo.Phone,
			Address: inv.ClientInfo.Address,
		},
		Items:        items,
		Subtotal:     inv.Subtotal,
		Discount:     inv.Discount,
		DiscountType: inv.DiscountType,
		GSTEnabled:   inv.GSTEnabled,
		GSTRate:      inv.GSTRate,
		GSTAmount:    inv.GSTAmount,
		Total:        inv.Total,
		Notes:        inv.Notes,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

// FromBusinessInfo maps the settings entity to its wire representation.
func FromBusinessInfo(info *entity.BusinessInfo) BusinessInfoPayload {
	return BusinessInfoPayload{
		ID:                info.ID,
		BusinessName:      info.BusinessName,
		Email:             info.Email,
		Phone:             info.Phone,
		Address:           info.Address,
		ABN:               info.ABN,
		LogoURL:           info.LogoURL,
		BankAccountNumber: info.BankAccountNumber,
		BankBSB:           info.BankBSB,
	}
}

// ToBusinessInfo maps the wire payload back to the entity.
func (p BusinessInfoPayload) ToBusinessInfo() entity.BusinessInfo {
	return entity.BusinessInfo{
		ID:                entity.BusinessInfoID,
		BusinessName:      p.BusinessName,
		Email:             p.Email,
		Phone:             p.Phone,
		Address:           p.Address,
		ABN:               p.ABN,
		LogoURL:           p.LogoURL,
		BankAccountNumber: p.BankAccountNumber,
		BankBSB:           p.BankBSB,
	}
}
