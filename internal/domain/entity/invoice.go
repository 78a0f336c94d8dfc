package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states. Normal flow is draft → sent → paid (or overdue),
// but a manual override to any status is allowed.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// ValidStatus reports whether s is one of the four invoice states.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Discount interpretation for Invoice.Discount.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// ServiceItem is one billable service line: a named service with an optional
// description, the scheduled visit dates, and quantity × rate pricing.
// Total is always derived from Quantity and Rate, never stored authoritatively.
type ServiceItem struct {
	ID          string
	Service     string
	Description string
	Dates       []time.Time
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Total       decimal.Decimal
}

// Invoice is the invoice header plus its service lines. BusinessInfo and
// ClientInfo are frozen snapshots taken at save time; editing the business
// settings later does not change previously saved invoices.
type Invoice struct {
	ID            string
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	PaymentTerms  string
	Status        string
	BusinessInfo  BusinessInfo
	ClientInfo    ClientInfo
	Items         []ServiceItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	DiscountType  string
	GSTEnabled    bool
	GSTRate       decimal.Decimal
	GSTAmount     decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone copies the invoice deeply enough that mutating the copy (or its items
// and visit dates) never touches the original. Stores hand out clones so
// callers cannot edit shared state in place.
func (inv Invoice) Clone() Invoice {
	items := make([]ServiceItem, len(inv.Items))
	copy(items, inv.Items)
	for i := range items {
		if len(items[i].Dates) > 0 {
			dates := make([]time.Time, len(items[i].Dates))
			copy(dates, items[i].Dates)
			items[i].Dates = dates
		}
	}
	inv.Items = items
	return inv
}
