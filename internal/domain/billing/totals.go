// Package billing holds the pure invoice arithmetic: line totals, the
// subtotal/discount/GST/total breakdown, due-date resolution from payment
// terms, and invoice number generation. Nothing here touches storage or I/O.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals is the derived financial breakdown of an invoice.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	GSTAmount      decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals derives the financial fields from the service lines and
// adjustment parameters. The subtotal is always recomputed from quantity×rate,
// not read from the possibly stale stored item totals.
//
// A fixed discount is applied verbatim, never clamped: a discount larger than
// the subtotal yields a negative after-discount amount, which is accepted and
// round-trips as-is. There are no error conditions; zero items produce an
// all-zero breakdown.
func ComputeTotals(items []entity.ServiceItem, discount decimal.Decimal, discountType string, gstEnabled bool, gstRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Quantity.Mul(item.Rate))
	}

	discountAmount := discount
	if discountType == entity.DiscountPercentage {
		discountAmount = subtotal.Mul(discount).Div(hundred)
	}

	afterDiscount := subtotal.Sub(discountAmount)

	gstAmount := decimal.Zero
	if gstEnabled {
		gstAmount = afterDiscount.Mul(gstRate).Div(hundred)
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		GSTAmount:      gstAmount,
		Total:          afterDiscount.Add(gstAmount),
	}
}

// LineTotal is the derived total of a single service line.
func LineTotal(item entity.ServiceItem) decimal.Decimal {
	return item.Quantity.Mul(item.Rate)
}
