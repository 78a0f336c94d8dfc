package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzari/invoicing-api/internal/domain/billing"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

func item(qty, rate float64) entity.ServiceItem {
	return entity.ServiceItem{
		Quantity: decimal.NewFromFloat(qty),
		Rate:     decimal.NewFromFloat(rate),
	}
}

// TestComputeTotals_ReferenceVector checks the full breakdown against a
// hand-calculated invoice: three lines, 10% discount, 10% GST.
//
//	subtotal       = 2×100 + 1×50 + 3×20 = 310
//	discountAmount = 310 × 10% = 31
//	gstAmount      = (310 − 31) × 10% = 27.9
//	total          = 310 − 31 + 27.9 = 306.9
func TestComputeTotals_ReferenceVector(t *testing.T) {
	items := []entity.ServiceItem{item(2, 100), item(1, 50), item(3, 20)}

	got := billing.ComputeTotals(items, decimal.NewFromInt(10), entity.DiscountPercentage, true, decimal.NewFromInt(10))

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(310)), "subtotal = %s", got.Subtotal)
	assert.True(t, got.DiscountAmount.Equal(decimal.NewFromInt(31)), "discountAmount = %s", got.DiscountAmount)
	assert.True(t, got.GSTAmount.Equal(decimal.NewFromFloat(27.9)), "gstAmount = %s", got.GSTAmount)
	assert.True(t, got.Total.Equal(decimal.NewFromFloat(306.9)), "total = %s", got.Total)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	got := billing.ComputeTotals(nil, decimal.Zero, entity.DiscountPercentage, true, decimal.NewFromInt(10))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.GSTAmount.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestComputeTotals_NoAdjustments(t *testing.T) {
	items := []entity.ServiceItem{item(4, 25.5), item(2, 13)}

	got := billing.ComputeTotals(items, decimal.Zero, entity.DiscountFixed, false, decimal.Zero)

	assert.True(t, got.Total.Equal(got.Subtotal), "with no discount and no GST, total must equal subtotal")
	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(128)))
}

// TestComputeTotals_OrderIndependent: the subtotal is a sum of pairwise
// products, so reordering the lines must not change any derived field.
func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := []entity.ServiceItem{item(2, 100), item(1, 50), item(3, 20)}
	b := []entity.ServiceItem{item(3, 20), item(2, 100), item(1, 50)}

	ta := billing.ComputeTotals(a, decimal.NewFromInt(5), entity.DiscountPercentage, true, decimal.NewFromInt(10))
	tb := billing.ComputeTotals(b, decimal.NewFromInt(5), entity.DiscountPercentage, true, decimal.NewFromInt(10))

	assert.True(t, ta.Subtotal.Equal(tb.Subtotal))
	assert.True(t, ta.Total.Equal(tb.Total))
}

// TestComputeTotals_FixedDiscountNotClamped: a fixed discount larger than the
// subtotal produces a negative total. That is a valid state and must come back
// verbatim rather than clamped to zero.
func TestComputeTotals_FixedDiscountNotClamped(t *testing.T) {
	items := []entity.ServiceItem{item(1, 50)}

	got := billing.ComputeTotals(items, decimal.NewFromInt(80), entity.DiscountFixed, false, decimal.Zero)

	assert.True(t, got.DiscountAmount.Equal(decimal.NewFromInt(80)), "fixed discount must pass through verbatim")
	assert.True(t, got.Total.Equal(decimal.NewFromInt(-30)), "total = %s", got.Total)
}

// TestComputeTotals_IgnoresStaleStoredTotals: the stored item total is never
// trusted; only quantity × rate counts.
func TestComputeTotals_IgnoresStaleStoredTotals(t *testing.T) {
	stale := item(2, 100)
	stale.Total = decimal.NewFromInt(999)

	got := billing.ComputeTotals([]entity.ServiceItem{stale}, decimal.Zero, entity.DiscountFixed, false, decimal.Zero)

	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(200)))
}

func TestLineTotal(t *testing.T) {
	got := billing.LineTotal(item(3, 20.5))
	require.True(t, got.Equal(decimal.NewFromFloat(61.5)), "line total = %s", got)
}
