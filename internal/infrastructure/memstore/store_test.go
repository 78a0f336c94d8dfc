package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/billing"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/infrastructure/memstore"
)

func sampleInvoice(id string, createdAt time.Time) *entity.Invoice {
	items := []entity.ServiceItem{{
		ID:       "it-1",
		Service:  "Garden Clean Up",
		Dates:    []time.Time{time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)},
		Quantity: decimal.NewFromInt(2),
		Rate:     decimal.NewFromInt(120),
		Total:    decimal.NewFromInt(240),
	}}
	totals := billing.ComputeTotals(items, decimal.NewFromInt(10), entity.DiscountPercentage, true, decimal.NewFromInt(10))
	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: "INV-TEST-" + id,
		IssueDate:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		PaymentTerms:  billing.TermNet14,
		Status:        entity.StatusDraft,
		ClientInfo:    entity.ClientInfo{Name: "Strata Plan 1234", Email: "strata@example.com"},
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      decimal.NewFromInt(10),
		DiscountType:  entity.DiscountPercentage,
		GSTEnabled:    true,
		GSTRate:       decimal.NewFromInt(10),
		GSTAmount:     totals.GSTAmount,
		Total:         totals.Total,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

// Round-trip: a saved invoice fetched back must carry derived financial
// fields that match a fresh ComputeTotals over its stored items/parameters.
func TestStore_UpsertFetchRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	inv := sampleInvoice("a", time.Now())

	require.NoError(t, s.Upsert(ctx, inv))

	got, err := s.FetchOne(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)

	fresh := billing.ComputeTotals(got.Items, got.Discount, got.DiscountType, got.GSTEnabled, got.GSTRate)
	assert.True(t, got.Subtotal.Equal(fresh.Subtotal))
	assert.True(t, got.GSTAmount.Equal(fresh.GSTAmount))
	assert.True(t, got.Total.Equal(fresh.Total))
	assert.Equal(t, inv.Items[0].Dates, got.Items[0].Dates)
}

func TestStore_FetchOneMissing(t *testing.T) {
	got, err := memstore.New().FetchOne(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_UpsertReplacesById(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	inv := sampleInvoice("a", time.Now())
	require.NoError(t, s.Upsert(ctx, inv))

	inv.Status = entity.StatusPaid
	require.NoError(t, s.Upsert(ctx, inv))

	all, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "upsert must keep at most one record per id")
	assert.Equal(t, entity.StatusPaid, all[0].Status)
}

// The invoice number carries the same uniqueness guarantee as the database
// constraint: a second record reusing an existing number is rejected.
func TestStore_UpsertRejectsDuplicateInvoiceNumber(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	require.NoError(t, s.Upsert(ctx, sampleInvoice("a", time.Now())))

	dup := sampleInvoice("b", time.Now())
	dup.InvoiceNumber = "INV-TEST-a"
	err := s.Upsert(ctx, dup)

	require.ErrorIs(t, err, domain.ErrDuplicate)
	got, ferr := s.FetchOne(ctx, "b")
	require.NoError(t, ferr)
	assert.Nil(t, got, "rejected record must not be stored")
}

func TestStore_FetchAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	older := sampleInvoice("old", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleInvoice("new", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.Upsert(ctx, older))
	require.NoError(t, s.Upsert(ctx, newer))

	all, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	require.NoError(t, s.Upsert(ctx, sampleInvoice("a", time.Now())))

	require.NoError(t, s.Delete(ctx, "a"))

	got, err := s.FetchOne(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got, "hard delete leaves no record behind")
	assert.NoError(t, s.Delete(ctx, "a"), "deleting a missing id is not an error")
}

func TestStore_CallerCannotMutateStoredState(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	require.NoError(t, s.Upsert(ctx, sampleInvoice("a", time.Now())))

	got, err := s.FetchOne(ctx, "a")
	require.NoError(t, err)
	got.Items[0].Service = "tampered"

	again, err := s.FetchOne(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Garden Clean Up", again.Items[0].Service)
}

func TestStore_BusinessInfoSingleton(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	got, err := s.Fetch(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	info := entity.DefaultBusinessInfo()
	info.ABN = "51 824 753 556"
	require.NoError(t, s.Save(ctx, info))

	got, err = s.Fetch(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.BusinessInfoID, got.ID)
	assert.Equal(t, "51 824 753 556", got.ABN)
}
