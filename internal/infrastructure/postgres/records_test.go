package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// The hosted backend stores every key lowercase. The record layer must keep
// the transform lossless in both directions, nested visit dates included.
func TestItemRecords_RoundTrip(t *testing.T) {
	visits := []time.Time{
		time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 18, 9, 0, 0, 0, time.UTC),
	}
	items := []entity.ServiceItem{{
		ID:          "it-1",
		Service:     "Hedge Trimming",
		Description: "Hedge and shrub trimming",
		Dates:       visits,
		Quantity:    decimal.NewFromInt(2),
		Rate:        decimal.NewFromInt(85),
		Total:       decimal.NewFromInt(170),
	}}

	recs := toItemRecords(items)
	raw, err := json.Marshal(recs)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"service"`)
	assert.Contains(t, string(raw), `"dates"`)

	var decoded []serviceItemRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	back, err := fromItemRecords(decoded)
	require.NoError(t, err)

	require.Len(t, back, 1)
	assert.Equal(t, items[0].ID, back[0].ID)
	assert.Equal(t, items[0].Service, back[0].Service)
	assert.Equal(t, visits, back[0].Dates)
	assert.True(t, back[0].Quantity.Equal(items[0].Quantity))
	assert.True(t, back[0].Rate.Equal(items[0].Rate))
	assert.True(t, back[0].Total.Equal(items[0].Total))
}

func TestBusinessRecord_LowercaseKeys(t *testing.T) {
	info := entity.BusinessInfo{
		ID:                entity.BusinessInfoID,
		BusinessName:      "Mazzari Landscape Management",
		Email:             "info@mazzarilandscape.com.au",
		BankAccountNumber: "12345678",
		BankBSB:           "064-000",
	}

	raw, err := json.Marshal(toBusinessRecord(info))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"businessname"`)
	assert.Contains(t, string(raw), `"bankaccountnumber"`)
	assert.Contains(t, string(raw), `"bankbsb"`)
	assert.NotContains(t, string(raw), `"businessName"`)

	var rec businessInfoRecord
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, info, fromBusinessRecord(rec))
}

func TestFromItemRecords_BadDate(t *testing.T) {
	_, err := fromItemRecords([]serviceItemRecord{{ID: "x", Dates: []string{"not-a-date"}}})
	assert.Error(t, err)
}
