package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzari/invoicing-api/internal/application/dto"
	"github.com/mazzari/invoicing-api/internal/application/settings"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/infrastructure/memstore"
)

func TestGet_DefaultsWhenNeverSaved(t *testing.T) {
	uc := settings.NewUseCase(memstore.New())

	info, err := uc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Mazzari Landscape Management", info.BusinessName)
	assert.Equal(t, entity.BusinessInfoID, info.ID)
}

func TestSave_RoundTrip(t *testing.T) {
	uc := settings.NewUseCase(memstore.New())
	ctx := context.Background()

	saved, err := uc.Save(ctx, dto.BusinessInfoPayload{
		BusinessName:      "Green Acres Pty Ltd",
		Email:             "accounts@greenacres.com.au",
		ABN:               "51 824 753 556",
		BankBSB:           "064-000",
		BankAccountNumber: "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessInfoID, saved.ID, "settings row id is fixed")

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres Pty Ltd", got.BusinessName)
	assert.Equal(t, "064-000", got.BankBSB)
}

func TestSave_NameRequired(t *testing.T) {
	uc := settings.NewUseCase(memstore.New())

	_, err := uc.Save(context.Background(), dto.BusinessInfoPayload{BusinessName: "  "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
