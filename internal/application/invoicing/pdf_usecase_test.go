package invoicing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzari/invoicing-api/internal/application/invoicing"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/infrastructure/memstore"
)

func TestDownload_ReturnsBytesAndFilename(t *testing.T) {
	store := memstore.New()
	uc := invoicing.NewPDFUseCase(store, &fakeRenderer{})
	storedInvoice(store, "a", "INV-20240301-XYZ", entity.StatusSent)

	doc, filename, err := uc.Download(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF INV-20240301-XYZ"), doc)
	assert.Equal(t, "INV-20240301-XYZ.pdf", filename, "filename is always <invoice number>.pdf")
}

func TestDownload_Unknown(t *testing.T) {
	store := memstore.New()
	uc := invoicing.NewPDFUseCase(store, &fakeRenderer{})

	_, _, err := uc.Download(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownload_RenderFailure(t *testing.T) {
	store := memstore.New()
	uc := invoicing.NewPDFUseCase(store, &fakeRenderer{fail: true})
	storedInvoice(store, "a", "INV-A", entity.StatusSent)

	_, _, err := uc.Download(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}
