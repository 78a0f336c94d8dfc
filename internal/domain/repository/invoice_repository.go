package repository

import (
	"context"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// InvoiceRepository is the narrow record-store contract the application
// depends on: at most one record per id, whole-record upsert, hard delete.
// Implementations: postgres (hosted backend) and memstore (local fallback).
type InvoiceRepository interface {
	Upsert(ctx context.Context, invoice *entity.Invoice) error
	FetchAll(ctx context.Context) ([]*entity.Invoice, error)
	// FetchOne returns (nil, nil) when no record has the given id.
	FetchOne(ctx context.Context, id string) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
}
