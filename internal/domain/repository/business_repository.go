package repository

import (
	"context"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// BusinessRepository persists the singleton business settings row.
type BusinessRepository interface {
	// Fetch returns (nil, nil) when no settings have been saved yet.
	Fetch(ctx context.Context) (*entity.BusinessInfo, error)
	Save(ctx context.Context, info *entity.BusinessInfo) error
}
