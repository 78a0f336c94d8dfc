// Package settings manages the single business settings record shown on
// every invoice.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/mazzari/invoicing-api/internal/application/dto"
	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

// UseCase reads and writes the singleton business settings.
type UseCase struct {
	business repository.BusinessRepository
}

// NewUseCase builds the use case.
func NewUseCase(business repository.BusinessRepository) *UseCase {
	return &UseCase{business: business}
}

// Get returns the stored settings, or the built-in defaults when nothing has
// been saved yet.
func (uc *UseCase) Get(ctx context.Context) (*entity.BusinessInfo, error) {
	info, err := uc.business.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load business settings: %v", domain.ErrStoreFailed, err)
	}
	if info == nil {
		return entity.DefaultBusinessInfo(), nil
	}
	return info, nil
}

// Save replaces the settings record. Invoices saved earlier keep their frozen
// snapshot; only future saves pick up the new details.
func (uc *UseCase) Save(ctx context.Context, req dto.BusinessInfoPayload) (*entity.BusinessInfo, error) {
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business name is required", domain.ErrValidation)
	}
	info := req.ToBusinessInfo()
	if err := uc.business.Save(ctx, &info); err != nil {
		return nil, fmt.Errorf("%w: save business settings: %v", domain.ErrStoreFailed, err)
	}
	return &info, nil
}
