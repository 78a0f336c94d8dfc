package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo persists the singleton business settings row (fixed id).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository builds the adapter. Pass a pool or tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Fetch returns the settings row, or nil when nothing has been saved yet.
func (r *BusinessRepo) Fetch(ctx context.Context) (*entity.BusinessInfo, error) {
	query := `
		SELECT id, businessname, email, phone, address,
		       COALESCE(abn, ''), COALESCE(logourl, ''),
		       COALESCE(bankaccountnumber, ''), COALESCE(bankbsb, '')
		FROM business_info WHERE id = $1`
	var rec businessInfoRecord
	err := r.q.QueryRow(ctx, query, entity.BusinessInfoID).Scan(
		&rec.ID, &rec.BusinessName, &rec.Email, &rec.Phone, &rec.Address,
		&rec.ABN, &rec.LogoURL, &rec.BankAccountNumber, &rec.BankBSB,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business info: %w", err)
	}
	info := fromBusinessRecord(rec)
	return &info, nil
}

// Save upserts the settings row under the fixed singleton id.
func (r *BusinessRepo) Save(ctx context.Context, info *entity.BusinessInfo) error {
	rec := toBusinessRecord(*info)
	query := `
		INSERT INTO business_info (id, businessname, email, phone, address, abn, logourl, bankaccountnumber, bankbsb)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			businessname      = EXCLUDED.businessname,
			email             = EXCLUDED.email,
			phone             = EXCLUDED.phone,
			address           = EXCLUDED.address,
			abn               = EXCLUDED.abn,
			logourl           = EXCLUDED.logourl,
			bankaccountnumber = EXCLUDED.bankaccountnumber,
			bankbsb           = EXCLUDED.bankbsb`
	_, err := r.q.Exec(ctx, query,
		entity.BusinessInfoID, rec.BusinessName, rec.Email, rec.Phone, rec.Address,
		nullIfEmpty(rec.ABN), nullIfEmpty(rec.LogoURL),
		nullIfEmpty(rec.BankAccountNumber), nullIfEmpty(rec.BankBSB),
	)
	if err != nil {
		return fmt.Errorf("save business info: %w", err)
	}
	return nil
}
