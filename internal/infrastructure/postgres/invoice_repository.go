package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements repository.InvoiceRepository over PostgreSQL.
// The nested business/client/items structures live in jsonb columns with
// lowercase field names (see records.go).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, invoicenumber, issuedate, duedate, paymentterms, status,
	businessinfo, clientinfo, items,
	subtotal, discount, discounttype, gstenabled, gstrate, gstamount, total,
	COALESCE(notes, ''), createdat, updatedat`

// Upsert inserts the invoice or replaces the existing record with the same id.
func (r *InvoiceRepo) Upsert(ctx context.Context, inv *entity.Invoice) error {
	businessJSON, err := json.Marshal(toBusinessRecord(inv.BusinessInfo))
	if err != nil {
		return fmt.Errorf("encode business info: %w", err)
	}
	clientJSON, err := json.Marshal(toClientRecord(inv.ClientInfo))
	if err != nil {
		return fmt.Errorf("encode client info: %w", err)
	}
	itemsJSON, err := json.Marshal(toItemRecords(inv.Items))
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	query := `
		INSERT INTO invoices (
			id, invoicenumber, issuedate, duedate, paymentterms, status,
			businessinfo, clientinfo, items,
			subtotal, discount, discounttype, gstenabled, gstrate, gstamount, total,
			notes, createdat, updatedat
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			invoicenumber = EXCLUDED.invoicenumber,
			issuedate     = EXCLUDED.issuedate,
			duedate       = EXCLUDED.duedate,
			paymentterms  = EXCLUDED.paymentterms,
			status        = EXCLUDED.status,
			businessinfo  = EXCLUDED.businessinfo,
			clientinfo    = EXCLUDED.clientinfo,
			items         = EXCLUDED.items,
			subtotal      = EXCLUDED.subtotal,
			discount      = EXCLUDED.discount,
			discounttype  = EXCLUDED.discounttype,
			gstenabled    = EXCLUDED.gstenabled,
			gstrate       = EXCLUDED.gstrate,
			gstamount     = EXCLUDED.gstamount,
			total         = EXCLUDED.total,
			notes         = EXCLUDED.notes,
			updatedat     = EXCLUDED.updatedat`
	_, err = r.q.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.IssueDate, inv.DueDate, inv.PaymentTerms, inv.Status,
		businessJSON, clientJSON, itemsJSON,
		inv.Subtotal, inv.Discount, inv.DiscountType, inv.GSTEnabled, inv.GSTRate, inv.GSTAmount, inv.Total,
		nullIfEmpty(inv.Notes), inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s: %v", domain.ErrDuplicate, inv.InvoiceNumber, err)
		}
		return fmt.Errorf("upsert invoice: %w", err)
	}
	return nil
}

// FetchAll returns every invoice, newest first.
func (r *InvoiceRepo) FetchAll(ctx context.Context) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY createdat DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// FetchOne returns the invoice with the given id, or nil when absent.
func (r *InvoiceRepo) FetchOne(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

// Delete removes the invoice permanently. Deleting a missing id is not an error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// scanInvoice decodes one row in invoiceColumns order.
func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var businessJSON, clientJSON, itemsJSON []byte
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.IssueDate, &inv.DueDate, &inv.PaymentTerms, &inv.Status,
		&businessJSON, &clientJSON, &itemsJSON,
		&inv.Subtotal, &inv.Discount, &inv.DiscountType, &inv.GSTEnabled, &inv.GSTRate, &inv.GSTAmount, &inv.Total,
		&inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	var businessRec businessInfoRecord
	if err := json.Unmarshal(businessJSON, &businessRec); err != nil {
		return nil, fmt.Errorf("decode business info: %w", err)
	}
	inv.BusinessInfo = fromBusinessRecord(businessRec)

	var clientRec clientInfoRecord
	if err := json.Unmarshal(clientJSON, &clientRec); err != nil {
		return nil, fmt.Errorf("decode client info: %w", err)
	}
	inv.ClientInfo = fromClientRecord(clientRec)

	var itemRecs []serviceItemRecord
	if err := json.Unmarshal(itemsJSON, &itemRecs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	items, err := fromItemRecords(itemRecs)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return &inv, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
