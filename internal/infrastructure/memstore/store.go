// Package memstore is the local fallback record store: the same
// at-most-one-record-per-id contract as the postgres adapter, held in memory.
// Used when STORE_DRIVER=memory (dev, demos, offline work). Nothing survives
// a restart.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mazzari/invoicing-api/internal/domain"
	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository  = (*Store)(nil)
	_ repository.BusinessRepository = (*Store)(nil)
)

// Store holds invoices and the business settings row in memory.
type Store struct {
	mu       sync.RWMutex
	invoices map[string]entity.Invoice
	business *entity.BusinessInfo
}

// New builds an empty store.
func New() *Store {
	return &Store{invoices: make(map[string]entity.Invoice)}
}

// Upsert inserts or replaces the record with the invoice's id. The invoice
// number must stay unique across records, matching the database constraint.
func (s *Store) Upsert(_ context.Context, inv *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.invoices {
		if id != inv.ID && existing.InvoiceNumber == inv.InvoiceNumber {
			return fmt.Errorf("%w: invoice number %s", domain.ErrDuplicate, inv.InvoiceNumber)
		}
	}
	s.invoices[inv.ID] = inv.Clone()
	return nil
}

// FetchAll returns every invoice, newest first (by CreatedAt).
func (s *Store) FetchAll(_ context.Context) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		c := inv.Clone()
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// FetchOne returns the invoice with the given id, or nil when absent.
func (s *Store) FetchOne(_ context.Context, id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	c := inv.Clone()
	return &c, nil
}

// Delete removes the invoice. Deleting a missing id is not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.invoices, id)
	return nil
}

// Fetch returns the business settings, or nil when never saved.
func (s *Store) Fetch(_ context.Context) (*entity.BusinessInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.business == nil {
		return nil, nil
	}
	c := *s.business
	return &c, nil
}

// Save stores the business settings row.
func (s *Store) Save(_ context.Context, info *entity.BusinessInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *info
	c.ID = entity.BusinessInfoID
	s.business = &c
	return nil
}
