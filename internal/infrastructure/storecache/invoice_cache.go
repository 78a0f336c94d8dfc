// Package storecache wraps an InvoiceRepository with a read-through cache.
// The cache is an explicit object passed to consumers, invalidated on every
// write and refreshable on demand; there is no ambient shared state.
package storecache

import (
	"context"
	"sync"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
	"github.com/mazzari/invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceCache)(nil)

// InvoiceCache decorates an InvoiceRepository. FetchAll is served from the
// cache once warm; Upsert and Delete write through and invalidate. Reads hand
// out clones, so a caller mutating a fetched invoice never edits cached state,
// and a failed write also invalidates: the cache must never report a state the
// durable store did not accept.
type InvoiceCache struct {
	inner repository.InvoiceRepository

	mu    sync.RWMutex
	list  []*entity.Invoice
	byID  map[string]*entity.Invoice
	valid bool
}

// New wraps inner with an empty (cold) cache.
func New(inner repository.InvoiceRepository) *InvoiceCache {
	return &InvoiceCache{inner: inner}
}

// Upsert writes through. The cache is invalidated on success and on failure
// alike; after a rejected write the next read must see the store's state.
func (c *InvoiceCache) Upsert(ctx context.Context, inv *entity.Invoice) error {
	err := c.inner.Upsert(ctx, inv)
	c.Invalidate()
	return err
}

// FetchAll returns the cached list when warm, loading from the inner store
// otherwise.
func (c *InvoiceCache) FetchAll(ctx context.Context) ([]*entity.Invoice, error) {
	c.mu.RLock()
	if c.valid {
		list := cloneList(c.list)
		c.mu.RUnlock()
		return list, nil
	}
	c.mu.RUnlock()
	list, err := c.reload(ctx)
	if err != nil {
		return nil, err
	}
	return cloneList(list), nil
}

// FetchOne serves from the warm cache; a cold cache or a cache miss falls
// through to the inner store.
func (c *InvoiceCache) FetchOne(ctx context.Context, id string) (*entity.Invoice, error) {
	c.mu.RLock()
	if c.valid {
		if inv, ok := c.byID[id]; ok {
			clone := inv.Clone()
			c.mu.RUnlock()
			return &clone, nil
		}
		c.mu.RUnlock()
		return nil, nil
	}
	c.mu.RUnlock()
	return c.inner.FetchOne(ctx, id)
}

// Delete writes through and invalidates, on success and failure alike.
func (c *InvoiceCache) Delete(ctx context.Context, id string) error {
	err := c.inner.Delete(ctx, id)
	c.Invalidate()
	return err
}

// Refresh drops the cache and reloads it from the inner store.
func (c *InvoiceCache) Refresh(ctx context.Context) error {
	c.Invalidate()
	_, err := c.reload(ctx)
	return err
}

// Invalidate marks the cache cold; the next read reloads.
func (c *InvoiceCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.list = nil
	c.byID = nil
	c.mu.Unlock()
}

func (c *InvoiceCache) reload(ctx context.Context) ([]*entity.Invoice, error) {
	list, err := c.inner.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Invoice, len(list))
	for _, inv := range list {
		byID[inv.ID] = inv
	}
	c.mu.Lock()
	c.list = list
	c.byID = byID
	c.valid = true
	c.mu.Unlock()
	return list, nil
}

func cloneList(list []*entity.Invoice) []*entity.Invoice {
	out := make([]*entity.Invoice, len(list))
	for i, inv := range list {
		c := inv.Clone()
		out[i] = &c
	}
	return out
}
