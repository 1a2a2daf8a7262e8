package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/pkg/metrics"
)

type entry struct {
	sku       string
	product   *domain.ProductSummary
	expiresAt time.Time
}

// LRUCacheTTL — кэш карточек товаров с вытеснением по LRU и TTL.
// Наружу отдаются копии, чтобы вызывающий код не мутировал кэш.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, sku string) (*domain.ProductSummary, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[sku]
	if !ok {
		metrics.CatalogCacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CatalogCacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CatalogCacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CatalogCacheOps.WithLabelValues("hit").Inc()
	return cloneProduct(ent.product), true
}

func (c *LRUCacheTTL) Set(_ context.Context, product *domain.ProductSummary) error {
	if product == nil || product.SKU == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[product.SKU]; ok {
		ent := elem.Value.(*entry)
		ent.product = cloneProduct(product)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		sku:       product.SKU,
		product:   cloneProduct(product),
		expiresAt: c.expiryFrom(now),
	})
	c.index[product.SKU] = elem
	metrics.CatalogCacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// ------вспомогательные функции------

func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CatalogCacheOps.WithLabelValues("evicted").Inc()
		metrics.CatalogCacheSize.Set(float64(len(c.index)))
	}
}

func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.sku)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CatalogCacheOps.WithLabelValues("expired").Inc()
			metrics.CatalogCacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

func cloneProduct(product *domain.ProductSummary) *domain.ProductSummary {
	if product == nil {
		return nil
	}
	cloned := *product
	return &cloned
}
