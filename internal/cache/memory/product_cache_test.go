package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

func newProduct(sku string) *domain.ProductSummary {
	return &domain.ProductSummary{
		SKU:         sku,
		Name:        "x",
		StockStatus: domain.StockStatusInStock,
	}
}

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "sku-1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newProduct("sku-1"))
	got, ok := c.Get(ctx, "sku-1")
	if !ok || got.SKU != "sku-1" {
		t.Fatalf("expected hit for sku-1")
	}
}

func TestTTL_Expiry(t *testing.T) {
	c := NewLRUCacheTTL(2, 100*time.Millisecond)
	ctx := context.Background()

	_ = c.Set(ctx, newProduct("ttl"))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newProduct("A"))
	_ = c.Set(ctx, newProduct("B"))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	_ = c.Set(ctx, newProduct("C"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	_ = c.Set(ctx, newProduct("Z"))

	// меняем то, что вернул Get — не должно влиять на кэш
	p1, _ := c.Get(ctx, "Z")
	p1.Name = "changed"

	p2, _ := c.Get(ctx, "Z")
	if p2.Name != "x" {
		t.Fatalf("cache entry must not be affected by caller mutation")
	}
}
