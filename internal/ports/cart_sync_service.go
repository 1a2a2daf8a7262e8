package ports

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

// CartSyncService — контракт синхронизатора корзины для транспортного слоя.
// Мутации строго сериализованы; каждая успешная операция возвращает
// авторитетный серверный снимок (никаких локальных инкрементов).
type CartSyncService interface {
	AddToCart(ctx context.Context, sku string) (domain.CartSnapshot, error)
	ChangeQuantity(ctx context.Context, itemID int64, quantity int) (domain.CartSnapshot, error)
	RemoveFromCart(ctx context.Context, itemID int64) (domain.CartSnapshot, error)
	Refresh(ctx context.Context) (domain.CartSnapshot, error)

	// Snapshot/Status — read-only проекции; не блокируются мутацией в полёте.
	Snapshot() domain.CartSnapshot
	Status() domain.SyncStatus
}
