package ports

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

// CartGateway — типизированные операции удалённого коммерс-API (query/mutation).
// Каждая операция — один сетевой round trip без ретраев на этом уровне.
// Операции не идемпотентны (повтор AddItem снова увеличит количество),
// поэтому вызывающая сторона не имеет права на слепые повторы.
type CartGateway interface {
	// CreateCart — создаёт гостевую корзину и возвращает её токен.
	CreateCart(ctx context.Context) (domain.CartIdentity, error)

	// FetchItems — актуальный снимок содержимого корзины.
	FetchItems(ctx context.Context, id domain.CartIdentity) (domain.CartSnapshot, error)

	// AddItem — добавляет позицию по SKU; возвращает полный снимок после мутации.
	AddItem(ctx context.Context, id domain.CartIdentity, sku string, quantity int) (domain.CartSnapshot, error)

	// UpdateQuantity — меняет количество позиции; quantity >= 1 по контракту
	// (границу обеспечивает вызывающая сторона).
	UpdateQuantity(ctx context.Context, id domain.CartIdentity, itemID int64, quantity int) (domain.CartSnapshot, error)

	// RemoveItem — удаляет позицию; возвращает полный снимок после мутации.
	RemoveItem(ctx context.Context, id domain.CartIdentity, itemID int64) (domain.CartSnapshot, error)
}
