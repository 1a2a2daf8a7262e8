package ports

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

// CatalogReader — read-only запрос к внешнему каталогу по SKU.
// Возвращает (nil, nil), если товара нет.
type CatalogReader interface {
	ProductBySKU(ctx context.Context, sku string) (*domain.ProductSummary, error)
}
