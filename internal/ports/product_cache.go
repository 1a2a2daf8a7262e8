package ports

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

// ProductCache — интерфейс кэша карточек каталога.
type ProductCache interface {
	// Get — (карточка, true) при попадании; (nil, false) при промахе.
	Get(ctx context.Context, sku string) (*domain.ProductSummary, bool)

	// Set — кладёт карточку в кэш (nil и пустой SKU игнорируются).
	Set(ctx context.Context, product *domain.ProductSummary) error
}
