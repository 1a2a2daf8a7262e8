package ports

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

// ProductReadService — сервис чтения карточек каталога (кэш + внешний каталог).
type ProductReadService interface {
	ProductBySKU(ctx context.Context, sku string) (*domain.ProductSummary, error)
}
