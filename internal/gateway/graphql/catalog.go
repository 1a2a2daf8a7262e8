package graphql

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
)

// Проверка, что Client реализует порт чтения каталога.
var _ ports.CatalogReader = (*Client)(nil)

// ProductBySKU — карточка товара по SKU; (nil, nil), если товара нет.
func (c *Client) ProductBySKU(ctx context.Context, sku string) (*domain.ProductSummary, error) {
	var data struct {
		Products struct {
			Items []wireProduct `json:"items"`
		} `json:"products"`
	}

	vars := map[string]any{"sku": sku}
	if err := c.do(ctx, "productBySKU", queryProductBySKU, vars, &data); err != nil {
		return nil, err
	}
	if len(data.Products.Items) == 0 {
		return nil, nil
	}
	return productFromWire(data.Products.Items[0]), nil
}
