package graphql

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
)

// Проверка, что Client реализует порт гейтвея корзины.
var _ ports.CartGateway = (*Client)(nil)

// CreateCart — создаёт гостевую корзину, возвращает её токен.
func (c *Client) CreateCart(ctx context.Context) (domain.CartIdentity, error) {
	var data struct {
		CreateGuestCart struct {
			Cart struct {
				ID string `json:"id"`
			} `json:"cart"`
		} `json:"createGuestCart"`
	}

	if err := c.do(ctx, "createCart", mutationCreateGuestCart, nil, &data); err != nil {
		return "", err
	}
	if data.CreateGuestCart.Cart.ID == "" {
		return "", &RemoteError{Op: "createCart", Messages: []string{"backend returned empty cart id"}}
	}
	return domain.CartIdentity(data.CreateGuestCart.Cart.ID), nil
}

// FetchItems — полный снимок содержимого корзины.
func (c *Client) FetchItems(ctx context.Context, id domain.CartIdentity) (domain.CartSnapshot, error) {
	var data struct {
		Cart wireCart `json:"cart"`
	}

	vars := map[string]any{"cartId": string(id)}
	if err := c.do(ctx, "fetchItems", queryCartItems, vars, &data); err != nil {
		return nil, err
	}
	return snapshotFromWire(data.Cart), nil
}

// AddItem — добавляет позицию; бэкенд сам решает, создать новую позицию
// или увеличить количество существующей.
func (c *Client) AddItem(ctx context.Context, id domain.CartIdentity, sku string, quantity int) (domain.CartSnapshot, error) {
	var data struct {
		AddSimpleProductsToCart struct {
			Cart wireCart `json:"cart"`
		} `json:"addSimpleProductsToCart"`
	}

	vars := map[string]any{
		"cartId":   string(id),
		"sku":      sku,
		"quantity": float64(quantity),
	}
	if err := c.do(ctx, "addItem", mutationAddToCart, vars, &data); err != nil {
		return nil, err
	}
	return snapshotFromWire(data.AddSimpleProductsToCart.Cart), nil
}

// UpdateQuantity — меняет количество позиции. quantity >= 1 обеспечивает
// вызывающая сторона; удаление идёт через RemoveItem.
func (c *Client) UpdateQuantity(ctx context.Context, id domain.CartIdentity, itemID int64, quantity int) (domain.CartSnapshot, error) {
	var data struct {
		UpdateCartItems struct {
			Cart wireCart `json:"cart"`
		} `json:"updateCartItems"`
	}

	vars := map[string]any{
		"cartId":   string(id),
		"itemId":   itemID,
		"quantity": float64(quantity),
	}
	if err := c.do(ctx, "updateQuantity", mutationUpdateQuantity, vars, &data); err != nil {
		return nil, err
	}
	return snapshotFromWire(data.UpdateCartItems.Cart), nil
}

// RemoveItem — удаляет позицию из корзины.
func (c *Client) RemoveItem(ctx context.Context, id domain.CartIdentity, itemID int64) (domain.CartSnapshot, error) {
	var data struct {
		RemoveItemFromCart struct {
			Cart wireCart `json:"cart"`
		} `json:"removeItemFromCart"`
	}

	vars := map[string]any{
		"cartId": string(id),
		"itemId": itemID,
	}
	if err := c.do(ctx, "removeItem", mutationRemoveItem, vars, &data); err != nil {
		return nil, err
	}
	return snapshotFromWire(data.RemoveItemFromCart.Cart), nil
}
