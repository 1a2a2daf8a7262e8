package domain

import "github.com/shopspring/decimal"

// CartIdentity — непрозрачный токен гостевой корзины, выданный коммерс-бэкендом.
// Форму токена не валидируем: для нас это просто строка.
type CartIdentity string

// Money — денежная сумма с кодом валюты.
type Money struct {
	Amount   decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// CartItem — позиция корзины в том виде, в котором её вернул бэкенд.
// ItemID назначается сервером и уникален в пределах корзины.
type CartItem struct {
	ItemID   int64  `json:"item_id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartSnapshot — упорядоченный список позиций корзины.
// Порядок — серверный; после каждой мутации снимок заменяется целиком.
type CartSnapshot []CartItem

// TotalQuantity — суммарное количество по всем позициям (значение для бейджа).
func (s CartSnapshot) TotalQuantity() int {
	total := 0
	for _, item := range s {
		total += item.Quantity
	}
	return total
}

// Clone — копия снимка, чтобы внешние изменения не задели оригинал.
func (s CartSnapshot) Clone() CartSnapshot {
	if s == nil {
		return nil
	}
	return append(CartSnapshot(nil), s...)
}
