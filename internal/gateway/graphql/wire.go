package graphql

import (
	"strconv"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Wire-структуры под Magento-совместимый ответ. Наружу пакет отдаёт
// только доменные типы.

type wireMoney struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type wirePriceRange struct {
	MinimumPrice struct {
		FinalPrice wireMoney `json:"final_price"`
	} `json:"minimum_price"`
}

type wireImage struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type wireProduct struct {
	SKU         string         `json:"sku"`
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	StockStatus string         `json:"stock_status"`
	Image       wireImage      `json:"image"`
	PriceRange  wirePriceRange `json:"price_range"`
}

type wireCartItem struct {
	// id приходит строкой либо числом в зависимости от версии схемы.
	ID       stringOrInt `json:"id"`
	Quantity float64     `json:"quantity"`
	Product  wireProduct `json:"product"`
}

type wireCart struct {
	ItemsV2 struct {
		Items []wireCartItem `json:"items"`
	} `json:"itemsV2"`
}

// stringOrInt — идентификатор позиции: принимаем и "42", и 42.
type stringOrInt int64

func (s *stringOrInt) UnmarshalJSON(data []byte) error {
	text := string(data)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return err
	}
	*s = stringOrInt(n)
	return nil
}

func moneyFromWire(m wireMoney) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(m.Value),
		Currency: m.Currency,
	}
}

func snapshotFromWire(cart wireCart) domain.CartSnapshot {
	items := cart.ItemsV2.Items
	snapshot := make(domain.CartSnapshot, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, domain.CartItem{
			ItemID:   int64(it.ID),
			SKU:      it.Product.SKU,
			Name:     it.Product.Name,
			ImageURL: it.Product.Image.URL,
			Price:    moneyFromWire(it.Product.PriceRange.MinimumPrice.FinalPrice),
			Quantity: int(it.Quantity),
		})
	}
	return snapshot
}

func productFromWire(p wireProduct) *domain.ProductSummary {
	return &domain.ProductSummary{
		SKU:         p.SKU,
		Name:        p.Name,
		Brand:       p.Brand,
		ImageURL:    p.Image.URL,
		ImageLabel:  p.Image.Label,
		Price:       moneyFromWire(p.PriceRange.MinimumPrice.FinalPrice),
		StockStatus: domain.StockStatus(p.StockStatus),
	}
}
