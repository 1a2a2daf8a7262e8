package domain

// StockStatus — статус наличия товара в каталоге.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "IN_STOCK"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// InStock — true, если товар можно положить в корзину.
func (s StockStatus) InStock() bool { return s == StockStatusInStock }

// ProductSummary — read-only проекция одной карточки каталога.
// Владелец данных — внешний каталог; мы только отображаем.
type ProductSummary struct {
	SKU         string      `json:"sku"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand,omitempty"`
	ImageURL    string      `json:"image_url"`
	ImageLabel  string      `json:"image_label,omitempty"`
	Price       Money       `json:"price"`
	StockStatus StockStatus `json:"stock_status"`
}
