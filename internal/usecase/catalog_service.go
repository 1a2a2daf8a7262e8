package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
)

// Проверка, что CatalogService удовлетворяет интерфейсу ProductReadService.
var _ ports.ProductReadService = (*CatalogService)(nil)

// CatalogService — чтение карточек каталога: сначала кэш, при промахе —
// внешний каталог с записью в кэш. Конкурентные промахи по одному SKU
// схлопываются в один запрос.
type CatalogService struct {
	reader ports.CatalogReader
	cache  ports.ProductCache
	log    ports.Logger

	sf singleflight.Group
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(reader ports.CatalogReader, cache ports.ProductCache, log ports.Logger) *CatalogService {
	return &CatalogService{
		reader: reader,
		cache:  cache,
		log:    log,
	}
}

// ProductBySKU — карточка товара по SKU: (*ProductSummary, nil) или
// (nil, nil), если товара в каталоге нет. Отсутствие не кэшируем.
func (s *CatalogService) ProductBySKU(ctx context.Context, sku string) (*domain.ProductSummary, error) {
	if product, found := s.cache.Get(ctx, sku); found {
		s.log.Infof(ctx, "catalog cache hit sku=%s", sku)
		return product, nil
	}
	s.log.Infof(ctx, "catalog cache miss sku=%s", sku)

	start := time.Now()
	v, err, _ := s.sf.Do(sku, func() (any, error) {
		product, fetchErr := s.reader.ProductBySKU(ctx, sku)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if product != nil {
			if setErr := s.cache.Set(ctx, product); setErr != nil {
				s.log.Warnf(ctx, "catalog cache set failed sku=%s err=%v", sku, setErr)
			}
		}
		return product, nil
	})
	if err != nil {
		s.log.Errorf(ctx, "catalog fetch failed sku=%s err=%v", sku, err)
		return nil, err
	}

	s.log.Infof(ctx, "catalog fetch sku=%s took=%s", sku, time.Since(start))
	return v.(*domain.ProductSummary), nil
}
