package usecase

import "github.com/Gunvolt24/wb_storefront/internal/domain"

// reduceSnapshot — чистая свёртка серверного ответа в хранимый снимок.
// Ответ бэкенда авторитетен и заменяет снимок целиком; позиции с
// неположительным количеством отбрасываются, порядок сохраняется.
func reduceSnapshot(next domain.CartSnapshot) domain.CartSnapshot {
	reduced := make(domain.CartSnapshot, 0, len(next))
	for _, item := range next {
		if item.Quantity < 1 {
			continue
		}
		reduced = append(reduced, item)
	}
	return reduced
}
