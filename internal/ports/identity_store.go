package ports

import (
	"context"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
)

// IdentityStore — долговременное хранилище токена корзины: одна пара
// «scope → токен» на область хранения. Токен непрозрачен и не валидируется.
// Ошибка хранилища трактуется вызывающей стороной как «токена нет»
// (сессия деградирует до эфемерной, но не падает).
type IdentityStore interface {
	// Get — (токен, true) если для scope уже есть корзина; ("", false) если нет.
	Get(ctx context.Context, scope string) (domain.CartIdentity, bool, error)

	// Set — сохраняет токен для scope. Запись одноразовая: существующий
	// токен не перезаписывается (идентичность корзины неизменна).
	Set(ctx context.Context, scope string, id domain.CartIdentity) error
}
