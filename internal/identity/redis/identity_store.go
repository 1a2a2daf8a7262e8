package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
)

// Проверка, что IdentityStore удовлетворяет интерфейсу IdentityStore.
var _ ports.IdentityStore = (*IdentityStore)(nil)

// IdentityStore — хранилище токенов корзины на Redis.
// Токен живёт без TTL: корзина гостя остаётся между перезапусками,
// пока её не очистят руками.
type IdentityStore struct {
	rdb *redis.Client
}

// NewIdentityStore - конструктор IdentityStore.
func NewIdentityStore(rdb *redis.Client) *IdentityStore { return &IdentityStore{rdb: rdb} }

// NewClient — подключение к Redis с fail-fast проверкой.
func NewClient(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func key(scope string) string { return "cart_identity:" + scope }

// Get — возвращает сохранённый токен корзины для scope-ключа.
func (s *IdentityStore) Get(ctx context.Context, scope string) (domain.CartIdentity, bool, error) {
	token, err := s.rdb.Get(ctx, key(scope)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get cart identity: %w", err)
	}
	return domain.CartIdentity(token), true, nil
}

// Set — SetNX: первый записанный токен остаётся действующим,
// повторная запись по тому же scope-ключу молча игнорируется.
func (s *IdentityStore) Set(ctx context.Context, scope string, id domain.CartIdentity) error {
	if err := s.rdb.SetNX(ctx, key(scope), string(id), 0).Err(); err != nil {
		return fmt.Errorf("set cart identity: %w", err)
	}
	return nil
}
