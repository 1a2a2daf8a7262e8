package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
)

// Проверка, что IdentityStore удовлетворяет интерфейсу IdentityStore.
var _ ports.IdentityStore = (*IdentityStore)(nil)

// IdentityStore — хранилище токенов корзины на Postgres (pgxpool).
// Токен по scope-ключу пишется один раз: повторный Set не перетирает
// уже сохранённый токен.
type IdentityStore struct {
	pool *pgxpool.Pool
}

// NewIdentityStore - конструктор IdentityStore.
func NewIdentityStore(pool *pgxpool.Pool) *IdentityStore { return &IdentityStore{pool: pool} }

// Get — возвращает сохранённый токен корзины для scope-ключа.
func (s *IdentityStore) Get(ctx context.Context, scope string) (domain.CartIdentity, bool, error) {
	var token string
	err := s.pool.QueryRow(ctx, `
		SELECT token FROM cart_identities WHERE scope_key = $1
	`, scope).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select cart identity: %w", err)
	}
	return domain.CartIdentity(token), true, nil
}

// Set — сохраняет токен, если для scope-ключа ещё нет записи.
// Конфликт не ошибка: первый записанный токен остаётся действующим.
func (s *IdentityStore) Set(ctx context.Context, scope string, id domain.CartIdentity) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO cart_identities (scope_key, token) VALUES ($1, $2)
		ON CONFLICT (scope_key) DO NOTHING
	`, scope, string(id)); err != nil {
		return fmt.Errorf("insert cart identity: %w", err)
	}
	return nil
}
