package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
)

// Проверка, что IdentityStore удовлетворяет интерфейсу IdentityStore.
var _ ports.IdentityStore = (*IdentityStore)(nil)

// IdentityStore — in-memory хранилище токенов корзины.
// Используется как дефолт и как деградация, когда внешнее хранилище
// недоступно: токен переживает только текущий процесс.
type IdentityStore struct {
	mu     sync.RWMutex
	tokens map[string]domain.CartIdentity
}

// NewIdentityStore - конструктор IdentityStore.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{tokens: make(map[string]domain.CartIdentity)}
}

// Get — возвращает сохранённый токен корзины для scope-ключа.
func (s *IdentityStore) Get(_ context.Context, scope string) (domain.CartIdentity, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[scope]
	return token, ok, nil
}

// Set — сохраняет токен, если для scope-ключа ещё нет записи.
func (s *IdentityStore) Set(_ context.Context, scope string, id domain.CartIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[scope]; ok {
		return nil
	}
	s.tokens[scope] = id
	return nil
}
