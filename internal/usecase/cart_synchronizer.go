package usecase

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
	"github.com/Gunvolt24/wb_storefront/pkg/metrics"
)

// Проверка, что CartSynchronizer удовлетворяет интерфейсу CartSyncService.
var _ ports.CartSyncService = (*CartSynchronizer)(nil)

// BusyPolicy — поведение мутации, когда предыдущая ещё не завершилась.
type BusyPolicy string

const (
	// BusyQueue — ждать своей очереди (мутации выстраиваются по порядку вызова).
	BusyQueue BusyPolicy = "queue"
	// BusyReject — отклонить сразу с ErrBusy.
	BusyReject BusyPolicy = "reject"
)

// CartSynchronizer — прикладная логика корзины: единственный владелец
// токена и снимка. Все мутации идут через один писатель (opMu), поэтому
// на бэкенд никогда не уходят две пересекающиеся операции. Чтение
// (Snapshot/Status) мутацией не блокируется.
//
// Ретраев нет принципиально: операции бэкенда не идемпотентны, слепой
// повтор AddItem задвоил бы позицию.
type CartSynchronizer struct {
	gateway ports.CartGateway
	store   ports.IdentityStore
	log     ports.Logger
	scope   string
	policy  BusyPolicy

	// opMu сериализует все операции гейтвея; sf схлопывает
	// конкурентное получение токена в один сетевой вызов.
	opMu sync.Mutex
	sf   singleflight.Group

	mu       sync.RWMutex
	identity domain.CartIdentity
	snapshot domain.CartSnapshot
	status   domain.SyncStatus
}

// NewCartSynchronizer — DI-конструктор.
func NewCartSynchronizer(
	gateway ports.CartGateway,
	store ports.IdentityStore,
	log ports.Logger,
	scope string,
	policy BusyPolicy,
) *CartSynchronizer {
	if policy != BusyReject {
		policy = BusyQueue
	}
	return &CartSynchronizer{
		gateway: gateway,
		store:   store,
		log:     log,
		scope:   scope,
		policy:  policy,
	}
}

// Init — получает или восстанавливает токен корзины заранее, чтобы первая
// мутация не платила за создание корзины. Ошибка здесь не фатальна:
// токен доберём лениво при первой операции.
func (s *CartSynchronizer) Init(ctx context.Context) error {
	_, err := s.ensureIdentity(ctx)
	return err
}

// AddToCart — добавляет товар в корзину. Количество всегда 1: повторное
// добавление того же SKU бэкенд сам сводит к инкременту существующей позиции.
func (s *CartSynchronizer) AddToCart(ctx context.Context, sku string) (domain.CartSnapshot, error) {
	return s.mutate(ctx, "add", domain.SyncMutating, func(id domain.CartIdentity) (domain.CartSnapshot, error) {
		return s.gateway.AddItem(ctx, id, sku, 1)
	})
}

// ChangeQuantity — меняет количество позиции. Количество меньше единицы
// отклоняется локально: удаление — это RemoveFromCart, а не «количество ноль».
func (s *CartSynchronizer) ChangeQuantity(ctx context.Context, itemID int64, quantity int) (domain.CartSnapshot, error) {
	if quantity < 1 {
		metrics.CartMutations.WithLabelValues("update", "rejected").Inc()
		return nil, ErrInvalidQuantity
	}
	return s.mutate(ctx, "update", domain.SyncMutating, func(id domain.CartIdentity) (domain.CartSnapshot, error) {
		return s.gateway.UpdateQuantity(ctx, id, itemID, quantity)
	})
}

// RemoveFromCart — удаляет позицию из корзины.
func (s *CartSynchronizer) RemoveFromCart(ctx context.Context, itemID int64) (domain.CartSnapshot, error) {
	return s.mutate(ctx, "remove", domain.SyncMutating, func(id domain.CartIdentity) (domain.CartSnapshot, error) {
		return s.gateway.RemoveItem(ctx, id, itemID)
	})
}

// Refresh — перечитывает снимок с бэкенда. Идёт через тот же одиночный
// писатель, чтобы не перемешаться с мутацией в полёте.
func (s *CartSynchronizer) Refresh(ctx context.Context) (domain.CartSnapshot, error) {
	return s.mutate(ctx, "refresh", domain.SyncReconciling, func(id domain.CartIdentity) (domain.CartSnapshot, error) {
		return s.gateway.FetchItems(ctx, id)
	})
}

// Snapshot — текущий снимок корзины (копия). Не блокируется мутацией в полёте.
func (s *CartSynchronizer) Snapshot() domain.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Status — текущее состояние синхронизации.
func (s *CartSynchronizer) Status() domain.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// mutate — общий каркас операции гейтвея: захват одиночного писателя,
// токен, вызов, полная замена снимка ответом.
func (s *CartSynchronizer) mutate(
	ctx context.Context,
	op string,
	state domain.SyncState,
	call func(domain.CartIdentity) (domain.CartSnapshot, error),
) (domain.CartSnapshot, error) {
	if s.policy == BusyReject {
		if !s.opMu.TryLock() {
			metrics.CartMutations.WithLabelValues(op, "rejected").Inc()
			return nil, ErrBusy
		}
	} else {
		s.opMu.Lock()
	}
	defer s.opMu.Unlock()

	id, err := s.ensureIdentity(ctx)
	if err != nil {
		s.fail(ctx, op, err)
		metrics.CartMutations.WithLabelValues(op, "failed").Inc()
		return nil, errors.Join(ErrIdentityUnavailable, err)
	}

	s.setStatus(state, "")

	resp, err := call(id)
	if err != nil {
		s.fail(ctx, op, err)
		metrics.CartMutations.WithLabelValues(op, "failed").Inc()
		return nil, err
	}

	next := s.replace(resp)
	metrics.CartMutations.WithLabelValues(op, "ok").Inc()
	return next, nil
}

// ensureIdentity — возвращает токен корзины, при необходимости создавая
// корзину на бэкенде. Конкурентные вызовы схлопываются в один.
// Токен неизменен: однажды полученный, он живёт до конца процесса.
func (s *CartSynchronizer) ensureIdentity(ctx context.Context) (domain.CartIdentity, error) {
	s.mu.RLock()
	id := s.identity
	s.mu.RUnlock()
	if id != "" {
		return id, nil
	}

	v, err, _ := s.sf.Do(s.scope, func() (any, error) {
		// Перепроверка: пока ждали singleflight, токен мог появиться.
		s.mu.RLock()
		cached := s.identity
		s.mu.RUnlock()
		if cached != "" {
			return cached, nil
		}

		s.setStatus(domain.SyncAcquiring, "")

		// Ошибка хранилища не роняет сессию: работаем как с отсутствующим
		// токеном, корзина будет эфемерной.
		stored, found, storeErr := s.store.Get(ctx, s.scope)
		if storeErr != nil {
			s.log.Warnf(ctx, "identity store get failed scope=%s err=%v", s.scope, storeErr)
		}
		if found && stored != "" {
			s.adoptIdentity(stored)
			s.log.Infof(ctx, "cart identity restored scope=%s", s.scope)
			return stored, nil
		}

		created, createErr := s.gateway.CreateCart(ctx)
		if createErr != nil {
			s.fail(ctx, "acquire", createErr)
			return domain.CartIdentity(""), createErr
		}

		if setErr := s.store.Set(ctx, s.scope, created); setErr != nil {
			s.log.Warnf(ctx, "identity store set failed scope=%s err=%v", s.scope, setErr)
		}
		s.adoptIdentity(created)
		s.log.Infof(ctx, "cart identity acquired scope=%s", s.scope)
		return created, nil
	})
	if err != nil {
		return "", err
	}
	return v.(domain.CartIdentity), nil
}

func (s *CartSynchronizer) adoptIdentity(id domain.CartIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		s.identity = id
	}
	s.status = domain.SyncStatus{State: domain.SyncIdle}
}

// replace — полная замена снимка ответом бэкенда; локальных инкрементов нет.
func (s *CartSynchronizer) replace(resp domain.CartSnapshot) domain.CartSnapshot {
	next := reduceSnapshot(resp)

	s.mu.Lock()
	s.snapshot = next
	s.status = domain.SyncStatus{State: domain.SyncIdle}
	s.mu.Unlock()

	metrics.CartBadge.Set(float64(next.TotalQuantity()))
	return next.Clone()
}

func (s *CartSynchronizer) setStatus(state domain.SyncState, reason string) {
	s.mu.Lock()
	s.status = domain.SyncStatus{State: state, Reason: reason}
	s.mu.Unlock()
}

// fail — перевод в failed с человекочитаемой причиной; снимок не трогаем,
// последнее подтверждённое состояние остаётся видимым.
func (s *CartSynchronizer) fail(ctx context.Context, op string, err error) {
	reason := err.Error()
	var remote interface{ Reason() string }
	if errors.As(err, &remote) {
		reason = remote.Reason()
	}
	s.setStatus(domain.SyncFailed, reason)
	s.log.Errorf(ctx, "cart %s failed: %v", op, err)
}
