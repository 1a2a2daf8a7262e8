package graphql

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerDoer — circuit breaker поверх HTTP-клиента гейтвея.
// Это fail-fast, не ретраи: при открытом брейкере запрос отклоняется
// сразу и наверх уходит обычный RemoteError.
type BreakerDoer struct {
	next Doer
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

// NewBreakerDoer — openFor задаёт, сколько брейкер держится открытым
// после серии отказов.
func NewBreakerDoer(next Doer, openFor time.Duration) *BreakerDoer {
	if openFor <= 0 {
		openFor = 30 * time.Second
	}
	settings := gobreaker.Settings{
		Name:    "commerce-gateway",
		Timeout: openFor,
	}
	return &BreakerDoer{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[*http.Response](settings),
	}
}

func (b *BreakerDoer) Do(req *http.Request) (*http.Response, error) {
	return b.cb.Execute(func() (*http.Response, error) {
		return b.next.Do(req)
	})
}
