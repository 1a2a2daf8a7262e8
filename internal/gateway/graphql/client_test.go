package graphql_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/wb_storefront/internal/gateway/graphql"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// gqlEcho — разбирает присланный конверт, чтобы проверить query/variables.
type gqlEcho struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newServer(t *testing.T, handler func(t *testing.T, req gqlEcho) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlEcho
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handler(t, req)))
	}))
}

const cartOneItem = `{
  "itemsV2": {
    "items": [
      {
        "id": "1",
        "quantity": 2,
        "product": {
          "sku": "24-MB01",
          "name": "Joust Duffle Bag",
          "image": { "url": "http://img.local/duffle.jpg" },
          "price_range": {
            "minimum_price": { "final_price": { "value": 34.5, "currency": "USD" } }
          }
        }
      }
    ]
  }
}`

func TestCreateCart_OK(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(t *testing.T, req gqlEcho) string {
		if !strings.Contains(req.Query, "createGuestCart") {
			t.Errorf("unexpected query: %s", req.Query)
		}
		return `{"data":{"createGuestCart":{"cart":{"id":"cart-abc"}}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	id, err := c.CreateCart(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "cart-abc" {
		t.Fatalf("want cart-abc, got %q", id)
	}
}

func TestCreateCart_EmptyID(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(*testing.T, gqlEcho) string {
		return `{"data":{"createGuestCart":{"cart":{"id":""}}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	if _, err := c.CreateCart(context.Background()); err == nil {
		t.Fatalf("want error on empty cart id")
	}
}

func TestAddItem_MapsSnapshot(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(t *testing.T, req gqlEcho) string {
		if req.Variables["cartId"] != "cart-abc" || req.Variables["sku"] != "24-MB01" {
			t.Errorf("unexpected variables: %+v", req.Variables)
		}
		if q, ok := req.Variables["quantity"].(float64); !ok || q != 1 {
			t.Errorf("quantity must be 1, got %v", req.Variables["quantity"])
		}
		return `{"data":{"addSimpleProductsToCart":{"cart":` + cartOneItem + `}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	snap, err := c.AddItem(context.Background(), "cart-abc", "24-MB01", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("want 1 item, got %d", len(snap))
	}
	item := snap[0]
	if item.ItemID != 1 || item.SKU != "24-MB01" || item.Quantity != 2 {
		t.Fatalf("bad mapping: %+v", item)
	}
	if item.Price.Currency != "USD" || !item.Price.Amount.Equal(decimal.NewFromFloat(34.5)) {
		t.Fatalf("bad price mapping: %+v", item.Price)
	}
}

func TestAddItem_GraphQLError(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(*testing.T, gqlEcho) string {
		return `{"errors":[{"message":"The requested qty is not available"}],"data":null}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	_, err := c.AddItem(context.Background(), "cart-abc", "24-MB01", 1)

	var remoteErr *graphql.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("want *RemoteError, got %v", err)
	}
	if remoteErr.Reason() != "The requested qty is not available" {
		t.Fatalf("unexpected reason: %q", remoteErr.Reason())
	}
}

func TestFetchItems_HTTPStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	_, err := c.FetchItems(context.Background(), "cart-abc")

	var remoteErr *graphql.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("want *RemoteError, got %v", err)
	}
	if remoteErr.Status != http.StatusBadGateway {
		t.Fatalf("want status 502, got %d", remoteErr.Status)
	}
}

func TestUpdateQuantity_PassesItemID(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(t *testing.T, req gqlEcho) string {
		if id, ok := req.Variables["itemId"].(float64); !ok || id != 7 {
			t.Errorf("itemId must be 7, got %v", req.Variables["itemId"])
		}
		if q, ok := req.Variables["quantity"].(float64); !ok || q != 3 {
			t.Errorf("quantity must be 3, got %v", req.Variables["quantity"])
		}
		return `{"data":{"updateCartItems":{"cart":` + cartOneItem + `}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	if _, err := c.UpdateQuantity(context.Background(), "cart-abc", 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRemoveItem_EmptySnapshot(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(*testing.T, gqlEcho) string {
		return `{"data":{"removeItemFromCart":{"cart":{"itemsV2":{"items":[]}}}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	snap, err := c.RemoveItem(context.Background(), "cart-abc", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("want empty snapshot, got %+v", snap)
	}
}

func TestProductBySKU_Found(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(t *testing.T, req gqlEcho) string {
		if req.Variables["sku"] != "24-MB01" {
			t.Errorf("unexpected sku: %v", req.Variables["sku"])
		}
		return `{"data":{"products":{"items":[{
			"sku":"24-MB01","name":"Joust Duffle Bag","brand":"Acme","stock_status":"IN_STOCK",
			"image":{"url":"http://img.local/duffle.jpg","label":"duffle"},
			"price_range":{"minimum_price":{"final_price":{"value":34.5,"currency":"USD"}}}
		}]}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	p, err := c.ProductBySKU(context.Background(), "24-MB01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.SKU != "24-MB01" || p.Brand != "Acme" || p.ImageLabel != "duffle" {
		t.Fatalf("bad mapping: %+v", p)
	}
	if !p.StockStatus.InStock() {
		t.Fatalf("want IN_STOCK, got %q", p.StockStatus)
	}
}

func TestProductBySKU_NotFound(t *testing.T) {
	t.Parallel()

	srv := newServer(t, func(*testing.T, gqlEcho) string {
		return `{"data":{"products":{"items":[]}}}`
	})
	defer srv.Close()

	c := graphql.NewClient(srv.URL, srv.Client(), noopLogger{})
	p, err := c.ProductBySKU(context.Background(), "no-such-sku")
	if err != nil || p != nil {
		t.Fatalf("want (nil, nil), got %v, %v", p, err)
	}
}

// Открытый брейкер отклоняет запросы, не трогая бэкенд.
func TestBreakerDoer_OpensAfterFailures(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	doer := graphql.NewBreakerDoer(srv.Client(), time.Minute)
	c := graphql.NewClient(srv.URL, doer, noopLogger{})

	// Дефолт gobreaker: больше пяти последовательных отказов подряд — open.
	for i := 0; i < 6; i++ {
		if _, err := c.FetchItems(context.Background(), "cart-abc"); err == nil {
			t.Fatalf("want error from failing backend")
		}
	}
	got := atomic.LoadInt32(&hits)

	if _, err := c.FetchItems(context.Background(), "cart-abc"); err == nil {
		t.Fatalf("want error from open breaker")
	}
	if atomic.LoadInt32(&hits) != got {
		t.Fatalf("open breaker must not reach the backend: hits went %d -> %d", got, atomic.LoadInt32(&hits))
	}
}
