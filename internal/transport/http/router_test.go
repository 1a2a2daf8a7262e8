package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports/mocks"
	rest "github.com/Gunvolt24/wb_storefront/internal/transport/http"
	"github.com/Gunvolt24/wb_storefront/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// remoteErr — ошибка бэкенда с человекочитаемой причиной.
type remoteErr struct{ msg string }

func (e *remoteErr) Error() string  { return e.msg }
func (e *remoteErr) Reason() string { return e.msg }

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockCartSyncService, *mocks.MockProductReadService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cart := mocks.NewMockCartSyncService(ctrl)
	catalog := mocks.NewMockProductReadService(ctrl)
	h := rest.NewHandler(cart, catalog, noopLogger{}, 0, "24-MB01")
	return rest.NewRouter(h, "", "test"), cart, catalog
}

// GET /product без параметра отдаёт товар, к которому привязан виджет.
func TestGetProduct_DefaultSKU(t *testing.T) {
	r, _, catalog := newRouter(t)

	catalog.EXPECT().ProductBySKU(gomock.Any(), "24-MB01").
		Return(&domain.ProductSummary{SKU: "24-MB01", StockStatus: domain.StockStatusInStock}, nil)

	req := httptest.NewRequest(http.MethodGet, "/product", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetProduct_Found(t *testing.T) {
	r, _, catalog := newRouter(t)

	want := &domain.ProductSummary{SKU: "24-MB01", Name: "Joust Duffle Bag", StockStatus: domain.StockStatusInStock}
	catalog.EXPECT().ProductBySKU(gomock.Any(), "24-MB01").Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/product/24-MB01", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.ProductSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.SKU != "24-MB01" {
		t.Fatalf("wrong product: %+v", got)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r, _, catalog := newRouter(t)

	catalog.EXPECT().ProductBySKU(gomock.Any(), "missing").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/product/missing", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetCart_ReturnsSnapshotAndBadge(t *testing.T) {
	r, cart, _ := newRouter(t)

	cart.EXPECT().Snapshot().Return(domain.CartSnapshot{
		{ItemID: 1, SKU: "24-MB01", Quantity: 2},
		{ItemID: 2, SKU: "24-WB02", Quantity: 1},
	})
	cart.EXPECT().Status().Return(domain.SyncStatus{State: domain.SyncIdle})

	req := httptest.NewRequest(http.MethodGet, "/cart", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Badge  int `json:"badge"`
		Status struct {
			State string `json:"state"`
		} `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Badge != 3 || got.Status.State != "idle" {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}

func TestAddItem_OK(t *testing.T) {
	r, cart, catalog := newRouter(t)

	catalog.EXPECT().ProductBySKU(gomock.Any(), "24-MB01").
		Return(&domain.ProductSummary{SKU: "24-MB01", StockStatus: domain.StockStatusInStock}, nil)
	cart.EXPECT().AddToCart(gomock.Any(), "24-MB01").
		Return(domain.CartSnapshot{{ItemID: 1, SKU: "24-MB01", Quantity: 1}}, nil)
	cart.EXPECT().Status().Return(domain.SyncStatus{State: domain.SyncIdle})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"sku":"24-MB01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

// Товар без остатка не уходит в корзину.
func TestAddItem_OutOfStock(t *testing.T) {
	r, cart, catalog := newRouter(t)

	catalog.EXPECT().ProductBySKU(gomock.Any(), "24-MB01").
		Return(&domain.ProductSummary{SKU: "24-MB01", StockStatus: domain.StockStatusOutOfStock}, nil)
	cart.EXPECT().AddToCart(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"sku":"24-MB01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddItem_MissingSKU(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateItem_InvalidQuantity(t *testing.T) {
	r, cart, _ := newRouter(t)

	cart.EXPECT().ChangeQuantity(gomock.Any(), int64(1), 0).
		Return(nil, usecase.ErrInvalidQuantity)

	req := httptest.NewRequest(http.MethodPatch, "/cart/items/1", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateItem_Busy(t *testing.T) {
	r, cart, _ := newRouter(t)

	cart.EXPECT().ChangeQuantity(gomock.Any(), int64(1), 2).
		Return(nil, usecase.ErrBusy)

	req := httptest.NewRequest(http.MethodPatch, "/cart/items/1", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
}

// Корзина так и не получила токен: 503, просим зайти позже.
func TestAddItem_IdentityUnavailable(t *testing.T) {
	r, cart, catalog := newRouter(t)

	catalog.EXPECT().ProductBySKU(gomock.Any(), "24-MB01").Return(nil, nil)
	cart.EXPECT().AddToCart(gomock.Any(), "24-MB01").
		Return(nil, usecase.ErrIdentityUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"sku":"24-MB01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503, got %d, body=%s", w.Code, w.Body.String())
	}
}

// Причина отказа бэкенда доходит до клиента вместе с 502.
func TestRemoveItem_BackendError(t *testing.T) {
	r, cart, _ := newRouter(t)

	cart.EXPECT().RemoveFromCart(gomock.Any(), int64(7)).
		Return(nil, &remoteErr{msg: "cart not found"})

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/7", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "cart not found") {
		t.Fatalf("reason must reach the client, body=%s", w.Body.String())
	}
}

func TestRemoveItem_BadID(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/abc", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

// Добавление раскрывает панель; /view это отражает.
func TestView_PanelOpensOnAdd(t *testing.T) {
	r, cart, catalog := newRouter(t)

	catalog.EXPECT().ProductBySKU(gomock.Any(), "24-MB01").Return(nil, nil)
	cart.EXPECT().AddToCart(gomock.Any(), "24-MB01").
		Return(domain.CartSnapshot{{ItemID: 1, SKU: "24-MB01", Quantity: 1}}, nil)
	cart.EXPECT().Status().Return(domain.SyncStatus{State: domain.SyncIdle}).Times(2)
	cart.EXPECT().Snapshot().Return(domain.CartSnapshot{{ItemID: 1, SKU: "24-MB01", Quantity: 1}})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"sku":"24-MB01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/view", http.NoBody)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got struct {
		PanelOpen bool `json:"panel_open"`
		Badge     int  `json:"badge"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !got.PanelOpen || got.Badge != 1 {
		t.Fatalf("unexpected view: %s", w.Body.String())
	}
}

func TestView_SetPanel(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/view/panel", strings.NewReader(`{"open":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"panel_open":true`) {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}

// Причина последней ошибки видна во /view как сообщение.
func TestView_FailedStatusMessage(t *testing.T) {
	r, cart, _ := newRouter(t)

	cart.EXPECT().Snapshot().Return(domain.CartSnapshot{})
	cart.EXPECT().Status().Return(domain.SyncStatus{State: domain.SyncFailed, Reason: "stock"})

	req := httptest.NewRequest(http.MethodGet, "/view", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got struct {
		Message string `json:"message"`
		Status  struct {
			State string `json:"state"`
		} `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Message != "stock" || got.Status.State != "failed" {
		t.Fatalf("unexpected view: %s", w.Body.String())
	}
}

func TestNoMethod(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/cart", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	r, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected ping response: %d %q", w.Code, w.Body.String())
	}
}
