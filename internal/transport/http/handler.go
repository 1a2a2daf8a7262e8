package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker/v2"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
	"github.com/Gunvolt24/wb_storefront/internal/usecase"
)

// Handler — HTTP-обработчики витрины корзины.
// Помимо прикладных сервисов держит эфемерное состояние панели
// (открыта/закрыта): оно живёт в процессе и не переживает рестарт.
type Handler struct {
	cart       ports.CartSyncService
	catalog    ports.ProductReadService
	log        ports.Logger
	timeout    time.Duration
	defaultSKU string

	viewMu      sync.Mutex
	panelOpen   bool
	lastMessage string
}

// NewHandler — DI-конструктор. defaultSKU — товар, к которому привязан
// виджет (отдаётся по GET /product без параметра).
func NewHandler(cart ports.CartSyncService, catalog ports.ProductReadService, log ports.Logger, timeout time.Duration, defaultSKU string) *Handler {
	return &Handler{
		cart:       cart,
		catalog:    catalog,
		log:        log,
		timeout:    timeout,
		defaultSKU: defaultSKU,
	}
}

// cartPayload — единый формат ответа для всех операций с корзиной.
func cartPayload(snapshot domain.CartSnapshot, status domain.SyncStatus) gin.H {
	return gin.H{
		"items":  snapshot,
		"badge":  snapshot.TotalQuantity(),
		"status": status,
	}
}

func (h *Handler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) getProduct(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		sku = h.defaultSKU
	}
	if sku == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty sku"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	product, err := h.catalog.ProductBySKU(ctx, sku)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(h.cart.Snapshot(), h.cart.Status()))
}

type addItemRequest struct {
	SKU string `json:"sku" binding:"required"`
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sku is required"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	// Товар без остатка в корзину не кладём; если каталог недоступен
	// или молчит, последнее слово за коммерс-бэкендом.
	if product, err := h.catalog.ProductBySKU(ctx, req.SKU); err == nil && product != nil && !product.StockStatus.InStock() {
		c.JSON(http.StatusConflict, gin.H{"error": "product is out of stock"})
		return
	}

	snapshot, err := h.cart.AddToCart(ctx, req.SKU)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Успешное добавление раскрывает панель корзины.
	h.viewMu.Lock()
	h.panelOpen = true
	h.lastMessage = "item added to cart"
	h.viewMu.Unlock()

	c.JSON(http.StatusOK, cartPayload(snapshot, h.cart.Status()))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req updateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	snapshot, err := h.cart.ChangeQuantity(ctx, itemID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.setMessage("cart updated")
	c.JSON(http.StatusOK, cartPayload(snapshot, h.cart.Status()))
}

func (h *Handler) removeItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	snapshot, err := h.cart.RemoveFromCart(ctx, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.setMessage("item removed from cart")
	c.JSON(http.StatusOK, cartPayload(snapshot, h.cart.Status()))
}

func (h *Handler) setMessage(msg string) {
	h.viewMu.Lock()
	h.lastMessage = msg
	h.viewMu.Unlock()
}

func (h *Handler) refreshCart(c *gin.Context) {
	ctx, cancel := h.opCtx(c)
	defer cancel()

	snapshot, err := h.cart.Refresh(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartPayload(snapshot, h.cart.Status()))
}

func (h *Handler) getView(c *gin.Context) {
	h.viewMu.Lock()
	open := h.panelOpen
	message := h.lastMessage
	h.viewMu.Unlock()

	snapshot := h.cart.Snapshot()
	status := h.cart.Status()

	// Причина последней неудачи важнее сообщения об успехе.
	if status.State == domain.SyncFailed {
		message = status.Reason
	}

	c.JSON(http.StatusOK, gin.H{
		"panel_open": open,
		"message":    message,
		"items":      snapshot,
		"badge":      snapshot.TotalQuantity(),
		"status":     status,
	})
}

type panelRequest struct {
	Open *bool `json:"open" binding:"required"`
}

func (h *Handler) setPanel(c *gin.Context) {
	var req panelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open is required"})
		return
	}

	h.viewMu.Lock()
	h.panelOpen = *req.Open
	open := h.panelOpen
	h.viewMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"panel_open": open})
}

// writeError — единое соответствие прикладных ошибок HTTP-статусам.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrIdentityUnavailable):
		h.log.Warnf(ctx, "cart identity unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cart is not available yet"})
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		h.log.Warnf(ctx, "commerce backend short-circuited: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commerce backend temporarily unavailable"})
	default:
		h.log.Errorf(ctx, "commerce backend error: %v", err)
		var remote interface{ Reason() string }
		if errors.As(err, &remote) {
			c.JSON(http.StatusBadGateway, gin.H{"error": remote.Reason()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "commerce backend error"})
	}
}
