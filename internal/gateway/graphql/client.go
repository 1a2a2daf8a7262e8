package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_storefront/internal/ports"
	"github.com/Gunvolt24/wb_storefront/pkg/metrics"
)

// Doer — минимальный контракт HTTP-клиента (подменяется в тестах,
// оборачивается circuit breaker'ом).
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client — GraphQL-клиент коммерс-бэкенда. Один POST на операцию,
// без ретраев: операции корзины не идемпотентны.
type Client struct {
	endpoint string
	httpc    Doer
	log      ports.Logger
}

func NewClient(endpoint string, httpc Doer, log ports.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		endpoint: endpoint,
		httpc:    httpc,
		log:      log,
	}
}

// gqlRequest/gqlResponse — конверт GraphQL поверх HTTP POST.
type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

// do — один round trip: сериализация, POST, разбор конверта, метрики.
// Любая неудача превращается в *RemoteError с именем операции.
func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, op, query, vars, out)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.GatewayRequests.WithLabelValues(op, outcome).Inc()
	metrics.GatewayDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	return err
}

func (c *Client) roundTrip(ctx context.Context, op, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warnf(ctx, "gateway %s transport error: %v", op, err)
		return &RemoteError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnf(ctx, "gateway %s http status=%d", op, resp.StatusCode)
		return &RemoteError{Op: op, Status: resp.StatusCode}
	}

	var envelope gqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode envelope: %w", err)}
	}

	// errors[] в ответе — отказ операции, даже при статусе 200.
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		c.log.Warnf(ctx, "gateway %s rejected: %v", op, msgs)
		return &RemoteError{Op: op, Status: resp.StatusCode, Messages: msgs}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}
