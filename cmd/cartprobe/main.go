package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Gunvolt24/wb_storefront/internal/domain"
	"github.com/Gunvolt24/wb_storefront/internal/gateway/graphql"
)

// CLI-утилита для ручной проверки коммерс-бэкенда: создать корзину,
// посмотреть товар, добавить позицию, снять снимок.
func main() {
	endpoint := flag.String("endpoint", "http://magento.local/graphql", "commerce GraphQL endpoint")
	op := flag.String("op", "product", "operation: product|create|items|add")
	sku := flag.String("sku", "24-MB01", "product sku (product/add)")
	cart := flag.String("cart", "", "cart token (items/add)")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := graphql.NewClient(*endpoint, &http.Client{Timeout: *timeout}, stderrLogger{})

	switch *op {
	case "product":
		product, err := client.ProductBySKU(ctx, *sku)
		exitOn(err)
		if product == nil {
			fmt.Fprintf(os.Stderr, "product %s not found\n", *sku)
			os.Exit(1)
		}
		dump(product)
	case "create":
		id, err := client.CreateCart(ctx)
		exitOn(err)
		fmt.Println(id)
	case "items":
		requireCart(*cart)
		snapshot, err := client.FetchItems(ctx, domain.CartIdentity(*cart))
		exitOn(err)
		dump(snapshot)
		fmt.Fprintf(os.Stderr, "badge=%d\n", snapshot.TotalQuantity())
	case "add":
		requireCart(*cart)
		snapshot, err := client.AddItem(ctx, domain.CartIdentity(*cart), *sku, 1)
		exitOn(err)
		dump(snapshot)
		fmt.Fprintf(os.Stderr, "badge=%d\n", snapshot.TotalQuantity())
	default:
		fmt.Fprintf(os.Stderr, "unknown op %q\n", *op)
		os.Exit(2)
	}
}

func requireCart(cart string) {
	if cart == "" {
		fmt.Fprintln(os.Stderr, "-cart is required for this op")
		os.Exit(2)
	}
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func dump(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

type stderrLogger struct{}

func (stderrLogger) Infof(_ context.Context, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
func (stderrLogger) Warnf(_ context.Context, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
func (stderrLogger) Errorf(_ context.Context, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
