package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/wb_storefront/config"
	cachemem "github.com/Gunvolt24/wb_storefront/internal/cache/memory"
	"github.com/Gunvolt24/wb_storefront/internal/gateway/graphql"
	idmem "github.com/Gunvolt24/wb_storefront/internal/identity/memory"
	idpg "github.com/Gunvolt24/wb_storefront/internal/identity/postgres"
	idredis "github.com/Gunvolt24/wb_storefront/internal/identity/redis"
	"github.com/Gunvolt24/wb_storefront/internal/ports"
	rest "github.com/Gunvolt24/wb_storefront/internal/transport/http"
	"github.com/Gunvolt24/wb_storefront/internal/usecase"
	"github.com/Gunvolt24/wb_storefront/pkg/logger"
	"github.com/Gunvolt24/wb_storefront/pkg/metrics"
	"github.com/Gunvolt24/wb_storefront/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger // логгер
	HTTPServer      *http.Server // HTTP-сервер
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newIdentityStore — выбирает бэкенд хранилища токена по конфигурации.
// Недоступный внешний бэкенд не фатален: падаем на in-memory, токен
// просто не переживёт рестарт.
func newIdentityStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.IdentityStore, func()) {
	switch strings.ToLower(strings.TrimSpace(cfg.Identity.Backend)) {
	case "postgres":
		pool, err := idpg.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			log.Warnf(ctx, "postgres identity store unavailable, falling back to memory: %v", err)
			return idmem.NewIdentityStore(), func() {}
		}
		return idpg.NewIdentityStore(pool), pool.Close
	case "redis":
		rdb, err := idredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Warnf(ctx, "redis identity store unavailable, falling back to memory: %v", err)
			return idmem.NewIdentityStore(), func() {}
		}
		return idredis.NewIdentityStore(rdb), func() { _ = rdb.Close() }
	case "", "memory":
		return idmem.NewIdentityStore(), func() {}
	default:
		log.Warnf(ctx, "unknown identity backend %q, falling back to memory", cfg.Identity.Backend)
		return idmem.NewIdentityStore(), func() {}
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Хранилище токена корзины.
	store, closeStore := newIdentityStore(ctx, cfg, logg)

	// Гейтвей коммерс-бэкенда: таймаут на запрос, опциональный circuit breaker.
	var doer graphql.Doer = &http.Client{Timeout: cfg.Commerce.Timeout}
	if cfg.Commerce.BreakerEnabled {
		doer = graphql.NewBreakerDoer(doer, cfg.Commerce.BreakerOpenFor)
	}
	gateway := graphql.NewClient(cfg.Commerce.Endpoint, doer, logg)

	// Сборка зависимостей доменного слоя.
	productCache := cachemem.NewLRUCacheTTL(cfg.Catalog.CacheCapacity, cfg.Catalog.CacheTTL)
	catalogService := usecase.NewCatalogService(gateway, productCache, logg)
	cartService := usecase.NewCartSynchronizer(gateway, store, logg, cfg.Identity.ScopeKey, usecase.BusyPolicy(cfg.Sync.BusyPolicy))

	// Прогрев: токен корзины и, по конфигурации, актуальный снимок.
	// Ошибки не фатальны — доберём лениво при первой операции.
	if initErr := cartService.Init(ctx); initErr != nil {
		logg.Warnf(ctx, "cart identity warm-up failed: %v", initErr)
	} else if cfg.Sync.RefreshOnStart {
		if _, refreshErr := cartService.Refresh(ctx); refreshErr != nil {
			logg.Warnf(ctx, "cart refresh on start failed: %v", refreshErr)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartService, catalogService, logg, cfg.HTTP.HandlerTimeout, cfg.Sync.ProductSKU)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		closeStore()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
