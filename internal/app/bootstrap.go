package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/jm_orders/config"
	viewcache "github.com/Gunvolt24/jm_orders/internal/cache/memory"
	"github.com/Gunvolt24/jm_orders/internal/importer"
	"github.com/Gunvolt24/jm_orders/internal/kafka"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/internal/store/memory"
	rest "github.com/Gunvolt24/jm_orders/internal/transport/http"
	"github.com/Gunvolt24/jm_orders/internal/usecase"
	"github.com/Gunvolt24/jm_orders/pkg/logger"
	"github.com/Gunvolt24/jm_orders/pkg/metrics"
	"github.com/Gunvolt24/jm_orders/pkg/telemetry"
)

const defaultGracefulTimeout = 5 * time.Second

// App — собранное приложение и его внешние интерфейсы (HTTP, метрики, consumer).
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP-сервер панели
	MetricsServer *http.Server          // отдельный /metrics; nil — только на основном порту
	KafkaConsumer ports.MessageConsumer // лента импорта; nil — выключена

	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — режим Gin по строке; неизвестное значение → debug и предупреждение в лог.
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

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd, logger.WithLevel(cfg.Logger.Level))
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() { _ = cleanupLogger() }

	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		tcfg := telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		}.Normalize()
		setup, tErr := telemetry.SetupTracing(ctx, tcfg)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				tcfg.ServiceName, tcfg.Endpoint, tcfg.SampleRatio)
			shutdownTrace = setup
			otelServiceName = tcfg.ServiceName
		}
	}

	// Сборка зависимостей доменного слоя.
	store := memory.NewOrderStore(nil)
	cache := viewcache.NewViewCacheLRU(cfg.ViewCache.Capacity, cfg.ViewCache.TTL)
	service := usecase.NewDashboardService(store, cache, importer.New(cfg.Import.MaxBytes), logg)

	// Посев.
	src, closeSeed, err := openSeedSource(ctx, cfg.Seed, cfg.Postgres)
	if err != nil {
		logg.Errorf(ctx, "open seed source failed: %v", err)
		_ = shutdownTrace(context.Background())
		closeLogger()
		return nil, func() {}, err
	}
	err = service.LoadSeed(ctx, src)
	closeSeed()
	if err != nil {
		_ = shutdownTrace(context.Background())
		closeLogger()
		return nil, func() {}, err
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, logg, cfg.HTTP.HandlerTimeout, rest.WithMaxUploadBytes(cfg.Import.MaxBytes))
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
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr, cfg.HTTP.Addr, cfg.HTTP.ReadHeaderTimeout),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Лента импорта Kafka (по флагу).
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			MaxBytes:       cfg.Kafka.MaxBytes,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		app.KafkaConsumer = kafka.NewConsumer(&kafkaCfg, service, logg)
		logg.Infof(ctx, "kafka import feed enabled topic=%s group=%s", kafkaCfg.Topic, kafkaCfg.GroupID)
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if app.KafkaConsumer != nil {
			if err := app.KafkaConsumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		closeLogger()
	}

	return app, cleanup, nil
}

// newMetricsServer — отдельный сервер /metrics; при пустом или совпадающем адресе не нужен.
func newMetricsServer(addr, httpAddr string, readHeaderTimeout time.Duration) *http.Server {
	if addr == "" || addr == httpAddr {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}
}

// Run — запускает серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	for _, srv := range a.servers() {
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = defaultGracefulTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range a.servers() {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully addr=%s", srv.Addr)
		}
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

func (a *App) servers() []*http.Server {
	out := []*http.Server{a.HTTPServer}
	if a.MetricsServer != nil {
		out = append(out, a.MetricsServer)
	}
	return out
}
