package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/jm_orders/config"
	"github.com/Gunvolt24/jm_orders/internal/seed"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	fc := &fakeConsumer{}
	a := &App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		MetricsServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: fc,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestOpenSeedSource(t *testing.T) {
	ctx := context.Background()

	src, closeFn, err := openSeedSource(ctx, config.Seed{Source: " Builtin "}, config.Postgres{})
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	closeFn()
	if _, ok := src.(seed.BuiltinSource); !ok {
		t.Fatalf("want BuiltinSource, got %T", src)
	}

	if _, _, err := openSeedSource(ctx, config.Seed{Source: "yaml"}, config.Postgres{}); err == nil {
		t.Fatalf("yaml without file must fail")
	}
	if _, _, err := openSeedSource(ctx, config.Seed{Source: "mongo"}, config.Postgres{}); err == nil {
		t.Fatalf("unknown source must fail")
	}
	if _, _, err := openSeedSource(ctx, config.Seed{Source: "postgres"}, config.Postgres{DSN: "::not a dsn::"}); err == nil {
		t.Fatalf("bad dsn must fail")
	}
}

func TestNewMetricsServer(t *testing.T) {
	if newMetricsServer("", ":8080", time.Second) != nil {
		t.Fatalf("empty addr must disable metrics server")
	}
	if newMetricsServer(":8080", ":8080", time.Second) != nil {
		t.Fatalf("same addr as http must disable metrics server")
	}
	srv := newMetricsServer(":2112", ":8080", time.Second)
	if srv == nil || srv.Addr != ":2112" {
		t.Fatalf("unexpected metrics server: %+v", srv)
	}

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 from /metrics, got %d", w.Code)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix("JM_APP_TEST_UNSET")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.HTTP.GinMode = "test"
	return &cfg
}

func TestBootstrap_BuiltinSeed(t *testing.T) {
	cfg := testConfig(t)

	a, cleanup, err := Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	if a.KafkaConsumer != nil {
		t.Fatalf("kafka feed is disabled by default")
	}
	if a.MetricsServer == nil || a.MetricsServer.Addr != ":2112" {
		t.Fatalf("unexpected metrics server: %+v", a.MetricsServer)
	}

	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var view struct {
		Orders []json.RawMessage `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(view.Orders) != 5 {
		t.Fatalf("want 5 seeded orders, got %d", len(view.Orders))
	}
}

func TestBootstrap_YAMLSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.yaml")
	body := "- id: JM-9001\n  date: \"2025-10-01\"\n  customer: Meera Iyer\n  items: 1\n  amount: 1500\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	cfg := testConfig(t)
	cfg.Seed = config.Seed{Source: "yaml", File: path}

	a, cleanup, err := Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/JM-9001", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBootstrap_SeedFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = config.Seed{Source: "yaml", File: filepath.Join(t.TempDir(), "missing.yaml")}

	if _, _, err := Bootstrap(context.Background(), cfg); err == nil {
		t.Fatalf("missing seed file must fail bootstrap")
	}
}
