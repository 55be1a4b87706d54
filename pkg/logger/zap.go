package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Gunvolt24/jm_orders/pkg/ctxmeta"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// Option — настройка zap.Config перед сборкой логгера.
type Option func(*zap.Config)

// WithLevel — уровень логирования (debug|info|warn|error); неизвестное значение игнорируется.
func WithLevel(level string) Option {
	return func(c *zap.Config) {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err == nil {
			c.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
}

func NewZapLogger(isProd bool, opts ...Option) (*ZapLogger, func() error, error) {
	zc := zap.NewDevelopmentConfig()
	if isProd {
		zc = zap.NewProductionConfig()
	}
	for _, opt := range opts {
		opt(&zc)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, nil, err
	}

	loggerWrap := &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// withCtx — логгер с request_id/trace_id/span_id из контекста, если они есть.
func (z *ZapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	if kv := ctxmeta.Fields(ctx); len(kv) > 0 {
		return z.sugar.With(kv...)
	}
	return z.sugar
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
