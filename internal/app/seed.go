package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/jm_orders/config"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/internal/repo/postgres"
	"github.com/Gunvolt24/jm_orders/internal/seed"
)

// Источники начального набора.
const (
	SeedBuiltin  = "builtin"
	SeedYAML     = "yaml"
	SeedPostgres = "postgres"
)

// openSeedSource — источник посева по конфигурации и функция освобождения его ресурсов.
func openSeedSource(ctx context.Context, cfg config.Seed, pg config.Postgres) (ports.SeedSource, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "", SeedBuiltin:
		return seed.BuiltinSource{}, noop, nil
	case SeedYAML:
		if cfg.File == "" {
			return nil, noop, fmt.Errorf("seed source %q requires SEED_FILE", SeedYAML)
		}
		return seed.NewYAMLSource(cfg.File), noop, nil
	case SeedPostgres:
		pool, err := postgres.NewPool(ctx, pg.DSN, pg.MaxConns)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewSeedRepository(pool), pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
}
