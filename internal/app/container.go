package app

import (
	"context"
	"time"

	"beverage-kg/internal/config"
	"beverage-kg/internal/database"
	"beverage-kg/internal/database/migration"
	dbpostgres "beverage-kg/internal/database/postgres"
	"beverage-kg/internal/database/seeder"
	"beverage-kg/internal/infrastructure/cache"
	"beverage-kg/internal/metrics"
	"beverage-kg/internal/repository"
	"beverage-kg/internal/search"
	"beverage-kg/internal/synonym"
	"beverage-kg/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config   config.Config
	Logger   *zap.SugaredLogger
	Table    *synonym.Table
	Resolver *search.Resolver
	DB       database.DB
	Cache    *cache.Redis

	Synonyms  *usecase.Synonyms
	Resolve   *usecase.Resolve
	Publisher *usecase.Publisher
}

// NewContainer loads the synonym table and connects optional backends. The
// database is only opened when DB_HOST is set; an unreachable Redis is
// bypassed.
func NewContainer(cfg config.Config, logger *zap.SugaredLogger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	table := synonym.Default()
	reportTable(table, logger)

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Table:    table,
		Resolver: search.NewResolver(table),
	}

	if cfg.Database.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		c.DB = db
	} else {
		logger.Infow("database disabled, publication endpoints unavailable")
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	purgeCtx, purgeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer purgeCancel()
	if n, err := c.Cache.PurgeStale(purgeCtx, usecase.ResolveCachePrefix(), table.Fingerprint()); err != nil {
		logger.Warnw("purging stale resolve cache failed", "error", err)
	} else if n > 0 {
		logger.Infow("purged stale resolve cache entries", "removed", n)
	}

	c.Synonyms = usecase.NewSynonymUsecase(table)
	c.Resolve = usecase.NewResolveUsecase(c.Resolver, c.Cache, cfg.Redis.TTL, logger)
	c.Publisher = usecase.NewPublisher(
		c.DB,
		migration.Runner{Logger: logger},
		seeder.Runner{Seeders: seeder.Defaults(table), Logger: logger},
		repository.NewPostgresSynonymRepository(c.DB),
		table,
		logger,
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

func reportTable(table *synonym.Table, logger *zap.SugaredLogger) {
	metrics.TableTerms.Set(float64(table.Len()))
	metrics.TableCollisions.Set(float64(len(table.Collisions())))

	logger.Infow("synonym table loaded",
		"terms", table.Len(),
		"raw_entries", table.RawCount(),
		"fingerprint", table.Fingerprint(),
	)
	for _, col := range table.Collisions() {
		logger.Warnw("duplicate synonym term, later definition wins",
			"term", col.Term,
			"replaced_group", col.Replaced,
			"winning_group", col.Winner,
		)
	}
}
