package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"metalprices-service/internal/application"
	"metalprices-service/internal/config"
	"metalprices-service/internal/infrastructure/httpx"
	"metalprices-service/internal/infrastructure/logx"
	"metalprices-service/internal/infrastructure/pg"
	redisstore "metalprices-service/internal/infrastructure/redis"
	"metalprices-service/internal/infrastructure/source"
)

// Storage bundles the persisted record store with its readiness probe.
type Storage struct {
	Records application.RecordRepo
	Ping    func(ctx context.Context) error
}

// BuildStorage connects Postgres and runs migrations.
func BuildStorage(ctx context.Context, cfg config.Config) (Storage, func(), error) {
	log := logx.L()

	if cfg.DatabaseURL == "" {
		return Storage{}, func() {}, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return Storage{}, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return Storage{}, func() {}, err
	}
	cleanup := func() {
		log.Info("closing pg")
		db.Close()
	}
	st := Storage{
		Records: pg.NewRecordRepo(db),
		Ping:    db.Ping,
	}
	return st, cleanup, nil
}

// BuildSources selects the adapter set. "fixture" serves deterministic
// quotes for local runs and demos.
func BuildSources(cfg config.Config) (application.Sources, error) {
	switch cfg.Sources {
	case "live":
		client := httpx.New(cfg.SourceTimeout)
		ep := source.Endpoints{
			Shfe:  cfg.ShfeBaseURL,
			Bot:   cfg.BotBaseURL,
			Kme:   cfg.KmeBaseURL,
			Yahoo: cfg.YahooBaseURL,
			Kitco: cfg.KitcoBaseURL,
		}
		return source.NewLive(ep, client), nil
	case "fixture":
		return source.NewFixture(), nil
	default:
		return nil, fmt.Errorf("unknown SOURCES value %q", cfg.Sources)
	}
}

// BuildCache returns the snapshot cache, or nil when disabled.
func BuildCache(cfg config.Config) (application.SnapshotCache, func(), error) {
	if cfg.CacheBackend != "redis" {
		return nil, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cache := redisstore.NewCache(rdb, cfg.CacheTTL)
	cleanup := func() { _ = rdb.Close() }
	return cache, cleanup, nil
}

// BuildService assembles the market service from its parts.
func BuildService(st Storage, sources application.Sources, cache application.SnapshotCache) *application.MarketService {
	log := logx.L()
	collector := application.NewCollector(sources, log)
	opts := []application.Option{application.WithLogger(log)}
	if cache != nil {
		opts = append(opts, application.WithCache(cache))
	}
	return application.NewMarketService(st.Records, collector, opts...)
}
