package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/astrarium/natalchart/internal/domain/chart"
	"github.com/astrarium/natalchart/internal/infra/chartlog"
	"github.com/astrarium/natalchart/internal/infra/config"
	"github.com/astrarium/natalchart/internal/infra/geocode"
	"github.com/astrarium/natalchart/internal/infra/geocode/nominatim"
	"github.com/astrarium/natalchart/internal/infra/tzlookup"
)

func provideChartConfig(cfg *config.Config) chart.Config {
	return chart.Config{
		RecentLimit: cfg.History.RecentLimit,
	}
}

func provideZoneFinder() (*tzlookup.Finder, error) {
	return tzlookup.New()
}

func provideGeocoder(cfg *config.Config, logger *slog.Logger) chart.Geocoder {
	client := nominatim.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout)
	store := provideGeocodeStore(cfg, logger)
	return geocode.NewCachedGeocoder(client, store, cfg.Geocoder.CacheTTL, logger)
}

func provideGeocodeStore(cfg *config.Config, logger *slog.Logger) geocode.Store {
	if cfg.Geocoder.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return geocode.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return geocode.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("geocode valkey cache enabled", "addr", cfg.Geocoder.Valkey.Addr)
			return geocode.NewValkeyStore(client, "geocode")
		}
	}
	return geocode.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Geocoder.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Geocoder.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Geocoder.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) chart.HistoryRepository {
	fallback := chartlog.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("history postgres repository enabled")
	return chartlog.NewPostgresRepository(pool)
}
