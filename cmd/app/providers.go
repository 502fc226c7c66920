package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/orbislinks/faq-chat/internal/domain/faq"
	"github.com/orbislinks/faq-chat/internal/infra/config"
	"github.com/orbislinks/faq-chat/internal/infra/faqrepo"
	"github.com/orbislinks/faq-chat/internal/infra/faqstore"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		FallbackAnswer:     cfg.FAQ.FallbackAnswer,
		TopRecommendations: cfg.FAQ.TopRecommendations,
	}
}

func provideCatalogRepository(cfg *config.Config, logger *slog.Logger) faq.CatalogRepository {
	fallback := faqrepo.NewBuiltinRepository()

	if dsn := strings.TrimSpace(cfg.FAQ.Postgres.DSN); dsn != "" {
		poolConfig, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			logger.Error("invalid postgres dsn, using builtin catalog", "error", err)
			return fallback
		}
		if cfg.FAQ.Postgres.MaxConns > 0 {
			poolConfig.MaxConns = cfg.FAQ.Postgres.MaxConns
		}
		if cfg.FAQ.Postgres.MinConns > 0 {
			poolConfig.MinConns = cfg.FAQ.Postgres.MinConns
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			logger.Error("failed to initialize postgres pool, using builtin catalog", "error", err)
			return fallback
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("postgres ping failed, using builtin catalog", "error", err)
			pool.Close()
			return fallback
		}
		logger.Info("faq postgres catalog source enabled")
		return faqrepo.NewPostgresRepository(pool)
	}

	if path := strings.TrimSpace(cfg.FAQ.CatalogPath); path != "" {
		logger.Info("faq file catalog source enabled", "path", path)
		return faqrepo.NewFileRepository(path)
	}

	return fallback
}

func provideCatalog(repo faq.CatalogRepository, logger *slog.Logger) (*faq.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := repo.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := faq.NewCatalog(entries)
	if err != nil {
		return nil, err
	}
	logger.Info("faq catalog loaded", "entries", catalog.Len())
	return catalog, nil
}

func provideFAQStore(cfg *config.Config, logger *slog.Logger) faq.Store {
	if cfg.FAQ.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return faqstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return faqstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("faq valkey store enabled", "addr", cfg.FAQ.Valkey.Addr)
			return faqstore.NewValkeyStore(client, "faq")
		}
	}
	return faqstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.FAQ.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.FAQ.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.FAQ.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
