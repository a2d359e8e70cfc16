package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/nadira/tripstylist/internal/domain/catalog"
	"github.com/nadira/tripstylist/internal/domain/climate"
	"github.com/nadira/tripstylist/internal/domain/narrative"
	"github.com/nadira/tripstylist/internal/infra/catalogsrc"
	"github.com/nadira/tripstylist/internal/infra/climatecache"
	"github.com/nadira/tripstylist/internal/infra/config"
	"github.com/nadira/tripstylist/internal/infra/llm/chatgpt"
	"github.com/nadira/tripstylist/internal/infra/refwiki"
	"github.com/nadira/tripstylist/internal/infra/weatherapi"
)

func provideNarrativeConfig(cfg *config.Config) narrative.Config {
	return narrative.Config{
		Model:             cfg.LLM.Model,
		Temperature:       cfg.LLM.Temperature,
		Prompt:            cfg.Narrative.Prompt,
		PromptTokenBudget: cfg.Narrative.PromptTokenBudget,
	}
}

// provideChatClient returns nil when no API key is configured; the narrative
// composer then serves template replies.
func provideChatClient(cfg *config.Config, logger *slog.Logger) narrative.ChatClient {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, narrative uses template replies")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("chatgpt client unavailable, narrative uses template replies", "error", err)
		return nil
	}
	return client
}

// provideCatalogProvider walks the source waterfall: external HTTP catalog,
// then Postgres, then the seeded in-memory catalog.
func provideCatalogProvider(cfg *config.Config, logger *slog.Logger) catalog.Provider {
	if baseURL := strings.TrimSpace(cfg.Catalog.BaseURL); baseURL != "" {
		logger.Info("catalog http provider enabled", "baseUrl", baseURL)
		return catalogsrc.NewHTTPProvider(baseURL, cfg.Catalog.Timeout)
	}

	fallback := catalogsrc.NewMemoryProvider(nil)
	dsn := strings.TrimSpace(cfg.Catalog.Postgres.DSN)
	if dsn == "" {
		logger.Info("catalog postgres dsn not set, using memory catalog")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory catalog", "error", err)
		return fallback
	}
	if cfg.Catalog.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Catalog.Postgres.MaxConns
	}
	if cfg.Catalog.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Catalog.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory catalog", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory catalog", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("catalog postgres provider enabled")
	return catalogsrc.NewPostgresProvider(pool)
}

// provideClimateCache prefers the shared Valkey cache, then the JSON file,
// then plain memory.
func provideClimateCache(cfg *config.Config, logger *slog.Logger) climate.Cache {
	if cfg.Climate.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Climate.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to file cache", "error", err)
		} else if client, err := valkey.NewClient(opt); err != nil {
			logger.Error("failed to create valkey client, falling back to file cache", "error", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
				logger.Error("valkey ping failed, falling back to file cache", "error", err)
			} else {
				logger.Info("climate valkey cache enabled", "addr", cfg.Climate.Valkey.Addr)
				return climatecache.NewValkeyCache(client, "climate")
			}
		}
	}
	if path := strings.TrimSpace(cfg.Climate.CachePath); path != "" {
		return climatecache.NewFileCache(path, logger)
	}
	logger.Info("climate cache path not set, using memory cache")
	return climatecache.NewMemoryCache()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideTextSource(cfg *config.Config) climate.TextSource {
	return refwiki.NewClient(cfg.Climate.WikiBaseURL)
}

// provideWeatherSource returns nil without an API key, which disables the
// live-weather resolution tier.
func provideWeatherSource(cfg *config.Config, logger *slog.Logger) climate.WeatherSource {
	if strings.TrimSpace(cfg.Climate.WeatherAPIKey) == "" {
		logger.Info("weather api key not set, live weather tier disabled")
		return nil
	}
	client, err := weatherapi.NewClient(cfg.Climate.WeatherAPIKey, cfg.Climate.WeatherBaseURL)
	if err != nil {
		logger.Error("weather client unavailable, live weather tier disabled", "error", err)
		return nil
	}
	return client
}
