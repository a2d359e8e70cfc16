package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nadira/tripstylist/internal/domain/climate"
	"github.com/nadira/tripstylist/internal/infra/config"
)

const cachePurgeInterval = 24 * time.Hour

// App encapsulates the HTTP server lifecycle plus the periodic climate
// cache maintenance.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	cache  climate.Cache
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, cache climate.Cache) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, cache: cache}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	go a.purgeLoop(ctx)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// purgeLoop trims long-expired climate cache entries once at startup and
// then daily.
func (a *App) purgeLoop(ctx context.Context) {
	if a.cache == nil {
		return
	}
	if err := a.cache.PurgeExpired(ctx); err != nil {
		a.logger.Warn("climate cache purge failed", "error", err)
	}

	ticker := time.NewTicker(cachePurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.cache.PurgeExpired(ctx); err != nil {
				a.logger.Warn("climate cache purge failed", "error", err)
			}
		}
	}
}
