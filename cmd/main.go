package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wikiscout/scoutcore/internal/adapters/http/api"
	"github.com/wikiscout/scoutcore/internal/adapters/http/swagger"
	"github.com/wikiscout/scoutcore/internal/adapters/kvstore"
	"github.com/wikiscout/scoutcore/internal/adapters/scoutapi"
	service "github.com/wikiscout/scoutcore/internal/app"
	"github.com/wikiscout/scoutcore/internal/config"
	"github.com/wikiscout/scoutcore/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (.env -> defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	log := logger.Get()

	kv, err := newKVStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Warn(ctx, "closing state store failed", logger.Error(err))
		}
	}()

	svc, err := newEngine(cfg, kv, log)
	if err != nil {
		return err
	}
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start engine: %w", err)
	}
	defer svc.Stop()

	srv := newHTTPServer(ctx, cfg, svc, log)
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or a listener failure
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
	return nil
}

// newKVStore opens the sqlite state file when configured, otherwise keeps state in memory.
func newKVStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	if cfg.StatePath == "" {
		return kvstore.NewMemory(), nil
	}
	kv, err := kvstore.OpenSQLite(ctx, cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	return kv, nil
}

func newEngine(cfg *config.Config, kv kvstore.Store, log logger.Logger) (*service.Service, error) {
	client, err := scoutapi.New(cfg.APIBaseURL,
		scoutapi.WithToken(cfg.APIToken),
		scoutapi.WithTimeout(cfg.RequestTimeout()),
		scoutapi.WithRateLimit(cfg.UpstreamRPS, cfg.UpstreamBurst),
		scoutapi.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}
	return service.New(client,
		service.WithKVStore(kv),
		service.WithFallbackTeam(cfg.FallbackTeamNumber),
		service.WithDebounce(cfg.Debounce()),
		service.WithPastEventLimit(cfg.PastEventLimit),
		service.WithFirstSeason(cfg.FirstSeason),
		service.WithLogger(log),
	), nil
}

func newHTTPServer(ctx context.Context, cfg *config.Config, engine api.Engine, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	apiServer := api.NewServer(engine,
		api.WithCORSOrigins(cfg.CORSOrigins),
		api.WithLogger(log.Named("http")),
	)
	apiServer.Register(ctx, mux)
	swagger.Register(ctx, mux)

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           apiServer.Handler(mux),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
