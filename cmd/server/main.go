package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lawrencedcodes/pathways/internal/catalog"
	"github.com/lawrencedcodes/pathways/internal/events"
	"github.com/lawrencedcodes/pathways/internal/plan"
	"github.com/lawrencedcodes/pathways/internal/platform/cache"
	"github.com/lawrencedcodes/pathways/internal/platform/config"
	"github.com/lawrencedcodes/pathways/internal/platform/database"
	"github.com/lawrencedcodes/pathways/internal/realtime"
	"github.com/lawrencedcodes/pathways/internal/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	a, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.newMux(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// buildApp wires stores, engine and transports from configuration. With no
// database URL the service runs entirely on in-memory stores.
func buildApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	cat := catalog.New()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.NewFromDir(cfg.CatalogPath)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("loading catalog from %s: %w", cfg.CatalogPath, err)
		}
		cat = loaded
	}

	a := &app{
		catalog: cat,
		engine: recommend.NewEngine(recommend.EngineConfig{
			Catalog:        cat,
			MatchThreshold: cfg.Engine.MatchThreshold,
		}),
		generator: plan.NewGenerator(plan.GeneratorConfig{}),
		careers:   careersFromCatalog(cat),
		recs:      recommend.NewMemoryStore(),
		plans:     plan.NewMemoryStore(),
		events:    events.NopEventLogger{},
		hub:       realtime.NewHub(),
		cacheTTL:  time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	}

	if cfg.Database.URL != "" {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		cleanups = append(cleanups, db.Close)

		recStore, err := recommend.NewPostgresStore(db.Pool)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		planStore, err := plan.NewPostgresStore(db.Pool)
		if err != nil {
			cleanup()
			return nil, nil, err
		}

		a.db = db
		a.recs = recStore
		a.plans = planStore
		a.events = events.NewPostgresEventLogger(db.Pool)
		slog.Info("database connected")
	} else {
		slog.Info("no database configured, using in-memory stores")
	}

	if cfg.Cache.URL != "" {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connecting to cache: %w", err)
		}
		cleanups = append(cleanups, func() { _ = c.Close() })
		a.cache = c
		slog.Info("recommendation cache enabled", "ttl_seconds", cfg.Cache.TTLSeconds)
	}

	return a, cleanup, nil
}
