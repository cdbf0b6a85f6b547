package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"zoo-web/app/controller"
	"zoo-web/app/router"
	"zoo-web/catalog"
	"zoo-web/config"
	"zoo-web/db"
	"zoo-web/pricing"
	"zoo-web/repository"
	"zoo-web/service"
	"zoo-web/visitor"
)

// Visitor contexts idle for longer than visitorMaxIdle are dropped from memory;
// their session and theme stay in the database
const (
	visitorMaxIdle       = 2 * time.Hour
	visitorSweepInterval = 10 * time.Minute
	shutdownTimeout      = 15 * time.Second
)

// App is the wired application
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *db.Database
	Store    *catalog.Store
	Visitors *visitor.Registry
	Handler  http.Handler
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	// Initialize database connection
	database, err := db.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := wire(cfg, logger, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	return a, nil
}

func wire(cfg *config.Config, logger *zap.Logger, database *db.Database) (*App, error) {
	store := catalog.NewStore()

	// Initialize repositories
	prefs := repository.NewPreferenceRepository(database, logger)
	sessions := repository.NewSessionStore(prefs, logger)
	visitors := visitor.NewRegistry(sessions, logger)

	// Initialize services
	pricingEngine, err := pricing.NewEngine(cfg.PricingConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize pricing engine: %w", err)
	}
	events, err := service.NewEventService(store.Events(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event service: %w", err)
	}
	render, err := service.NewRenderService(cfg.BaseURL, cfg.ChromePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize render service: %w", err)
	}
	images := service.NewImageOptimizer(cfg.AssetsDir, cfg.ImageCacheDir, logger)
	if err := images.EnsureCacheDir(); err != nil {
		logger.Warn("image cache disabled", zap.Error(err))
	}
	backend := service.NewMockBackend(cfg.MockDelay, logger)

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(store, images, events, logger),
		Shop:    controller.NewShopController(store, backend, render, images, logger),
		Visit:   controller.NewVisitController(store, pricingEngine, events, render, logger),
		Auth:    controller.NewAuthController(store, backend, logger),
		Theme:   controller.NewThemeController(logger),
	}

	handler := router.NewRouter(controllers, router.Options{
		Visitors:     visitors,
		SecureCookie: cfg.IsProduction(),
		Logger:       logger,
	})

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       database,
		Store:    store,
		Visitors: visitors,
		Handler:  handler,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("base_url", a.Config.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.Visitors.RunSweeper(gctx, visitorSweepInterval, visitorMaxIdle)
	})

	return g.Wait()
}

// Close releases the database
func (a *App) Close() error {
	return a.DB.Close()
}
