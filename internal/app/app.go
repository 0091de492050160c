package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"superstar/internal/config"
	httpapi "superstar/internal/http"
	"superstar/internal/logging"
	"superstar/internal/metrics"
	"superstar/internal/migrations"
	"superstar/internal/repository"
	"superstar/internal/service"
)

// App собранное приложение: хранилище, стор, сервисы и HTTP-сервер
type App struct {
	cfg *config.Config
	log zerolog.Logger

	db       *sql.DB
	storage  repository.Storage
	registry *prometheus.Registry

	Store    *service.OrderStore
	Orders   *service.OrderService
	Delivery *service.DeliveryService
	Server   *httpapi.Server
}

// New opens storage per cfg, migrates SQLite, loads the order collection and builds the HTTP server.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logging.ForPackage(log, "app")}

	storage, err := a.openStorage()
	if err != nil {
		return nil, err
	}
	a.storage = storage

	var m *metrics.Metrics
	storeOpts := []service.StoreOption{
		service.WithLogger(log),
		service.WithStorageKey(cfg.Storage.Key),
	}
	serverOpts := []httpapi.Option{
		httpapi.WithLogger(log),
		httpapi.WithSwagger(cfg.Swagger.Enabled),
	}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(a.registry, cfg.Metrics.Namespace)
		storeOpts = append(storeOpts, service.WithMetrics(m))
		serverOpts = append(serverOpts, httpapi.WithMetrics(m), httpapi.WithGatherer(a.registry))
	}

	// before the engine is built, or gin prints its debug banner and route dump
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	a.Store = service.NewOrderStore(ctx, storage, storeOpts...)
	a.Orders = service.NewOrderService(a.Store)
	a.Delivery = service.NewDeliveryService(a.Store)
	a.Server = httpapi.NewServer(a.Orders, a.Delivery, serverOpts...)
	return a, nil
}

func (a *App) openStorage() (repository.Storage, error) {
	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		a.log.Warn().Msg("memory storage: orders are lost on exit")
		return repository.NewMemoryStorage(), nil
	case config.DriverSQLite:
		db, err := repository.OpenSQLite(a.cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		a.db = db
		a.log.Info().Str("path", a.cfg.Storage.Path).Msg("sqlite storage ready")
		return repository.NewSQLiteStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down within http.shutdown_timeout.
func (a *App) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           a.Server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer.RegisterOnShutdown(a.Server.CloseStreams)

	errc := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info().Msg("HTTP server stopped")
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
