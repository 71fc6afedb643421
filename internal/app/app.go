package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fieldservice/internal/cache"
	"github.com/GlebRadaev/fieldservice/internal/config"
	"github.com/GlebRadaev/fieldservice/internal/events"
	"github.com/GlebRadaev/fieldservice/internal/handlers"
	"github.com/GlebRadaev/fieldservice/internal/pg"
	"github.com/GlebRadaev/fieldservice/internal/repo"
	"github.com/GlebRadaev/fieldservice/internal/service"
	"github.com/GlebRadaev/fieldservice/internal/service/statsservice"
	"github.com/GlebRadaev/fieldservice/pkg/logger"
)

const cachePrefix = "fieldservice:stats:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	events *events.Dispatcher
	redis  *redis.Client
	nats   *nats.Conn

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	// amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	statsCache, err := a.connectCache(ctx, cfg)
	if err != nil {
		return err
	}
	publisher, err := a.connectNats(cfg)
	if err != nil {
		return err
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, statsCache)
	a.api = handlers.New(a.srv, cfg.CORSOrigins)
	a.events = events.New(cfg, a.repo.EventRepo, publisher)

	if err := a.srv.Admin.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		return fmt.Errorf("can't seed admin: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startEventDispatcher(ctx)
	a.closeOnShutdown(ctx, pool)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// connectCache returns nil when no Redis address is configured, which
// disables statistics caching.
func (a *Application) connectCache(ctx context.Context, cfg *config.Config) (statsservice.Cache, error) {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis address is empty, statistics cache disabled")
		return nil, nil
	}
	client, err := cache.Connect(ctx, cfg.RedisAddress)
	if err != nil {
		return nil, err
	}
	a.redis = client
	return cache.New(client, cachePrefix), nil
}

// connectNats returns nil when no NATS url is configured; the dispatcher
// then logs events instead of publishing them.
func (a *Application) connectNats(cfg *config.Config) (events.Publisher, error) {
	if cfg.NatsURL == "" {
		zap.L().Info("nats url is empty, order events will be logged only")
		return nil, nil
	}
	nc, err := nats.Connect(cfg.NatsURL,
		nats.Name("fieldservice"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				zap.L().Warn("nats disconnected", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("can't connect to nats at %s: %w", cfg.NatsURL, err)
	}
	a.nats = nc
	return nc, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startEventDispatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.events.Start(ctx)
	}()
}

// closeOnShutdown releases external connections once ctx is done.
func (a *Application) closeOnShutdown(ctx context.Context, pool *pgxpool.Pool) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		if a.nats != nil {
			if err := a.nats.Drain(); err != nil {
				zap.L().Warn("nats drain failed", zap.Error(err))
			}
		}
		if a.redis != nil {
			if err := a.redis.Close(); err != nil {
				zap.L().Warn("redis close failed", zap.Error(err))
			}
		}
		pool.Close()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
