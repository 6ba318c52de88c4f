package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "tms/internal/app"
	"tms/internal/cache/rediscache"
	"tms/internal/handlers/rest/healthcheck_head"
	"tms/internal/handlers/rest/order_group_counts_get"
	"tms/internal/handlers/rest/order_group_get"
	"tms/internal/handlers/rest/order_group_inbound_post"
	"tms/internal/handlers/rest/order_group_notification_post"
	"tms/internal/handlers/rest/order_group_outbound_post"
	"tms/internal/handlers/rest/order_groups_export_get"
	"tms/internal/handlers/rest/order_groups_get"
	"tms/internal/handlers/rest/ping_get"
	"tms/internal/handlers/rest/trip_driver_expenses_get"
	"tms/internal/handlers/rest/trip_driver_expenses_put"
	"tms/internal/handlers/rest/trip_status_post"
	"tms/internal/pkg/config"
	"tms/internal/pkg/dotenv"
	"tms/internal/pkg/kafka"
	metrics_system "tms/internal/pkg/metrics"
	"tms/internal/pkg/middlewares/cors"
	"tms/internal/pkg/middlewares/graceful_shutdown"
	"tms/internal/pkg/middlewares/metrics"
	"tms/internal/pkg/middlewares/rate_limiter"
	"tms/internal/pkg/middlewares/tenant"
	"tms/internal/pkg/middlewares/timeout"
	"tms/internal/pkg/postgres"
	"tms/pkg/logger"
	"tms/pkg/logger/zap_adapter"
	"tms/pkg/token_bucket"
)

func main() {
	envLoaded, err := dotenv.Load()
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter("tms", cfg.Logger.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting tms application")
	if !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	cache := rediscache.New(&cfg.Redis)
	if err := cache.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			runLog.Error("failed to close redis client", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cache, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown(): in-flight запросы дорабатывают.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, businessApp, cfg.Server, pool, cache),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second, // выгрузка xlsx
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	dependencies ...healthcheck_head.Pinger,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, dependencies...)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(tenant.Middleware)

	api.Handle("/order-groups", order_groups_get.New(log, app.OrderGroups)).Methods(http.MethodGet)
	api.Handle("/order-groups/counts", order_group_counts_get.New(log, app.OrderGroups)).Methods(http.MethodGet)
	api.Handle("/order-groups/export", order_groups_export_get.New(log, app.OrderGroups)).Methods(http.MethodGet)
	api.Handle("/order-groups/{id:[0-9]+}", order_group_get.New(log, app.OrderGroups)).Methods(http.MethodGet)
	api.Handle("/order-groups/{id:[0-9]+}/inbound", order_group_inbound_post.New(log, app.OrderGroups)).Methods(http.MethodPost)
	api.Handle("/order-groups/{id:[0-9]+}/outbound", order_group_outbound_post.New(log, app.OrderGroups)).Methods(http.MethodPost)
	api.Handle("/order-groups/{id:[0-9]+}/notifications", order_group_notification_post.New(log, app.OrderGroups)).Methods(http.MethodPost)

	api.Handle("/trips/{code}/statuses", trip_status_post.New(log, app.OrderGroups)).Methods(http.MethodPost)
	api.Handle("/trips/{code}/driver-expenses", trip_driver_expenses_get.New(log, app.DriverExpenses)).Methods(http.MethodGet)
	api.Handle("/trips/{code}/driver-expenses", trip_driver_expenses_put.New(log, app.DriverExpenses)).Methods(http.MethodPut)

	// preflight OPTIONS не совпадает ни с одним маршрутом, поэтому CORS оборачивает весь роутер
	return cors.Middleware(cfg.CORSAllowedOrigins)(router)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
