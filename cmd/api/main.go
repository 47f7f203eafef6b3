package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/allowlist"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/cycle"
	"github.com/amirhossein-jamali/safekeep/internal/domain/usecase/vault"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/ledger"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/scheduler"
	timeAdapter "github.com/amirhossein-jamali/safekeep/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/safekeep/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		appLogger *logger.ZapLogger
		identity  *config.Identity
		ready     = make(chan struct{})
	)

	// Reloads only touch the administrator and the log level; everything else needs a restart
	cfg, err := config.LoadAndWatch(func(updated *config.Config, err error) {
		<-ready
		if err != nil {
			appLogger.Warn("Ignoring invalid configuration change", map[string]any{"error": err.Error()})
			return
		}

		adminChanged, vaultIgnored := identity.Update(updated.Vault)
		if adminChanged {
			appLogger.Info("Administrator account updated", map[string]any{
				"admin": updated.Vault.AdminAccount,
			})
		}
		if vaultIgnored {
			appLogger.Warn("Vault account change requires a restart", map[string]any{
				"current":   identity.VaultAccount(),
				"requested": updated.Vault.Account,
			})
		}
		appLogger.SetLevel(coreport.ParseLogLevel(updated.Logger.Level))
	})
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger = logger.NewZapLoggerWithLevel(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	identity = config.NewIdentity(cfg.Vault)
	tp := timeAdapter.NewRealTimeProvider()
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp).WithPoolStatsSink(appMetrics)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		return 1
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		return 1
	}

	uow := dbManager.CreateUnitOfWork()
	retrier := dbManager.CreateRetrier(cfg.Vault.MaxRetries)
	ledgerClient := ledger.NewClient(ledger.Config{
		BaseURL: cfg.Ledger.BaseURL,
		Timeout: cfg.Ledger.Timeout,
		APIKey:  cfg.Ledger.APIKey,
	}, appMetrics, tp, appLogger)

	allowlistUseCase := allowlist.NewAllowlistUseCase(uow, retrier, ledgerClient, identity, tp, appLogger)
	cycleUseCase := cycle.NewCycleUseCase(uow, retrier, identity, tp, appLogger)
	vaultUseCase := vault.NewVaultUseCase(
		uow,
		dbManager.CreateOwnerLockRepository(),
		retrier,
		ledgerClient,
		identity,
		tp,
		appLogger,
	).
		WithWithdrawMemo(cfg.Vault.WithdrawMemo).
		WithOwnerLockTimeout(cfg.Vault.OwnerLockTimeout()).
		WithQueueSize(cfg.Vault.QueueSize)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, appMetrics)

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.Handler()
	}
	routes.SetupRoutes(router, routes.Handlers{
		Admin:        handler.NewAdminHandler(cycleUseCase, allowlistUseCase, appLogger),
		Notification: handler.NewNotificationHandler(vaultUseCase, appMetrics, appLogger),
		Record:       handler.NewRecordHandler(vaultUseCase, appMetrics, appLogger),
	},
		middleware.RequireAuth(middleware.NewTokenValidator(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience), appLogger),
		cfg.Metrics.Path,
		metricsHandler,
		dbManager,
	)

	jobs := scheduler.NewScheduler(scheduler.Config{
		MaturitySweepSpec: cfg.Scheduler.MaturitySweepSpec,
		LockCleanupSpec:   cfg.Scheduler.LockCleanupSpec,
	}, dbManager.CreateRecordRepository(), dbManager.CreateOwnerLockRepository(), appMetrics, tp, appLogger)
	if err := jobs.Start(); err != nil {
		appLogger.Error("Failed to start scheduler", map[string]any{"error": err.Error()})
		return 1
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	close(ready)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"vault": identity.VaultAccount(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		jobs.Stop(shutdownCtx)

		// after the server so no new operation can be queued
		appLogger.Info("Draining depositor queues...", nil)
		vaultUseCase.Shutdown()
		return err
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		return 1
	}

	appLogger.Info("Server exited gracefully", nil)
	return 0
}
