package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"PaymentService/config"
	disputev0 "PaymentService/internal/payin/api/dispute/v0"
	"PaymentService/internal/payin/domain/dispute"
	dispute_repo "PaymentService/internal/payin/repo/dispute"
	transferv0 "PaymentService/internal/payout/api/transfer/v0"
	transfer_repo "PaymentService/internal/payout/repo/transfer"
	"PaymentService/pkg/health"
	"PaymentService/pkg/logger"
	"PaymentService/pkg/metrics"
	"PaymentService/pkg/postgres"

	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) error {
	l := logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cluster, err := newCluster(cfg)
	if err != nil {
		return err
	}
	defer cluster.Close()

	if cfg.ApplyMigrations {
		if err := ApplyMigrations(ctx, cfg.PgURL); err != nil {
			return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
		}
	}

	// Repositories
	disputeRepo := dispute_repo.NewPgDisputeRepo(cluster)
	transferRepo := transfer_repo.NewPgTransferRepo(cluster)

	disputeService := dispute.NewDisputeService(disputeRepo)

	healthRegistry := health.NewRegistry(
		health.NewPostgresChecker("postgres_primary", cluster.PrimaryPostgres().Pool),
	)
	if cluster.HasDedicatedReplica() {
		healthRegistry.Add(health.NewPostgresChecker("postgres_replica", cluster.ReplicaPostgres().Pool))
	}

	engine := NewGinEngine()
	router := NewRouter(
		disputev0.NewRouter(disputev0.NewDisputeHandler(disputeService)),
		transferv0.NewRouter(transferv0.NewTransferHandler(transferRepo)),
		healthRegistry,
	)
	router.SetUp(engine)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("Starting HTTP server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app - Run - ListenAndServe: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		l.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newCluster opens the primary pool and, when configured, a dedicated
// replica pool. Each pool reports statement and connection metrics under
// its own target label.
func newCluster(cfg config.Config) (*postgres.Cluster, error) {
	primary, err := openPool(cfg, cfg.PgURL, metrics.TargetPrimary)
	if err != nil {
		return nil, err
	}

	var replica *postgres.Postgres
	if cfg.PgReplicaURL != "" {
		replica, err = openPool(cfg, cfg.PgReplicaURL, metrics.TargetReplica)
		if err != nil {
			primary.Close()
			return nil, err
		}
	} else {
		slog.Warn("PG_REPLICA_URL not set, reads go to the primary")
	}

	return postgres.NewCluster(primary, replica), nil
}

func openPool(cfg config.Config, url, target string) (*postgres.Postgres, error) {
	pg, err := postgres.New(url,
		postgres.MaxPoolSize(cfg.PgPoolMax),
		postgres.ConnTimeout(cfg.PgConnTimeout),
		postgres.WithTracer(metrics.NewQueryTracer(target)),
	)
	if err != nil {
		return nil, fmt.Errorf("app - Run - postgres.New(%s): %w", target, err)
	}

	err = metrics.RegisterPoolStats(target, func() metrics.ConnStats { return pg.Pool.Stat() })
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("app - Run - RegisterPoolStats(%s): %w", target, err)
	}
	return pg, nil
}
