package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatorhub_backend/internal/adapters"
	brandsrepo "creatorhub_backend/internal/brands/repository"
	creatorsrepo "creatorhub_backend/internal/creators/repository"
	"creatorhub_backend/internal/email"
	"creatorhub_backend/internal/events"
	matchingrepo "creatorhub_backend/internal/matching/repository"
	"creatorhub_backend/internal/matching/scoring"
	matchingsvc "creatorhub_backend/internal/matching/service"
	"creatorhub_backend/internal/notification"
	"creatorhub_backend/internal/scheduler"
	"creatorhub_backend/platform/config"
	"creatorhub_backend/platform/db"
	"creatorhub_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	eventBus := events.NewInMemoryBus(log)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	creatorsRepo := creatorsrepo.New(pool)
	contactReader := adapters.NewCreatorContactReader(creatorsRepo)
	notificationModule := notification.New(sender, contactReader, cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	// The worker runs the same pipeline as the API, wired without the HTTP
	// layer.
	profileReader := adapters.NewCreatorProfileReader(creatorsRepo)
	brandSource := adapters.NewBrandSource(brandsrepo.New(pool))
	matchingService := matchingsvc.New(profileReader, brandSource, matchingrepo.New(pool), scoring.NewEngine(), eventBus, log, matchingsvc.Defaults{
		Limit:    cfg.GetMatchDefaultLimit(),
		MinScore: cfg.GetMatchDefaultMinScore(),
	})

	worker, err := scheduler.NewWorker(cfg, matchingService, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		panic("failed to initialize scheduler client: " + err.Error())
	}
	defer func() {
		_ = client.Close()
	}()

	dispatcher := scheduler.NewMatchRefreshDispatcher(
		adapters.NewCreatorIDLister(creatorsRepo),
		client,
		log,
		cfg.GetMatchRefreshInterval(),
	)
	go dispatcher.Run(ctx)

	worker.Run(ctx)
	log.Info("scheduler stopped")
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}
