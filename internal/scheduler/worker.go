package scheduler

import (
	"context"
	"fmt"

	matchingsvc "creatorhub_backend/internal/matching/service"
	"creatorhub_backend/platform/config"
	"creatorhub_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	matching *matchingsvc.Service
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, matching *matchingsvc.Service, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		matching: matching,
		log:      log,
	}

	mux.HandleFunc(TaskMatchRefresh, w.handleMatchRefresh)

	return w, nil
}

func (w *Worker) handleMatchRefresh(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseMatchRefreshPayload(task)
	if err != nil {
		return err
	}

	creatorID, err := uuid.Parse(payload.CreatorID)
	if err != nil {
		return err
	}

	result, err := w.matching.GetMatchesForCreator(ctx, creatorID, matchingsvc.Options{
		ExcludeMatched: payload.ExcludeMatched,
	})
	if err != nil {
		return err
	}

	w.log.Info("background match refresh completed",
		"creator_id", payload.CreatorID,
		"analyzed", result.TotalBrandsAnalyzed,
		"persisted", len(result.Matches))
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
