package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"

	"creatorhub_backend/platform/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueMatchRefresh queues a background match run for one creator with the
// default options. Satisfies the matching handler's RefreshEnqueuer interface.
func (c *Client) EnqueueMatchRefresh(ctx context.Context, creatorID uuid.UUID) error {
	return c.enqueue(ctx, MatchRefreshPayload{CreatorID: creatorID.String()})
}

// EnqueueFullRescore queues a run that re-scores already-matched brands, so
// persisted rows pick up brand-side changes. Used by the periodic dispatcher.
func (c *Client) EnqueueFullRescore(ctx context.Context, creatorID uuid.UUID) error {
	exclude := false
	return c.enqueue(ctx, MatchRefreshPayload{CreatorID: creatorID.String(), ExcludeMatched: &exclude})
}

func (c *Client) enqueue(ctx context.Context, payload MatchRefreshPayload) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewMatchRefreshTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
