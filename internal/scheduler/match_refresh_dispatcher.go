package scheduler

import (
	"context"
	"time"

	"creatorhub_backend/platform/logger"

	"github.com/google/uuid"
)

const defaultRefreshInterval = 24 * time.Hour

// CreatorLister yields the creator ids to refresh. Implemented by an adapter
// over the creators repository.
type CreatorLister interface {
	ListCreatorIDs(ctx context.Context) ([]uuid.UUID, error)
}

// MatchRefreshDispatcher periodically enqueues a background match refresh
// for every creator, keeping persisted matches from going stale. It requests
// full re-scores, so existing rows pick up brand-side changes; their
// lifecycle status survives the rewrite.
type MatchRefreshDispatcher struct {
	creators CreatorLister
	client   *Client
	log      *logger.Logger
	interval time.Duration
}

func NewMatchRefreshDispatcher(creators CreatorLister, client *Client, log *logger.Logger, interval time.Duration) *MatchRefreshDispatcher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &MatchRefreshDispatcher{
		creators: creators,
		client:   client,
		log:      log,
		interval: interval,
	}
}

func (d *MatchRefreshDispatcher) Run(ctx context.Context) {
	if d == nil || d.client == nil {
		return
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.dispatch(ctx)
		}
	}
}

func (d *MatchRefreshDispatcher) dispatch(ctx context.Context) {
	ids, err := d.creators.ListCreatorIDs(ctx)
	if err != nil {
		d.log.Warn("match refresh dispatch failed", "error", err)
		return
	}

	enqueued := 0
	for _, id := range ids {
		if err := d.client.EnqueueFullRescore(ctx, id); err != nil {
			d.log.Warn("enqueue match refresh failed", "creator_id", id.String(), "error", err)
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		d.log.Info("match refresh dispatched", "creators", enqueued)
	}
}
