// Package service provides business logic for creator profiles.
package service

import (
	"context"
	"errors"
	"fmt"

	"creatorhub_backend/internal/creators/repository"
	"creatorhub_backend/internal/creators/transport"
	"creatorhub_backend/internal/events"
	"creatorhub_backend/platform/apperr"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Service struct {
	repo *repository.Repository
	bus  events.Bus
}

func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// SetEventBus injects the event bus (set after construction by the
// composition root).
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

func (s *Service) Create(ctx context.Context, req transport.UpsertCreatorRequest) (transport.CreatorResponse, error) {
	creator, err := s.repo.Create(ctx, req.ToCreateParams())
	if err != nil {
		return transport.CreatorResponse{}, fmt.Errorf("create creator: %w", err)
	}

	s.publish(ctx, events.CreatorCreated{
		BaseEvent:   events.NewBaseEvent(),
		CreatorID:   creator.ID,
		DisplayName: creator.DisplayName,
	})
	return transport.FromCreator(creator), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpsertCreatorRequest) (transport.CreatorResponse, error) {
	creator, err := s.repo.Update(ctx, id, req.ToCreateParams())
	if errors.Is(err, repository.ErrNotFound) {
		return transport.CreatorResponse{}, apperr.NotFound("creator not found")
	}
	if err != nil {
		return transport.CreatorResponse{}, fmt.Errorf("update creator: %w", err)
	}

	s.publish(ctx, events.CreatorProfileUpdated{
		BaseEvent: events.NewBaseEvent(),
		CreatorID: creator.ID,
	})
	return transport.FromCreator(creator), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.CreatorResponse, error) {
	creator, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.CreatorResponse{}, apperr.NotFound("creator not found")
	}
	if err != nil {
		return transport.CreatorResponse{}, fmt.Errorf("get creator: %w", err)
	}
	return transport.FromCreator(creator), nil
}

func (s *Service) List(ctx context.Context, limit, offset int) (transport.CreatorListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	creators, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return transport.CreatorListResponse{}, fmt.Errorf("list creators: %w", err)
	}

	out := make([]transport.CreatorResponse, len(creators))
	for i, c := range creators {
		out[i] = transport.FromCreator(c)
	}
	return transport.CreatorListResponse{Creators: out, Total: total}, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("creator not found")
	}
	if err != nil {
		return fmt.Errorf("delete creator: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}
