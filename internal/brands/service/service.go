// Package service provides business logic for brand records.
package service

import (
	"context"
	"errors"
	"fmt"

	"creatorhub_backend/internal/brands/repository"
	"creatorhub_backend/internal/brands/transport"
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

func (s *Service) Create(ctx context.Context, req transport.UpsertBrandRequest) (transport.BrandResponse, error) {
	brand, err := s.repo.Create(ctx, req.ToUpsertParams())
	if err != nil {
		return transport.BrandResponse{}, fmt.Errorf("create brand: %w", err)
	}

	s.publishUpserted(ctx, brand)
	return transport.FromBrand(brand), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpsertBrandRequest) (transport.BrandResponse, error) {
	brand, err := s.repo.Update(ctx, id, req.ToUpsertParams())
	if errors.Is(err, repository.ErrNotFound) {
		return transport.BrandResponse{}, apperr.NotFound("brand not found")
	}
	if err != nil {
		return transport.BrandResponse{}, fmt.Errorf("update brand: %w", err)
	}

	s.publishUpserted(ctx, brand)
	return transport.FromBrand(brand), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.BrandResponse, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.BrandResponse{}, apperr.NotFound("brand not found")
	}
	if err != nil {
		return transport.BrandResponse{}, fmt.Errorf("get brand: %w", err)
	}
	return transport.FromBrand(brand), nil
}

func (s *Service) List(ctx context.Context, limit, offset int) (transport.BrandListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	brands, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return transport.BrandListResponse{}, fmt.Errorf("list brands: %w", err)
	}

	out := make([]transport.BrandResponse, len(brands))
	for i, b := range brands {
		out[i] = transport.FromBrand(b)
	}
	return transport.BrandListResponse{Brands: out, Total: total}, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("brand not found")
	}
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}

func (s *Service) publishUpserted(ctx context.Context, brand repository.Brand) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.BrandUpserted{
		BaseEvent: events.NewBaseEvent(),
		BrandID:   brand.ID,
		Name:      brand.Name,
	})
}
