package repository

import (
	"context"

	"creatorhub_backend/internal/matching/domain"

	"github.com/google/uuid"
)

// MatchReader provides read access to persisted matches.
type MatchReader interface {
	ListByCreator(ctx context.Context, creatorID uuid.UUID, params ListParams) ([]domain.BrandMatch, error)
	ListMatchedBrandIDs(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error)
}

// MatchWriter persists match runs and status transitions.
type MatchWriter interface {
	UpsertMatches(ctx context.Context, matches []domain.BrandMatch) error
	UpdateStatus(ctx context.Context, creatorID, brandID uuid.UUID, status string) (domain.BrandMatch, error)
}

// Store is the full persistence surface the matching service consumes.
type Store interface {
	MatchReader
	MatchWriter
}
