// Package adapters contains anti-corruption adapters between bounded
// contexts. Each adapter satisfies a ports interface declared by the
// consuming module, so modules never import each other's internals.
package adapters

import (
	"context"
	"errors"
	"fmt"

	crerepo "creatorhub_backend/internal/creators/repository"
	"creatorhub_backend/internal/matching/domain"
	"creatorhub_backend/internal/matching/ports"
	"creatorhub_backend/platform/apperr"

	"github.com/google/uuid"
)

// CreatorProfileReader adapts the creators repository for the matching
// domain, satisfying ports.ProfileReader.
type CreatorProfileReader struct {
	repo *crerepo.Repository
}

// NewCreatorProfileReader creates a new creator profile adapter.
func NewCreatorProfileReader(repo *crerepo.Repository) *CreatorProfileReader {
	return &CreatorProfileReader{repo: repo}
}

// GetCreatorProfile loads and maps one creator record.
func (a *CreatorProfileReader) GetCreatorProfile(ctx context.Context, creatorID uuid.UUID) (domain.CreatorProfile, error) {
	creator, err := a.repo.GetByID(ctx, creatorID)
	if errors.Is(err, crerepo.ErrNotFound) {
		return domain.CreatorProfile{}, apperr.NotFound("creator not found")
	}
	if err != nil {
		return domain.CreatorProfile{}, fmt.Errorf("creator profile adapter: %w", err)
	}

	locations := make([]domain.AudienceLocation, len(creator.AudienceLocations))
	for i, loc := range creator.AudienceLocations {
		locations[i] = domain.AudienceLocation(loc)
	}
	collabs := make([]domain.PastCollaboration, len(creator.PastCollaborations))
	for i, pc := range creator.PastCollaborations {
		collabs[i] = domain.PastCollaboration(pc)
	}

	return domain.CreatorProfile{
		ID:          creator.ID,
		DisplayName: creator.DisplayName,
		Email:       creator.Email,

		FollowerCount:     creator.FollowerCount,
		EngagementRate:    creator.EngagementRate,
		AudienceAgeRanges: creator.AudienceAgeRanges,
		AudienceFemalePct: creator.AudienceFemalePct,
		AudienceMalePct:   creator.AudienceMalePct,
		AudienceLocations: locations,
		AudienceInterests: creator.AudienceInterests,
		AudienceIncome:    creator.AudienceIncome,

		ContentPillars:     creator.ContentPillars,
		BrandValues:        creator.BrandValues,
		PastCollaborations: collabs,
		DreamBrands:        creator.DreamBrands,
		BlacklistedBrands:  creator.BlacklistedBrands,
		ContentStyle:       domain.ContentStyle(creator.ContentStyle),
		AudienceProblems:   creator.AudienceProblems,

		WeeklyAvailabilityHours: creator.WeeklyAvailabilityHours,
		Capabilities:            creator.Capabilities,
	}, nil
}

// Compile-time check that the adapter satisfies the port.
var _ ports.ProfileReader = (*CreatorProfileReader)(nil)
