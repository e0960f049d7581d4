package ports

import (
	"context"

	"creatorhub_backend/internal/matching/domain"
)

// AudienceFilter narrows the candidate brand pool before scoring. Countries
// and cities come from the creator's audience locations; the coarse SQL
// filter it drives is a pre-selection only, the orchestrator re-checks
// eligibility per brand.
type AudienceFilter struct {
	Countries []string
	Cities    []string
}

// BrandSource yields the candidate brands for a match run, already
// normalized into the matching module's own representation.
type BrandSource interface {
	ListEligibleBrands(ctx context.Context, filter AudienceFilter) ([]domain.EnhancedBrand, error)
}
