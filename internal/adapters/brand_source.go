package adapters

import (
	"context"
	"fmt"

	brrepo "creatorhub_backend/internal/brands/repository"
	"creatorhub_backend/internal/matching/domain"
	"creatorhub_backend/internal/matching/ports"
)

// BrandSource adapts the brands repository for the matching domain,
// satisfying ports.BrandSource. It pairs the coarse eligibility query with
// the normalization step so the orchestrator only ever sees EnhancedBrand.
type BrandSource struct {
	repo *brrepo.Repository
}

// NewBrandSource creates a new brand source adapter.
func NewBrandSource(repo *brrepo.Repository) *BrandSource {
	return &BrandSource{repo: repo}
}

// ListEligibleBrands returns normalized candidates for the given audience.
func (a *BrandSource) ListEligibleBrands(ctx context.Context, filter ports.AudienceFilter) ([]domain.EnhancedBrand, error) {
	raw, err := a.repo.ListEligible(ctx, filter.Countries, filter.Cities)
	if err != nil {
		return nil, fmt.Errorf("brand source adapter: %w", err)
	}

	brands := make([]domain.EnhancedBrand, len(raw))
	for i, b := range raw {
		brands[i] = NormalizeBrand(b)
	}
	return brands, nil
}

// Compile-time check that the adapter satisfies the port.
var _ ports.BrandSource = (*BrandSource)(nil)
