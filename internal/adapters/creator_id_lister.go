package adapters

import (
	"context"
	"fmt"

	crerepo "creatorhub_backend/internal/creators/repository"

	"github.com/google/uuid"
)

// CreatorIDLister adapts the creators repository for the scheduler's
// periodic refresh dispatcher.
type CreatorIDLister struct {
	repo *crerepo.Repository
}

// NewCreatorIDLister creates a new creator id lister adapter.
func NewCreatorIDLister(repo *crerepo.Repository) *CreatorIDLister {
	return &CreatorIDLister{repo: repo}
}

func (a *CreatorIDLister) ListCreatorIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := a.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("creator id lister adapter: %w", err)
	}
	return ids, nil
}
