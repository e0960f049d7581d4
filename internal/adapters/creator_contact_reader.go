package adapters

import (
	"context"
	"fmt"

	crerepo "creatorhub_backend/internal/creators/repository"
	"creatorhub_backend/internal/notification"

	"github.com/google/uuid"
)

// CreatorContactReader adapts the creators repository for the notification
// module.
type CreatorContactReader struct {
	repo *crerepo.Repository
}

// NewCreatorContactReader creates a new creator contact adapter.
func NewCreatorContactReader(repo *crerepo.Repository) *CreatorContactReader {
	return &CreatorContactReader{repo: repo}
}

func (a *CreatorContactReader) GetCreatorContact(ctx context.Context, creatorID uuid.UUID) (notification.CreatorContact, error) {
	creator, err := a.repo.GetByID(ctx, creatorID)
	if err != nil {
		return notification.CreatorContact{}, fmt.Errorf("creator contact adapter: %w", err)
	}
	return notification.CreatorContact{
		DisplayName: creator.DisplayName,
		Email:       creator.Email,
	}, nil
}

// Compile-time check that the adapter satisfies the reader interface.
var _ notification.CreatorContactReader = (*CreatorContactReader)(nil)
