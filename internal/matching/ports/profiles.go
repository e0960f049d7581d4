// Package ports declares the narrow interfaces the matching module needs
// from other bounded contexts. Adapters in internal/adapters satisfy them,
// keeping this module free of cross-context imports.
package ports

import (
	"context"

	"creatorhub_backend/internal/matching/domain"

	"github.com/google/uuid"
)

// ProfileReader fetches the creator side of a match. Implementations return
// apperr.NotFound when the creator does not exist; the orchestrator passes
// that error through unchanged.
type ProfileReader interface {
	GetCreatorProfile(ctx context.Context, creatorID uuid.UUID) (domain.CreatorProfile, error)
}
