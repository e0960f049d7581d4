// Package notification provides event handlers for sending notifications in
// response to domain events. Domain modules publish events and never touch
// email providers or templates directly.
package notification

import (
	"context"
	"fmt"

	"creatorhub_backend/internal/email"
	"creatorhub_backend/internal/events"
	"creatorhub_backend/platform/config"
	"creatorhub_backend/platform/logger"

	"github.com/google/uuid"
)

// CreatorContact is the minimal creator data a digest email needs.
type CreatorContact struct {
	DisplayName string
	Email       string
}

// CreatorContactReader resolves a creator id to its contact data.
// Implemented by an adapter over the creators repository.
type CreatorContactReader interface {
	GetCreatorContact(ctx context.Context, creatorID uuid.UUID) (CreatorContact, error)
}

type Module struct {
	sender   email.Sender
	contacts CreatorContactReader
	cfg      config.NotificationConfig
	log      *logger.Logger
}

func New(sender email.Sender, contacts CreatorContactReader, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{
		sender:   sender,
		contacts: contacts,
		cfg:      cfg,
		log:      log,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string { return "notification" }

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.MatchesDiscovered{}.EventName(), m)
	bus.Subscribe(events.MatchStatusChanged{}.EventName(), m)
}

// Handle dispatches one domain event.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.MatchesDiscovered:
		return m.handleMatchesDiscovered(ctx, e)
	case events.MatchStatusChanged:
		m.log.Info("match status changed",
			"match_id", e.MatchID,
			"old_status", e.OldStatus,
			"new_status", e.NewStatus)
		return nil
	default:
		return nil
	}
}

func (m *Module) handleMatchesDiscovered(ctx context.Context, e events.MatchesDiscovered) error {
	contact, err := m.contacts.GetCreatorContact(ctx, e.CreatorID)
	if err != nil {
		return fmt.Errorf("resolve creator contact: %w", err)
	}
	if contact.Email == "" {
		return nil
	}

	digest := email.MatchDigest{
		CreatorName:    contact.DisplayName,
		TotalMatches:   e.TotalPersisted,
		ExcellentCount: e.ExcellentCount,
		GoodCount:      e.GoodCount,
		TopBrandNames:  e.TopBrandNames,
		MatchesURL:     fmt.Sprintf("%s/creators/%s/matches", m.cfg.GetAppBaseURL(), e.CreatorID),
	}

	if err := m.sender.SendMatchDigestEmail(ctx, contact.Email, digest); err != nil {
		return fmt.Errorf("send match digest: %w", err)
	}

	m.log.Info("match digest sent",
		"creator_id", e.CreatorID.String(),
		"matches", e.TotalPersisted)
	return nil
}
