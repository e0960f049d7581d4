package events

import (
	platformevents "creatorhub_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = platformevents.Event
	BaseEvent   = platformevents.BaseEvent
	Handler     = platformevents.Handler
	HandlerFunc = platformevents.HandlerFunc
	Bus         = platformevents.Bus
)

// Re-export platform functions
var NewBaseEvent = platformevents.NewBaseEvent

// CreatorCreated fires when a creator profile is registered.
type CreatorCreated struct {
	BaseEvent
	CreatorID   uuid.UUID
	DisplayName string
}

func (e CreatorCreated) EventName() string { return "creators.creator.created" }

// CreatorProfileUpdated fires when analytics or identity data changes on a
// creator profile. Subscribers use it to schedule a match refresh.
type CreatorProfileUpdated struct {
	BaseEvent
	CreatorID uuid.UUID
}

func (e CreatorProfileUpdated) EventName() string { return "creators.profile.updated" }

// BrandUpserted fires when a brand record is created or updated.
type BrandUpserted struct {
	BaseEvent
	BrandID uuid.UUID
	Name    string
}

func (e BrandUpserted) EventName() string { return "brands.brand.upserted" }

// MatchesDiscovered fires after an orchestrator run persisted at least one
// match for a creator.
type MatchesDiscovered struct {
	BaseEvent
	CreatorID      uuid.UUID
	TotalAnalyzed  int
	TotalPersisted int
	ExcellentCount int
	GoodCount      int
	FairCount      int
	TopBrandNames  []string
}

func (e MatchesDiscovered) EventName() string { return "matching.matches.discovered" }

// MatchStatusChanged fires when the outreach lifecycle of a match advances.
type MatchStatusChanged struct {
	BaseEvent
	MatchID   string
	CreatorID uuid.UUID
	BrandID   uuid.UUID
	OldStatus string
	NewStatus string
}

func (e MatchStatusChanged) EventName() string { return "matching.match.status_changed" }
