// Package events re-exports the platform event bus and defines the domain
// events exchanged between modules. Internal modules import events from here
// while the bus implementation lives in platform/events.
package events

import (
	platformevents "creatorhub_backend/platform/events"
	"creatorhub_backend/platform/logger"
)

// InMemoryBus is a type alias to the platform InMemoryBus.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log.Logger)
}
