package interfaces

import "winnet_crm/internal/domain/entities"

// IEventPublisher hands domain events to asynchronous subscribers.
// Publish never blocks and never fails the caller.
type IEventPublisher interface {
	Publish(event entities.DomainEvent)
}
