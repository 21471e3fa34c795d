package testfixtures

import (
	"context"
	"sync"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/events"
)

// Stores groups one of each in-memory repository.
type Stores struct {
	Users       *UserStore
	Equipment   *EquipmentStore
	Tickets     *TicketStore
	Maintenance *MaintenanceStore
}

// NewStores returns empty stores.
func NewStores() *Stores {
	return &Stores{
		Users:       &UserStore{},
		Equipment:   &EquipmentStore{},
		Tickets:     &TicketStore{},
		Maintenance: &MaintenanceStore{},
	}
}

// Admin returns an identity holding the admin role.
func Admin(id string) *domain.Identity {
	return &domain.Identity{UserID: id, Role: domain.RoleAdmin, User: &domain.User{ID: id, Role: domain.RoleAdmin}}
}

// Standard returns an identity holding the standard role.
func Standard(id string) *domain.Identity {
	return &domain.Identity{UserID: id, Role: domain.RoleStandard, User: &domain.User{ID: id, Role: domain.RoleStandard}}
}

// EventRecorder is an events.Dispatcher that keeps every published event.
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

var _ events.Dispatcher = (*EventRecorder)(nil)

func (r *EventRecorder) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Subscribe is a no-op; recorded events are read with Events.
func (r *EventRecorder) Subscribe(events.EventType, events.EventHandler) {}

// Events returns a copy of the recorded events.
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// Types returns the types of the recorded events in publication order.
func (r *EventRecorder) Types() []events.EventType {
	recorded := r.Events()
	types := make([]events.EventType, len(recorded))
	for i, e := range recorded {
		types[i] = e.Type
	}
	return types
}
