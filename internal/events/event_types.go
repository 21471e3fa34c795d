package events

import (
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEquipmentCreated    EventType = "equipment_created"
	EventEquipmentDeleted    EventType = "equipment_deleted"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventMaintenanceRecorded EventType = "maintenance_recorded"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// ActorFromIdentity builds an Actor for the authenticated caller.
func ActorFromIdentity(identity *domain.Identity) Actor {
	if identity == nil {
		return Actor{}
	}
	return Actor{UserID: identity.UserID, Role: identity.Role}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload,omitempty"`
}

// EquipmentPayload describes the equipment an event refers to.
type EquipmentPayload struct {
	Name         string                 `json:"name"`
	SerialNumber string                 `json:"serial_number"`
	Status       domain.EquipmentStatus `json:"status"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	EquipmentID string `json:"equipment_id"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus  domain.TicketStatus `json:"old_status"`
	NewStatus  domain.TicketStatus `json:"new_status"`
	ResolvedAt *time.Time          `json:"resolved_at,omitempty"`
}

// MaintenanceRecordedPayload payload.
type MaintenanceRecordedPayload struct {
	EquipmentID         string     `json:"equipment_id"`
	MaintenanceType     string     `json:"maintenance_type"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
}
