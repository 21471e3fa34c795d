package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// DefaultTicketPriority is used when a ticket is opened without a priority.
const DefaultTicketPriority = "medium"

// Ticket is a maintenance request raised against a piece of equipment.
type Ticket struct {
	ID          string
	EquipmentID string
	Title       string
	Description string
	Status      TicketStatus
	Priority    string
	CreatedBy   string
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

// TicketPatch lists the fields that may change on a ticket.
// ResolvedAt is never bound from input; the ticket service stamps it.
type TicketPatch struct {
	Title       Optional[string]
	Description Optional[string]
	Status      Optional[TicketStatus]
	Priority    Optional[string]
	AssignedTo  Optional[string]
	ResolvedAt  Optional[time.Time]
}

// Apply copies every provided field of p onto t.
func (p TicketPatch) Apply(t *Ticket) {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if v, ok := p.Description.Get(); ok {
		t.Description = v
	}
	if v, ok := p.Status.Get(); ok {
		t.Status = v
	}
	if v, ok := p.Priority.Get(); ok {
		t.Priority = v
	}
	if v, ok := p.AssignedTo.Get(); ok {
		t.AssignedTo = &v
	}
	if v, ok := p.ResolvedAt.Get(); ok {
		t.ResolvedAt = &v
	}
}
