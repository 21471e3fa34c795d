package dto

import (
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	EquipmentID string `json:"equipment_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Validate checks required fields.
func (r CreateTicketRequest) Validate() error {
	errs := fieldErrors{}
	errs.required("equipment_id", r.EquipmentID)
	errs.required("title", r.Title)
	errs.required("description", r.Description)
	return errs.err()
}

// UpdateTicketRequest is a partial update; absent or null fields are left unchanged.
type UpdateTicketRequest struct {
	Title       domain.Optional[string]              `json:"title"`
	Description domain.Optional[string]              `json:"description"`
	Status      domain.Optional[domain.TicketStatus] `json:"status"`
	Priority    domain.Optional[string]              `json:"priority"`
	AssignedTo  domain.Optional[string]              `json:"assigned_to"`
}

// Validate rejects blank text fields and unknown statuses.
func (r UpdateTicketRequest) Validate() error {
	errs := fieldErrors{}
	title, ok := r.Title.Get()
	errs.notBlank("title", title, ok)
	description, ok := r.Description.Get()
	errs.notBlank("description", description, ok)
	if status, ok := r.Status.Get(); ok && !status.Valid() {
		errs["status"] = "must be one of open, in_progress, resolved, closed"
	}
	return errs.err()
}

// Patch converts the request into a domain patch.
func (r UpdateTicketRequest) Patch() domain.TicketPatch {
	return domain.TicketPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
	}
}

// TicketResponse is the public view of a ticket.
type TicketResponse struct {
	ID          string              `json:"id"`
	EquipmentID string              `json:"equipment_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	Priority    string              `json:"priority"`
	CreatedBy   string              `json:"created_by"`
	AssignedTo  *string             `json:"assigned_to"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	ResolvedAt  *time.Time          `json:"resolved_at"`
}

// NewTicketResponse builds the public view of t.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		EquipmentID: t.EquipmentID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CreatedBy:   t.CreatedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ResolvedAt:  t.ResolvedAt,
	}
}
