package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/events"
	"github.com/spec-kit/medequip-service/internal/repository"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

// TicketService coordinates ticket workflows. Tickets are visible to their
// creator and to admins only.
type TicketService struct {
	tickets   repository.TicketRepository
	equipment repository.EquipmentRepository
	rt        Runtime
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo    repository.TicketRepository
	EquipmentRepo repository.EquipmentRepository
	Runtime       Runtime
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	EquipmentID string
	Title       string
	Description string
	Priority    string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:   deps.TicketRepo,
		equipment: deps.EquipmentRepo,
		rt:        deps.Runtime.withDefaults(),
	}
}

// Create opens a ticket against existing equipment.
func (s *TicketService) Create(ctx context.Context, identity *domain.Identity, input TicketCreateInput) (*domain.Ticket, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if _, err := s.equipment.GetByID(ctx, input.EquipmentID); err != nil {
		return nil, storeError("Equipment", err)
	}

	priority := strings.TrimSpace(input.Priority)
	if priority == "" {
		priority = domain.DefaultTicketPriority
	}
	now := s.rt.now()
	ticket := &domain.Ticket{
		ID:          s.rt.NewID(),
		EquipmentID: input.EquipmentID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.TicketStatusOpen,
		Priority:    priority,
		CreatedBy:   identity.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.rt.publish(ctx, events.Event{
		Type:       events.EventTicketCreated,
		ResourceID: ticket.ID,
		Actor:      events.ActorFromIdentity(identity),
		Payload: events.TicketCreatedPayload{
			EquipmentID: ticket.EquipmentID,
			Priority:    ticket.Priority,
			Title:       ticket.Title,
		},
	})
	return ticket, nil
}

// List returns every ticket for admins and only the caller's own tickets otherwise.
func (s *TicketService) List(ctx context.Context, identity *domain.Identity) ([]domain.Ticket, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	filter := repository.TicketFilter{}
	if !identity.IsAdmin() {
		owner := identity.UserID
		filter.CreatedBy = &owner
	}
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tickets, nil
}

// Get fetches a ticket ensuring the caller owns it or is an admin.
func (s *TicketService) Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Ticket, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Ticket", err)
	}
	if err := auth.RequireOwnerOrAdmin(identity, ticket.CreatedBy); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Update applies a partial update. Moving a ticket to resolved stamps resolved_at.
func (s *TicketService) Update(ctx context.Context, identity *domain.Identity, id string, patch domain.TicketPatch) (*domain.Ticket, error) {
	current, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	now := s.rt.now()
	patch.ResolvedAt = domain.Optional[time.Time]{}
	if status, ok := patch.Status.Get(); ok && status == domain.TicketStatusResolved {
		patch.ResolvedAt = domain.Some(now)
	}

	if err := s.tickets.Update(ctx, id, patch, now); err != nil {
		return nil, storeError("Ticket", err)
	}
	updated, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Ticket", err)
	}

	if status, ok := patch.Status.Get(); ok && status != current.Status {
		s.rt.publish(ctx, events.Event{
			Type:       events.EventTicketStatusChanged,
			ResourceID: updated.ID,
			Actor:      events.ActorFromIdentity(identity),
			Payload: events.TicketStatusChangedPayload{
				OldStatus:  current.Status,
				NewStatus:  status,
				ResolvedAt: updated.ResolvedAt,
			},
		})
	}
	return updated, nil
}
