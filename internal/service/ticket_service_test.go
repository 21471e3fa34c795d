package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/events"
	"github.com/spec-kit/medequip-service/internal/testfixtures"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

func seedEquipment(t *testing.T, env *testEnv) *domain.Equipment {
	t.Helper()
	equipment, err := env.equipmentService().Create(context.Background(), testfixtures.Admin("admin"), newEquipmentInput("SN-1"))
	if err != nil {
		t.Fatalf("seed equipment: %v", err)
	}
	return equipment
}

func TestTicketCreate(t *testing.T) {
	env := newTestEnv(t)
	equipment := seedEquipment(t, env)
	svc := env.ticketService()
	ctx := context.Background()

	ticket, err := svc.Create(ctx, testfixtures.Standard("alice"), TicketCreateInput{
		EquipmentID: equipment.ID,
		Title:       "Display flickers",
		Description: "Monitor flickers during scans",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if ticket.Status != domain.TicketStatusOpen || ticket.Priority != domain.DefaultTicketPriority || ticket.CreatedBy != "alice" {
		t.Fatalf("unexpected ticket %+v", ticket)
	}
	if ticket.ResolvedAt != nil || ticket.AssignedTo != nil {
		t.Fatalf("new tickets must be unassigned and unresolved")
	}

	_, err = svc.Create(ctx, testfixtures.Standard("alice"), TicketCreateInput{EquipmentID: "missing", Title: "x", Description: "y"})
	assertCode(t, err, apperrors.CodeNotFound)
	if env.stores.Tickets.Len() != 1 {
		t.Fatalf("unknown equipment must not write a ticket")
	}
}

func TestTicketVisibility(t *testing.T) {
	env := newTestEnv(t)
	equipment := seedEquipment(t, env)
	svc := env.ticketService()
	ctx := context.Background()
	alice, bob, admin := testfixtures.Standard("alice"), testfixtures.Standard("bob"), testfixtures.Admin("admin")

	aliceTicket, err := svc.Create(ctx, alice, TicketCreateInput{EquipmentID: equipment.ID, Title: "a", Description: "a"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	env.clock.Advance(time.Minute)
	if _, err := svc.Create(ctx, bob, TicketCreateInput{EquipmentID: equipment.ID, Title: "b", Description: "b"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	mine, err := svc.List(ctx, alice)
	if err != nil || len(mine) != 1 || mine[0].ID != aliceTicket.ID {
		t.Fatalf("expected only alice's ticket, got %+v (%v)", mine, err)
	}
	all, err := svc.List(ctx, admin)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected admin to see 2 tickets, got %d (%v)", len(all), err)
	}
	if all[0].CreatedBy != "bob" {
		t.Fatalf("expected newest ticket first, got %+v", all[0])
	}

	_, err = svc.Get(ctx, bob, aliceTicket.ID)
	assertCode(t, err, apperrors.CodeForbidden)
	if _, err := svc.Get(ctx, admin, aliceTicket.ID); err != nil {
		t.Fatalf("admin Get returned error: %v", err)
	}
	_, err = svc.Get(ctx, alice, "missing")
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestTicketUpdateStampsResolvedAt(t *testing.T) {
	env := newTestEnv(t)
	equipment := seedEquipment(t, env)
	svc := env.ticketService()
	ctx := context.Background()
	alice := testfixtures.Standard("alice")

	ticket, err := svc.Create(ctx, alice, TicketCreateInput{EquipmentID: equipment.ID, Title: "t", Description: "d"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	env.clock.Advance(time.Hour)
	inProgress, err := svc.Update(ctx, alice, ticket.ID, domain.TicketPatch{Status: domain.Some(domain.TicketStatusInProgress)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if inProgress.ResolvedAt != nil {
		t.Fatalf("resolved_at must stay empty until resolution")
	}

	env.clock.Advance(time.Hour)
	forged := env.clock.Now().Add(-48 * time.Hour)
	resolved, err := svc.Update(ctx, alice, ticket.ID, domain.TicketPatch{
		Status:     domain.Some(domain.TicketStatusResolved),
		ResolvedAt: domain.Some(forged),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if resolved.ResolvedAt == nil || !resolved.ResolvedAt.Equal(env.clock.Now()) {
		t.Fatalf("expected resolved_at %v, got %v", env.clock.Now(), resolved.ResolvedAt)
	}
	if !resolved.UpdatedAt.Equal(env.clock.Now()) {
		t.Fatalf("expected updated_at refreshed")
	}

	types := env.events.Types()
	want := []events.EventType{events.EventEquipmentCreated, events.EventTicketCreated, events.EventTicketStatusChanged, events.EventTicketStatusChanged}
	if len(types) != len(want) {
		t.Fatalf("expected events %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, types)
		}
	}
}

func TestTicketUpdateByOtherUserIsRejected(t *testing.T) {
	env := newTestEnv(t)
	equipment := seedEquipment(t, env)
	svc := env.ticketService()
	ctx := context.Background()

	ticket, err := svc.Create(ctx, testfixtures.Standard("alice"), TicketCreateInput{EquipmentID: equipment.ID, Title: "t", Description: "d"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	_, err = svc.Update(ctx, testfixtures.Standard("bob"), ticket.ID, domain.TicketPatch{Title: domain.Some("hijacked")})
	assertCode(t, err, apperrors.CodeForbidden)
	if env.stores.Tickets.Updates != 0 {
		t.Fatalf("forbidden update must not write")
	}

	updated, err := svc.Update(ctx, testfixtures.Admin("admin"), ticket.ID, domain.TicketPatch{AssignedTo: domain.Some("tech-1")})
	if err != nil {
		t.Fatalf("admin Update returned error: %v", err)
	}
	if updated.Title != "t" || updated.AssignedTo == nil || *updated.AssignedTo != "tech-1" {
		t.Fatalf("unexpected ticket %+v", updated)
	}
}
