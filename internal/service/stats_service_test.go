package service

import (
	"context"
	"testing"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/testfixtures"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := testfixtures.Admin("admin")

	if _, err := env.authService().Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	equipmentSvc := env.equipmentService()
	active, err := equipmentSvc.Create(ctx, admin, newEquipmentInput("SN-1"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := equipmentSvc.Create(ctx, admin, newEquipmentInput("SN-2"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := equipmentSvc.Update(ctx, admin, second.ID, domain.EquipmentPatch{Status: domain.Some(domain.EquipmentStatusInactive)}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	tickets := env.ticketService()
	if _, err := tickets.Create(ctx, admin, TicketCreateInput{EquipmentID: active.ID, Title: "a", Description: "a"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	closed, err := tickets.Create(ctx, admin, TicketCreateInput{EquipmentID: active.ID, Title: "b", Description: "b"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := tickets.Update(ctx, admin, closed.ID, domain.TicketPatch{Status: domain.Some(domain.TicketStatusClosed)}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	svc := NewStatsService(env.stores.Users, env.stores.Equipment, env.stores.Tickets)
	stats, err := svc.Dashboard(ctx, admin)
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	want := domain.DashboardStats{TotalEquipment: 2, ActiveEquipment: 1, OpenTickets: 1, TotalUsers: 1}
	if *stats != want {
		t.Fatalf("expected %+v, got %+v", want, *stats)
	}

	_, err = svc.Dashboard(ctx, testfixtures.Standard("alice"))
	assertCode(t, err, apperrors.CodeForbidden)
}
