package service

import (
	"context"

	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/repository"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

// StatsService aggregates dashboard counters.
type StatsService struct {
	users     repository.UserRepository
	equipment repository.EquipmentRepository
	tickets   repository.TicketRepository
}

// NewStatsService constructs the service.
func NewStatsService(users repository.UserRepository, equipment repository.EquipmentRepository, tickets repository.TicketRepository) *StatsService {
	return &StatsService{users: users, equipment: equipment, tickets: tickets}
}

// Dashboard returns aggregate counts. Admin only.
func (s *StatsService) Dashboard(ctx context.Context, identity *domain.Identity) (*domain.DashboardStats, error) {
	if err := auth.RequireAdmin(identity); err != nil {
		return nil, err
	}

	var (
		stats domain.DashboardStats
		err   error
	)
	if stats.TotalEquipment, err = s.equipment.Count(ctx, nil); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	active := domain.EquipmentStatusActive
	if stats.ActiveEquipment, err = s.equipment.Count(ctx, &active); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if stats.OpenTickets, err = s.tickets.CountByStatus(ctx, domain.TicketStatusOpen); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &stats, nil
}
