package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/events"
	"github.com/spec-kit/medequip-service/internal/repository"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

// MaintenanceService records work performed on equipment.
type MaintenanceService struct {
	records   repository.MaintenanceRepository
	equipment repository.EquipmentRepository
	rt        Runtime
}

// MaintenanceCreateInput describes a maintenance record.
type MaintenanceCreateInput struct {
	EquipmentID         string
	MaintenanceType     string
	Description         string
	NextMaintenanceDate *time.Time
	Cost                *float64
	Notes               *string
}

// NewMaintenanceService constructs the service.
func NewMaintenanceService(records repository.MaintenanceRepository, equipment repository.EquipmentRepository, rt Runtime) *MaintenanceService {
	return &MaintenanceService{records: records, equipment: equipment, rt: rt.withDefaults()}
}

// Create records maintenance performed by the caller on existing equipment.
func (s *MaintenanceService) Create(ctx context.Context, identity *domain.Identity, input MaintenanceCreateInput) (*domain.MaintenanceRecord, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if _, err := s.equipment.GetByID(ctx, input.EquipmentID); err != nil {
		return nil, storeError("Equipment", err)
	}

	record := &domain.MaintenanceRecord{
		ID:                  s.rt.NewID(),
		EquipmentID:         input.EquipmentID,
		MaintenanceType:     strings.TrimSpace(input.MaintenanceType),
		Description:         strings.TrimSpace(input.Description),
		PerformedBy:         identity.UserID,
		PerformedAt:         s.rt.now(),
		NextMaintenanceDate: input.NextMaintenanceDate,
		Cost:                input.Cost,
		Notes:               input.Notes,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.rt.publish(ctx, events.Event{
		Type:       events.EventMaintenanceRecorded,
		ResourceID: record.ID,
		Actor:      events.ActorFromIdentity(identity),
		Payload: events.MaintenanceRecordedPayload{
			EquipmentID:         record.EquipmentID,
			MaintenanceType:     record.MaintenanceType,
			NextMaintenanceDate: record.NextMaintenanceDate,
		},
	})
	return record, nil
}

// ListByEquipment returns the history of a device. Unknown ids yield an empty list.
func (s *MaintenanceService) ListByEquipment(ctx context.Context, identity *domain.Identity, equipmentID string) ([]domain.MaintenanceRecord, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	records, err := s.records.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return records, nil
}
