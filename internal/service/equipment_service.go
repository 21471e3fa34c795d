package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/events"
	"github.com/spec-kit/medequip-service/internal/repository"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

const duplicateSerialMessage = "Serial number already exists"

// EquipmentService manages the equipment inventory. Any authenticated user may
// read and modify equipment; only admins may delete it.
type EquipmentService struct {
	equipment repository.EquipmentRepository
	rt        Runtime
}

// EquipmentCreateInput describes a new device.
type EquipmentCreateInput struct {
	Name             string
	Model            string
	Manufacturer     string
	SerialNumber     string
	Description      *string
	Location         string
	Status           domain.EquipmentStatus
	InstallationDate *time.Time
}

// NewEquipmentService constructs the service.
func NewEquipmentService(equipment repository.EquipmentRepository, rt Runtime) *EquipmentService {
	return &EquipmentService{equipment: equipment, rt: rt.withDefaults()}
}

// Create registers a device on behalf of the caller.
func (s *EquipmentService) Create(ctx context.Context, identity *domain.Identity, input EquipmentCreateInput) (*domain.Equipment, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.EquipmentStatusActive
	}
	now := s.rt.now()
	equipment := &domain.Equipment{
		ID:               s.rt.NewID(),
		Name:             strings.TrimSpace(input.Name),
		Model:            strings.TrimSpace(input.Model),
		Manufacturer:     strings.TrimSpace(input.Manufacturer),
		SerialNumber:     strings.TrimSpace(input.SerialNumber),
		Description:      input.Description,
		Location:         strings.TrimSpace(input.Location),
		Status:           status,
		InstallationDate: input.InstallationDate,
		CreatedBy:        identity.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.equipment.Create(ctx, equipment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(duplicateSerialMessage, map[string]any{"serial_number": equipment.SerialNumber})
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.rt.publish(ctx, events.Event{
		Type:       events.EventEquipmentCreated,
		ResourceID: equipment.ID,
		Actor:      events.ActorFromIdentity(identity),
		Payload:    equipmentPayload(equipment),
	})
	return equipment, nil
}

// List returns every device. There is no ownership filter.
func (s *EquipmentService) List(ctx context.Context, identity *domain.Identity) ([]domain.Equipment, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	items, err := s.equipment.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return items, nil
}

// Get returns a single device.
func (s *EquipmentService) Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Equipment, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	equipment, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Equipment", err)
	}
	return equipment, nil
}

// Update applies a partial update and refreshes updated_at.
func (s *EquipmentService) Update(ctx context.Context, identity *domain.Identity, id string, patch domain.EquipmentPatch) (*domain.Equipment, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	if _, err := s.equipment.GetByID(ctx, id); err != nil {
		return nil, storeError("Equipment", err)
	}

	if err := s.equipment.Update(ctx, id, patch, s.rt.now()); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			serial, _ := patch.SerialNumber.Get()
			return nil, apperrors.NewConflict(duplicateSerialMessage, map[string]any{"serial_number": serial})
		}
		return nil, storeError("Equipment", err)
	}

	updated, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Equipment", err)
	}
	return updated, nil
}

// Delete permanently removes a device. Admin only.
func (s *EquipmentService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	if err := auth.RequireAdmin(identity); err != nil {
		return err
	}
	equipment, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return storeError("Equipment", err)
	}
	if err := s.equipment.Delete(ctx, id); err != nil {
		return storeError("Equipment", err)
	}

	s.rt.Logger.Info("equipment deleted", zap.String("equipment_id", id), zap.String("user_id", identity.UserID))
	s.rt.publish(ctx, events.Event{
		Type:       events.EventEquipmentDeleted,
		ResourceID: id,
		Actor:      events.ActorFromIdentity(identity),
		Payload:    equipmentPayload(equipment),
	})
	return nil
}

func equipmentPayload(e *domain.Equipment) events.EquipmentPayload {
	return events.EquipmentPayload{Name: e.Name, SerialNumber: e.SerialNumber, Status: e.Status}
}
