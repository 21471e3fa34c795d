package dto

import (
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// CreateMaintenanceRequest payload.
type CreateMaintenanceRequest struct {
	EquipmentID         string     `json:"equipment_id"`
	MaintenanceType     string     `json:"maintenance_type"`
	Description         string     `json:"description"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
	Cost                *float64   `json:"cost"`
	Notes               *string    `json:"notes"`
}

// Validate checks required fields and rejects negative costs.
func (r CreateMaintenanceRequest) Validate() error {
	errs := fieldErrors{}
	errs.required("equipment_id", r.EquipmentID)
	errs.required("maintenance_type", r.MaintenanceType)
	errs.required("description", r.Description)
	if r.Cost != nil && *r.Cost < 0 {
		errs["cost"] = "must not be negative"
	}
	return errs.err()
}

// MaintenanceResponse is the public view of a maintenance record.
type MaintenanceResponse struct {
	ID                  string     `json:"id"`
	EquipmentID         string     `json:"equipment_id"`
	MaintenanceType     string     `json:"maintenance_type"`
	Description         string     `json:"description"`
	PerformedBy         string     `json:"performed_by"`
	PerformedAt         time.Time  `json:"performed_at"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date"`
	Cost                *float64   `json:"cost"`
	Notes               *string    `json:"notes"`
}

// NewMaintenanceResponse builds the public view of r.
func NewMaintenanceResponse(r *domain.MaintenanceRecord) MaintenanceResponse {
	return MaintenanceResponse{
		ID:                  r.ID,
		EquipmentID:         r.EquipmentID,
		MaintenanceType:     r.MaintenanceType,
		Description:         r.Description,
		PerformedBy:         r.PerformedBy,
		PerformedAt:         r.PerformedAt,
		NextMaintenanceDate: r.NextMaintenanceDate,
		Cost:                r.Cost,
		Notes:               r.Notes,
	}
}
