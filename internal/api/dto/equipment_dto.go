package dto

import (
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// EquipmentCreateRequest payload.
type EquipmentCreateRequest struct {
	Name             string                 `json:"name"`
	Model            string                 `json:"model"`
	Manufacturer     string                 `json:"manufacturer"`
	SerialNumber     string                 `json:"serial_number"`
	Description      *string                `json:"description"`
	Location         string                 `json:"location"`
	Status           domain.EquipmentStatus `json:"status"`
	InstallationDate *time.Time             `json:"installation_date"`
}

// Validate checks required fields and the status enumeration.
func (r EquipmentCreateRequest) Validate() error {
	errs := fieldErrors{}
	errs.required("name", r.Name)
	errs.required("model", r.Model)
	errs.required("manufacturer", r.Manufacturer)
	errs.required("serial_number", r.SerialNumber)
	errs.required("location", r.Location)
	if r.Status != "" && !r.Status.Valid() {
		errs["status"] = "must be one of active, maintenance, inactive, removed"
	}
	return errs.err()
}

// EquipmentUpdateRequest is a partial update; absent or null fields are left unchanged.
type EquipmentUpdateRequest struct {
	Name             domain.Optional[string]                 `json:"name"`
	Model            domain.Optional[string]                 `json:"model"`
	Manufacturer     domain.Optional[string]                 `json:"manufacturer"`
	SerialNumber     domain.Optional[string]                 `json:"serial_number"`
	Description      domain.Optional[string]                 `json:"description"`
	Location         domain.Optional[string]                 `json:"location"`
	Status           domain.Optional[domain.EquipmentStatus] `json:"status"`
	InstallationDate domain.Optional[time.Time]              `json:"installation_date"`
	RemovalDate      domain.Optional[time.Time]              `json:"removal_date"`
}

// Validate rejects blank required fields and unknown statuses.
func (r EquipmentUpdateRequest) Validate() error {
	errs := fieldErrors{}
	for field, opt := range map[string]domain.Optional[string]{
		"name":          r.Name,
		"model":         r.Model,
		"manufacturer":  r.Manufacturer,
		"serial_number": r.SerialNumber,
		"location":      r.Location,
	} {
		v, ok := opt.Get()
		errs.notBlank(field, v, ok)
	}
	if status, ok := r.Status.Get(); ok && !status.Valid() {
		errs["status"] = "must be one of active, maintenance, inactive, removed"
	}
	return errs.err()
}

// Patch converts the request into a domain patch.
func (r EquipmentUpdateRequest) Patch() domain.EquipmentPatch {
	return domain.EquipmentPatch{
		Name:             r.Name,
		Model:            r.Model,
		Manufacturer:     r.Manufacturer,
		SerialNumber:     r.SerialNumber,
		Description:      r.Description,
		Location:         r.Location,
		Status:           r.Status,
		InstallationDate: r.InstallationDate,
		RemovalDate:      r.RemovalDate,
	}
}

// EquipmentResponse is the public view of a device.
type EquipmentResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Model            string                 `json:"model"`
	Manufacturer     string                 `json:"manufacturer"`
	SerialNumber     string                 `json:"serial_number"`
	Description      *string                `json:"description"`
	Location         string                 `json:"location"`
	Status           domain.EquipmentStatus `json:"status"`
	InstallationDate *time.Time             `json:"installation_date"`
	RemovalDate      *time.Time             `json:"removal_date"`
	CreatedBy        string                 `json:"created_by"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// NewEquipmentResponse builds the public view of e.
func NewEquipmentResponse(e *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:               e.ID,
		Name:             e.Name,
		Model:            e.Model,
		Manufacturer:     e.Manufacturer,
		SerialNumber:     e.SerialNumber,
		Description:      e.Description,
		Location:         e.Location,
		Status:           e.Status,
		InstallationDate: e.InstallationDate,
		RemovalDate:      e.RemovalDate,
		CreatedBy:        e.CreatedBy,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
