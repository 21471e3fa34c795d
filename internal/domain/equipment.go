package domain

import "time"

// EquipmentStatus enumerates lifecycle states for a device.
type EquipmentStatus string

const (
	EquipmentStatusActive      EquipmentStatus = "active"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusInactive    EquipmentStatus = "inactive"
	EquipmentStatusRemoved     EquipmentStatus = "removed"
)

// Valid reports whether s is a known equipment status.
func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusActive, EquipmentStatusMaintenance, EquipmentStatusInactive, EquipmentStatusRemoved:
		return true
	default:
		return false
	}
}

// Equipment is a tracked medical device.
type Equipment struct {
	ID               string
	Name             string
	Model            string
	Manufacturer     string
	SerialNumber     string
	Description      *string
	Location         string
	Status           EquipmentStatus
	InstallationDate *time.Time
	RemovalDate      *time.Time
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EquipmentPatch lists the fields a caller may change on an equipment record.
type EquipmentPatch struct {
	Name             Optional[string]
	Model            Optional[string]
	Manufacturer     Optional[string]
	SerialNumber     Optional[string]
	Description      Optional[string]
	Location         Optional[string]
	Status           Optional[EquipmentStatus]
	InstallationDate Optional[time.Time]
	RemovalDate      Optional[time.Time]
}

// Apply copies every provided field of p onto e.
func (p EquipmentPatch) Apply(e *Equipment) {
	if v, ok := p.Name.Get(); ok {
		e.Name = v
	}
	if v, ok := p.Model.Get(); ok {
		e.Model = v
	}
	if v, ok := p.Manufacturer.Get(); ok {
		e.Manufacturer = v
	}
	if v, ok := p.SerialNumber.Get(); ok {
		e.SerialNumber = v
	}
	if v, ok := p.Description.Get(); ok {
		e.Description = &v
	}
	if v, ok := p.Location.Get(); ok {
		e.Location = v
	}
	if v, ok := p.Status.Get(); ok {
		e.Status = v
	}
	if v, ok := p.InstallationDate.Get(); ok {
		e.InstallationDate = &v
	}
	if v, ok := p.RemovalDate.Get(); ok {
		e.RemovalDate = &v
	}
}
