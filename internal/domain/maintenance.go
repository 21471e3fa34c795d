package domain

import "time"

// MaintenanceRecord documents work performed on a piece of equipment.
type MaintenanceRecord struct {
	ID                  string
	EquipmentID         string
	MaintenanceType     string
	Description         string
	PerformedBy         string
	PerformedAt         time.Time
	NextMaintenanceDate *time.Time
	Cost                *float64
	Notes               *string
}
