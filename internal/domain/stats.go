package domain

// DashboardStats aggregates counts for the admin dashboard.
type DashboardStats struct {
	TotalEquipment  int64
	ActiveEquipment int64
	OpenTickets     int64
	TotalUsers      int64
}
