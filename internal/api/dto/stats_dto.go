package dto

import "github.com/spec-kit/medequip-service/internal/domain"

// StatsResponse carries the admin dashboard counters.
type StatsResponse struct {
	TotalEquipment  int64 `json:"total_equipment"`
	ActiveEquipment int64 `json:"active_equipment"`
	OpenTickets     int64 `json:"open_tickets"`
	TotalUsers      int64 `json:"total_users"`
}

// NewStatsResponse builds the dashboard view of s.
func NewStatsResponse(s *domain.DashboardStats) StatsResponse {
	return StatsResponse{
		TotalEquipment:  s.TotalEquipment,
		ActiveEquipment: s.ActiveEquipment,
		OpenTickets:     s.OpenTickets,
		TotalUsers:      s.TotalUsers,
	}
}
