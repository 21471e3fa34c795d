package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/api/dto"
	"github.com/spec-kit/medequip-service/internal/service"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// Dashboard GET /stats.
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	stats, err := h.service.Dashboard(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStatsResponse(stats))
}
